package fundamentus

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
)

// DocumentFetcher はURLのドキュメント本体（UTF-8）を取得する機能です。
// Goの慣例に従い、インターフェースは利用者側で定義します。
type DocumentFetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// client は3つのエクストラクタで共有するページ取得処理です。
type client struct {
	cfg     Config
	fetcher DocumentFetcher
}

// pageURL は page?papel=SYMBOL 形式のURLを生成します。extraはクエリに追加されます。
func (c client) pageURL(page string, symbol entity.Symbol, extra url.Values) string {
	q := url.Values{}
	q.Set("papel", symbol.String())
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return fmt.Sprintf("%s/%s?%s", c.cfg.BaseURL, page, q.Encode())
}

// document はページを取得してHTMLとして解析します。
func (c client) document(ctx context.Context, u string) (*goquery.Document, error) {
	body, err := c.fetcher.Get(ctx, u)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html %s: %v", domain.ErrParse, u, err)
	}
	return doc, nil
}
