package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"stock_ingest/internal/feature/stocks/adapters/yahoo/dto"
	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
)

const quoteSummaryModules = "earnings,incomeStatementHistory,financialData"

// DocumentFetcher はURLのレスポンスボディを取得する機能です。
// Cookieを保持するHTTPクライアントの上に構築されている必要があります。
type DocumentFetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client は quoteSummary API のクライアントです。
type Client struct {
	cfg     Config
	fetcher DocumentFetcher

	mu    sync.Mutex
	crumb string
}

// NewClient は指定された設定とFetcherでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, fetcher DocumentFetcher) *Client {
	return &Client{cfg: cfg, fetcher: fetcher}
}

// QuoteSummary は symbol+MarketSuffix の quoteSummary を取得します。
func (c *Client) QuoteSummary(ctx context.Context, symbol entity.Symbol) (*dto.QuoteSummaryResult, error) {
	crumb, err := c.ensureCrumb(ctx)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("modules", quoteSummaryModules)
	if crumb != "" {
		q.Set("crumb", crumb)
	}
	ticker := url.PathEscape(symbol.String() + c.cfg.MarketSuffix)
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", c.cfg.BaseURL, ticker, q.Encode())

	body, err := c.fetcher.Get(ctx, u)
	if err != nil {
		var te *domain.TransportError
		if errors.As(err, &te) && te.StatusCode == 401 {
			// crumbの期限切れ。次の呼び出しで取り直す
			c.resetCrumb()
		}
		return nil, err
	}

	var res dto.QuoteSummaryResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: yahoo quoteSummary %s: %v", domain.ErrParse, symbol, err)
	}
	if e := res.QuoteSummary.Error; e != nil {
		return nil, fmt.Errorf("%w: yahoo: %s: %s", domain.ErrTransport, e.Code, e.Description)
	}
	if len(res.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: yahoo: empty quoteSummary for %s", domain.ErrTransport, symbol)
	}
	return &res.QuoteSummary.Result[0], nil
}

// ensureCrumb はCookieとcrumbを一度だけ取得してキャッシュします。
// CrumbURLが空の場合はハンドシェイクを行いません。
func (c *Client) ensureCrumb(ctx context.Context) (string, error) {
	if c.cfg.CrumbURL == "" {
		return "", nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.crumb != "" {
		return c.crumb, nil
	}

	if c.cfg.CookieURL != "" {
		// Cookieを設定するページは404を返すことがあるので、ステータスエラーは無視する
		if _, err := c.fetcher.Get(ctx, c.cfg.CookieURL); err != nil {
			var te *domain.TransportError
			if !errors.As(err, &te) || te.StatusCode == 0 {
				return "", err
			}
		}
	}

	body, err := c.fetcher.Get(ctx, c.cfg.CrumbURL)
	if err != nil {
		return "", err
	}
	crumb := strings.TrimSpace(string(body))
	if crumb == "" || strings.Contains(crumb, "<") {
		return "", fmt.Errorf("%w: yahoo: invalid crumb response", domain.ErrTransport)
	}
	slog.Debug("yahoo crumb acquired")
	c.crumb = crumb
	return crumb, nil
}

func (c *Client) resetCrumb() {
	c.mu.Lock()
	c.crumb = ""
	c.mu.Unlock()
}
