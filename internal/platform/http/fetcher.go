// Package http はリモートソースからドキュメントを取得する汎用機能を提供します。
package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/net/html/charset"

	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/shared/ratelimiter"
)

// DefaultUserAgent はスクレイピング対象に送るブラウザ相当のUser-Agentです。
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher はURLを取得し、UTF-8に変換したレスポンスボディを返します。
// 通信失敗と2xx以外のステータスはdomain.TransportErrorとして返します。
type Fetcher struct {
	client      *http.Client
	userAgent   string
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewFetcher は新しいFetcherを生成します。rateLimiterがnilの場合は待機しません。
func NewFetcher(client *http.Client, userAgent string, rateLimiter ratelimiter.RateLimiterInterface) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{client: client, userAgent: userAgent, rateLimiter: rateLimiter}
}

// Get はurlへGETリクエストを送り、ボディを返します。
// Content-Typeやmetaタグで宣言された文字コード（ISO-8859-1など）はUTF-8へ変換されます。
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	if f.rateLimiter != nil {
		if err := f.rateLimiter.WaitIfNeeded(ctx); err != nil {
			return nil, &domain.TransportError{URL: url, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")

	res, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "url", url, "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &domain.TransportError{URL: url, StatusCode: res.StatusCode}
	}

	r, err := charset.NewReader(res.Body, res.Header.Get("Content-Type"))
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: err}
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: err}
	}
	return body, nil
}
