package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"stock_ingest/internal/feature/stocks/adapters/twelvedata/dto"
	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
	"stock_ingest/internal/feature/stocks/usecase"
)

// Directory はTwelve Data外部APIから取引所の上場銘柄一覧を取得するSymbolDirectory実装です。
type Directory struct {
	cfg    Config
	client *http.Client
}

// DirectoryがSymbolDirectoryを実装していることをコンパイル時に検証します。
var _ usecase.SymbolDirectory = (*Directory)(nil)

// NewDirectory は指定された設定とHTTPクライアントでDirectoryの新しいインスタンスを生成します。
func NewDirectory(cfg Config, client *http.Client) *Directory {
	return &Directory{cfg: cfg, client: client}
}

// ListSymbols は設定された取引所の銘柄を {symbol, description} の組で返します。
// 同じ銘柄が複数回現れた場合は最初の行だけを残します。
func (d *Directory) ListSymbols(ctx context.Context) ([]entity.DirectoryEntry, error) {
	q := url.Values{}
	q.Set("exchange", d.cfg.Exchange)
	if d.cfg.TwelveDataAPIKey != "" {
		q.Set("apikey", d.cfg.TwelveDataAPIKey)
	}

	u := fmt.Sprintf("%s/stocks?%s", d.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := d.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{URL: d.cfg.BaseURL + "/stocks", Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, &domain.TransportError{URL: d.cfg.BaseURL + "/stocks", StatusCode: res.StatusCode}
	}

	var body dto.StocksResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: twelvedata stocks: %v", domain.ErrParse, err)
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("%w: twelvedata: %s", domain.ErrTransport, body.Message)
	}

	seen := make(map[string]struct{}, len(body.Data))
	out := make([]entity.DirectoryEntry, 0, len(body.Data))
	for _, v := range body.Data {
		sym := strings.TrimSpace(v.Symbol)
		if sym == "" {
			continue
		}
		if _, ok := seen[sym]; ok {
			continue
		}
		seen[sym] = struct{}{}
		out = append(out, entity.DirectoryEntry{Symbol: entity.Symbol(sym), Description: v.Name})
	}
	return out, nil
}
