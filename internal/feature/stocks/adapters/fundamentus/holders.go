package fundamentus

import (
	"context"

	"stock_ingest/internal/feature/stocks/domain/entity"
	"stock_ingest/internal/feature/stocks/usecase"
	"stock_ingest/internal/shared/locator"
)

const (
	holdersEntryPath     = ".my-menu li ul li a"
	holdersOrdinaryPath  = "table td:nth-child(1)"
	holdersPreferredPath = "table td:nth-child(2)"
	holdersTotalPath     = "table td:nth-child(3)"
)

// HoldersExtractor は株主構成ページ（acionistas.php）から株主一覧を取得します。
type HoldersExtractor struct {
	client
}

var _ usecase.FragmentExtractor[[]entity.HolderEntry] = (*HoldersExtractor)(nil)

// NewHoldersExtractor は新しい HoldersExtractor を作成します。
func NewHoldersExtractor(cfg Config, fetcher DocumentFetcher) *HoldersExtractor {
	return &HoldersExtractor{client{cfg: cfg, fetcher: fetcher}}
}

// Fetch は株主一覧をページ上の順序で返します。
// 名前は入れ子のテーブルを除いた要素自身のテキストです。セルが無い場合は欠損値になります。
func (e *HoldersExtractor) Fetch(ctx context.Context, symbol entity.Symbol) ([]entity.HolderEntry, error) {
	doc, err := e.document(ctx, e.pageURL("acionistas.php", symbol, nil))
	if err != nil {
		return nil, err
	}

	entries := locator.LocateAll(doc.Selection, holdersEntryPath)
	holders := make([]entity.HolderEntry, 0, len(entries))
	for _, el := range entries {
		holders = append(holders, entity.HolderEntry{
			Name:            locator.OwnText(el),
			OrdinaryShares:  ParsePercent(locator.Locate(el, holdersOrdinaryPath)),
			PreferredShares: ParsePercent(locator.Locate(el, holdersPreferredPath)),
			TotalShares:     ParsePercent(locator.Locate(el, holdersTotalPath)),
		})
	}
	return holders, nil
}
