package fundamentus

import (
	"context"

	"stock_ingest/internal/feature/stocks/domain/entity"
	"stock_ingest/internal/feature/stocks/usecase"
	"stock_ingest/internal/shared/locator"
)

// 詳細ページ（detalhes.php）上の各値の構造パス。
const (
	detailsPricePath    = "body > div.center > div.conteudo.clearfix > table:nth-child(2) > tbody > tr:nth-child(1) > td.data.destaque.w3 > span"
	detailsBusinessPath = "body > div.center > div.conteudo.clearfix > table:nth-child(2) > tbody > tr:nth-child(5) > td:nth-child(2)"
	detailsPLPath       = "body > div.center > div.conteudo.clearfix > table:nth-child(4) > tbody > tr:nth-child(2) > td:nth-child(4) > span"
)

// DetailsExtractor は銘柄の株価・事業内容・PERを取得します。
type DetailsExtractor struct {
	client
}

var _ usecase.FragmentExtractor[entity.DetailsFragment] = (*DetailsExtractor)(nil)

// NewDetailsExtractor は新しい DetailsExtractor を作成します。
func NewDetailsExtractor(cfg Config, fetcher DocumentFetcher) *DetailsExtractor {
	return &DetailsExtractor{client{cfg: cfg, fetcher: fetcher}}
}

// Fetch は詳細ページを取得してDetailsFragmentを返します。
// 株価が見つからない場合もエラーにはせず、欠損値のまま返します（判定は呼び出し側の責務）。
func (e *DetailsExtractor) Fetch(ctx context.Context, symbol entity.Symbol) (entity.DetailsFragment, error) {
	doc, err := e.document(ctx, e.pageURL("detalhes.php", symbol, nil))
	if err != nil {
		return entity.DetailsFragment{}, err
	}
	root := doc.Selection
	return entity.DetailsFragment{
		Price:           ParseDecimal(locator.Locate(root, detailsPricePath)),
		Business:        locator.Locate(root, detailsBusinessPath),
		PriceToEarnings: ParseDecimal(locator.Locate(root, detailsPLPath)),
	}, nil
}
