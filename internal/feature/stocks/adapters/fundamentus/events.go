package fundamentus

import (
	"context"
	"net/url"

	"stock_ingest/internal/feature/stocks/domain/entity"
	"stock_ingest/internal/feature/stocks/usecase"
	"stock_ingest/internal/shared/locator"
)

const (
	eventsRowPath    = "#resultado tbody tr"
	eventsDatePath   = "td:nth-child(1)"
	eventsAmountPath = "td:nth-child(2)"
	eventsTypePath   = "td:nth-child(3)"
)

// EventsExtractor は配当ページ（proventos.php）から1カテゴリ分のイベントを取得します。
type EventsExtractor struct {
	client
}

var _ usecase.FragmentExtractor[[]entity.DividendEvent] = (*EventsExtractor)(nil)

// NewEventsExtractor は新しい EventsExtractor を作成します。
func NewEventsExtractor(cfg Config, fetcher DocumentFetcher) *EventsExtractor {
	return &EventsExtractor{client{cfg: cfg, fetcher: fetcher}}
}

// Fetch はテーブルの行順のまま配当イベントを返します（並べ替えない）。
func (e *EventsExtractor) Fetch(ctx context.Context, symbol entity.Symbol) ([]entity.DividendEvent, error) {
	extra := url.Values{}
	extra.Set("tipo", e.cfg.EventCategory)
	doc, err := e.document(ctx, e.pageURL("proventos.php", symbol, extra))
	if err != nil {
		return nil, err
	}

	rows := locator.LocateAll(doc.Selection, eventsRowPath)
	events := make([]entity.DividendEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, entity.DividendEvent{
			Date:   ParseDate(locator.Locate(row, eventsDatePath), e.cfg.Location),
			Amount: ParseDecimal(locator.Locate(row, eventsAmountPath)),
			Type:   locator.Locate(row, eventsTypePath),
		})
	}
	return events, nil
}
