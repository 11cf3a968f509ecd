package usecase

import (
	"strings"

	"stock_ingest/internal/feature/stocks/domain/entity"
)

// excludedHolders は実在の株主ではない集計行の名前です（大文字で比較）。
var excludedHolders = map[string]struct{}{
	"OUTROS":          {},
	"ACOESTESOURARIA": {},
}

// Combine は1銘柄分の4つのフラグメントを正規化されたStockRecordにまとめます。
// I/Oを行わない決定的な関数です。欠損値はゼロに変換せず、そのまま保持します。
func Combine(
	symbol entity.Symbol,
	details entity.DetailsFragment,
	holders []entity.HolderEntry,
	events []entity.DividendEvent,
	history entity.HistorySeries,
) entity.StockRecord {
	return entity.StockRecord{
		Name:     symbol,
		Business: details.Business,
		CurrentState: entity.CurrentState{
			Price:              details.Price,
			PriceToEarnings:    details.PriceToEarnings,
			DebtByAnnualEquity: history.DebtByAnnualEquity,
			Holders:            filterHolders(holders),
		},
		Events: append(make([]entity.DividendEvent, 0, len(events)), events...),
		History: entity.History{
			EarningsPerShare: append(make([]entity.PeriodValue, 0, len(history.EarningsPerShare)), history.EarningsPerShare...),
			NetMargin:        append(make([]entity.PeriodValue, 0, len(history.NetMargin)), history.NetMargin...),
		},
	}
}

// filterHolders は除外対象の集計行を取り除きます。順序は維持されます。
func filterHolders(holders []entity.HolderEntry) []entity.HolderEntry {
	out := make([]entity.HolderEntry, 0, len(holders))
	for _, h := range holders {
		if isExcludedHolder(h.Name) {
			continue
		}
		out = append(out, h)
	}
	return out
}

func isExcludedHolder(name string) bool {
	_, ok := excludedHolders[strings.ToUpper(strings.TrimSpace(name))]
	return ok
}
