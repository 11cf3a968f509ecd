package store

import (
	"time"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"

	"stock_ingest/internal/feature/stocks/domain/entity"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

// sampleRecord returns a record that mixes present and missing values.
func sampleRecord(name entity.Symbol) entity.StockRecord {
	period := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	return entity.StockRecord{
		Name:     name,
		Business: "Petróleo",
		CurrentState: entity.CurrentState{
			Price:              dec("38.12"),
			PriceToEarnings:    decimal.NullDecimal{},
			DebtByAnnualEquity: dec("45.3"),
			Holders: []entity.HolderEntry{
				{Name: "UNIÃO FEDERAL", OrdinaryShares: dec("50.5"), PreferredShares: decimal.NullDecimal{}, TotalShares: dec("28.67")},
			},
		},
		Events: []entity.DividendEvent{
			{Date: null.TimeFrom(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)), Amount: dec("1.5"), Type: "JRS CAP PROPRIO"},
			{Date: null.Time{}, Amount: decimal.NullDecimal{}, Type: "DIVIDENDO"},
		},
		History: entity.History{
			EarningsPerShare: []entity.PeriodValue{{Period: period, Value: dec("2.5")}},
			NetMargin:        []entity.PeriodValue{{Period: period, Value: decimal.NullDecimal{}}},
		},
	}
}
