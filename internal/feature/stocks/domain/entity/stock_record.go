package entity

import "github.com/shopspring/decimal"

// StockRecord is the canonical per-symbol document that gets persisted.
// It is replaced wholesale on every successful run, never merged.
type StockRecord struct {
	Name         Symbol
	Business     string
	CurrentState CurrentState
	Events       []DividendEvent
	History      History
}

// CurrentState groups the point-in-time figures of a StockRecord.
type CurrentState struct {
	Price              decimal.NullDecimal
	PriceToEarnings    decimal.NullDecimal
	DebtByAnnualEquity decimal.NullDecimal
	Holders            []HolderEntry
}

// History groups the per-period series of a StockRecord.
type History struct {
	EarningsPerShare []PeriodValue
	NetMargin        []PeriodValue
}
