package entity

import (
	"time"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

// DetailsFragment holds the headline figures scraped from the details page.
// A Price with Valid == false means the symbol is invalid or the page layout changed.
type DetailsFragment struct {
	Price           decimal.NullDecimal
	Business        string
	PriceToEarnings decimal.NullDecimal
}

// HolderEntry is one shareholder row with its stake percentages.
type HolderEntry struct {
	Name            string
	OrdinaryShares  decimal.NullDecimal // percent of ordinary (ON) shares
	PreferredShares decimal.NullDecimal // percent of preferred (PN) shares
	TotalShares     decimal.NullDecimal // percent of all shares
}

// DividendEvent is one earnings distribution row, in source table order.
type DividendEvent struct {
	Date   null.Time // local midnight of the DD/MM/YYYY cell; invalid when unparseable
	Amount decimal.NullDecimal
	Type   string
}

// PeriodValue is one entry of a reporting-period series.
// Value may be missing; the entry itself is always kept.
type PeriodValue struct {
	Period time.Time
	Value  decimal.NullDecimal
}

// HistorySeries is the fragment derived from the financial-data API.
type HistorySeries struct {
	DebtByAnnualEquity decimal.NullDecimal
	EarningsPerShare   []PeriodValue
	NetMargin          []PeriodValue
}
