// Package store は StockRecord の永続化アダプタ（ファイル / gorm / MongoDB）を提供します。
// どのバックエンドも同じ Document 形式で保存します。
package store

import (
	"fmt"
	"time"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"

	"stock_ingest/internal/feature/stocks/domain"
	"stock_ingest/internal/feature/stocks/domain/entity"
)

// Document は保存形式です。欠損値は null、日付はエポックミリ秒で表します。
type Document struct {
	Name         string               `json:"name" bson:"_id"`
	Business     string               `json:"business" bson:"business"`
	CurrentState CurrentStateDocument `json:"currentState" bson:"currentState"`
	Events       []EventDocument      `json:"events" bson:"events"`
	History      HistoryDocument      `json:"history" bson:"history"`
}

type CurrentStateDocument struct {
	Price              *float64         `json:"price" bson:"price"`
	PriceToEarnings    *float64         `json:"priceToEarnings" bson:"priceToEarnings"`
	DebtByAnnualEquity *float64         `json:"debtByAnnualEquity" bson:"debtByAnnualEquity"`
	Holders            []HolderDocument `json:"holders" bson:"holders"`
}

type HolderDocument struct {
	Name            string   `json:"name" bson:"name"`
	OrdinaryShares  *float64 `json:"ordinaryShares" bson:"ordinaryShares"`
	PreferredShares *float64 `json:"preferredShares" bson:"preferredShares"`
	TotalShares     *float64 `json:"totalShares" bson:"totalShares"`
}

type EventDocument struct {
	Date   *int64   `json:"date" bson:"date"`
	Amount *float64 `json:"amount" bson:"amount"`
	Type   string   `json:"type" bson:"type"`
}

type PeriodDocument struct {
	Period int64    `json:"period" bson:"period"`
	Value  *float64 `json:"value" bson:"value"`
}

type HistoryDocument struct {
	EarningsPerShare []PeriodDocument `json:"earningsPerShare" bson:"earningsPerShare"`
	NetMargin        []PeriodDocument `json:"netMargin" bson:"netMargin"`
}

// ToDocument は StockRecord を保存形式に変換します。
func ToDocument(r entity.StockRecord) Document {
	holders := make([]HolderDocument, 0, len(r.CurrentState.Holders))
	for _, h := range r.CurrentState.Holders {
		holders = append(holders, HolderDocument{
			Name:            h.Name,
			OrdinaryShares:  fromDecimal(h.OrdinaryShares),
			PreferredShares: fromDecimal(h.PreferredShares),
			TotalShares:     fromDecimal(h.TotalShares),
		})
	}
	events := make([]EventDocument, 0, len(r.Events))
	for _, e := range r.Events {
		events = append(events, EventDocument{Date: fromTime(e.Date), Amount: fromDecimal(e.Amount), Type: e.Type})
	}
	return Document{
		Name:     r.Name.String(),
		Business: r.Business,
		CurrentState: CurrentStateDocument{
			Price:              fromDecimal(r.CurrentState.Price),
			PriceToEarnings:    fromDecimal(r.CurrentState.PriceToEarnings),
			DebtByAnnualEquity: fromDecimal(r.CurrentState.DebtByAnnualEquity),
			Holders:            holders,
		},
		Events: events,
		History: HistoryDocument{
			EarningsPerShare: fromPeriods(r.History.EarningsPerShare),
			NetMargin:        fromPeriods(r.History.NetMargin),
		},
	}
}

// ToRecord は保存形式を StockRecord に戻します。
func (d Document) ToRecord() entity.StockRecord {
	holders := make([]entity.HolderEntry, 0, len(d.CurrentState.Holders))
	for _, h := range d.CurrentState.Holders {
		holders = append(holders, entity.HolderEntry{
			Name:            h.Name,
			OrdinaryShares:  toDecimal(h.OrdinaryShares),
			PreferredShares: toDecimal(h.PreferredShares),
			TotalShares:     toDecimal(h.TotalShares),
		})
	}
	events := make([]entity.DividendEvent, 0, len(d.Events))
	for _, e := range d.Events {
		events = append(events, entity.DividendEvent{Date: toTime(e.Date), Amount: toDecimal(e.Amount), Type: e.Type})
	}
	return entity.StockRecord{
		Name:     entity.Symbol(d.Name),
		Business: d.Business,
		CurrentState: entity.CurrentState{
			Price:              toDecimal(d.CurrentState.Price),
			PriceToEarnings:    toDecimal(d.CurrentState.PriceToEarnings),
			DebtByAnnualEquity: toDecimal(d.CurrentState.DebtByAnnualEquity),
			Holders:            holders,
		},
		Events: events,
		History: entity.History{
			EarningsPerShare: toPeriods(d.History.EarningsPerShare),
			NetMargin:        toPeriods(d.History.NetMargin),
		},
	}
}

func fromDecimal(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f, _ := d.Decimal.Float64()
	return &f
}

func toDecimal(f *float64) decimal.NullDecimal {
	if f == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*f))
}

func fromTime(t null.Time) *int64 {
	if !t.Valid {
		return nil
	}
	ms := t.Time.UnixMilli()
	return &ms
}

func toTime(ms *int64) null.Time {
	if ms == nil {
		return null.Time{}
	}
	return null.TimeFrom(time.UnixMilli(*ms).UTC())
}

func fromPeriods(ps []entity.PeriodValue) []PeriodDocument {
	out := make([]PeriodDocument, 0, len(ps))
	for _, p := range ps {
		out = append(out, PeriodDocument{Period: p.Period.UnixMilli(), Value: fromDecimal(p.Value)})
	}
	return out
}

func toPeriods(ps []PeriodDocument) []entity.PeriodValue {
	out := make([]entity.PeriodValue, 0, len(ps))
	for _, p := range ps {
		out = append(out, entity.PeriodValue{Period: time.UnixMilli(p.Period).UTC(), Value: toDecimal(p.Value)})
	}
	return out
}

// persistenceError は下位のエラーを domain.ErrPersistence でラップします。
func persistenceError(op string, symbol entity.Symbol, err error) error {
	if symbol == "" {
		return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
	}
	return fmt.Errorf("%w: %s %s: %w", domain.ErrPersistence, op, symbol, err)
}
