// Package dto は stocks API のレスポンス型を定義します。
// 金額・比率は精度を保つため文字列、欠損値は null で返します。
package dto

import (
	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"

	"stock_ingest/internal/feature/stocks/domain/entity"
)

const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Error string `json:"error"`
}

type SymbolsResponse struct {
	Symbols []string `json:"symbols"`
}

type StockResponse struct {
	Name         string               `json:"name"`
	Business     string               `json:"business"`
	CurrentState CurrentStateResponse `json:"currentState"`
	Events       []EventResponse      `json:"events"`
	History      HistoryResponse      `json:"history"`
}

type CurrentStateResponse struct {
	Price              decimal.NullDecimal `json:"price"`
	PriceToEarnings    decimal.NullDecimal `json:"priceToEarnings"`
	DebtByAnnualEquity decimal.NullDecimal `json:"debtByAnnualEquity"`
	Holders            []HolderResponse    `json:"holders"`
}

type HolderResponse struct {
	Name            string              `json:"name"`
	OrdinaryShares  decimal.NullDecimal `json:"ordinaryShares"`
	PreferredShares decimal.NullDecimal `json:"preferredShares"`
	TotalShares     decimal.NullDecimal `json:"totalShares"`
}

type EventResponse struct {
	Date   null.String         `json:"date"`
	Amount decimal.NullDecimal `json:"amount"`
	Type   string              `json:"type"`
}

type PeriodResponse struct {
	Period string              `json:"period"`
	Value  decimal.NullDecimal `json:"value"`
}

type HistoryResponse struct {
	EarningsPerShare []PeriodResponse `json:"earningsPerShare"`
	NetMargin        []PeriodResponse `json:"netMargin"`
}

// NewStockResponse は StockRecord をレスポンス形式に変換します。
func NewStockResponse(r entity.StockRecord) StockResponse {
	holders := make([]HolderResponse, 0, len(r.CurrentState.Holders))
	for _, h := range r.CurrentState.Holders {
		holders = append(holders, HolderResponse(h))
	}
	events := make([]EventResponse, 0, len(r.Events))
	for _, e := range r.Events {
		date := null.String{}
		if e.Date.Valid {
			date = null.StringFrom(e.Date.Time.Format(dateLayout))
		}
		events = append(events, EventResponse{Date: date, Amount: e.Amount, Type: e.Type})
	}
	return StockResponse{
		Name:     r.Name.String(),
		Business: r.Business,
		CurrentState: CurrentStateResponse{
			Price:              r.CurrentState.Price,
			PriceToEarnings:    r.CurrentState.PriceToEarnings,
			DebtByAnnualEquity: r.CurrentState.DebtByAnnualEquity,
			Holders:            holders,
		},
		Events: events,
		History: HistoryResponse{
			EarningsPerShare: periods(r.History.EarningsPerShare),
			NetMargin:        periods(r.History.NetMargin),
		},
	}
}

func periods(ps []entity.PeriodValue) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, PeriodResponse{Period: p.Period.UTC().Format(dateLayout), Value: p.Value})
	}
	return out
}
