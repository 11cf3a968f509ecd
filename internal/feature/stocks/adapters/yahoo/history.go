package yahoo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stock_ingest/internal/feature/stocks/adapters/yahoo/dto"
	"stock_ingest/internal/feature/stocks/domain/entity"
	"stock_ingest/internal/feature/stocks/usecase"
)

// HistoryExtractor は quoteSummary から EPS・純利益率・負債資本比率を導出します。
type HistoryExtractor struct {
	client *Client
}

var _ usecase.FragmentExtractor[entity.HistorySeries] = (*HistoryExtractor)(nil)

// NewHistoryExtractor は新しい HistoryExtractor を作成します。
func NewHistoryExtractor(client *Client) *HistoryExtractor {
	return &HistoryExtractor{client: client}
}

// Fetch は銘柄の財務履歴を取得します。
// 計算できない期間（売上ゼロなど）は値を欠損にしたまま残し、期間自体は削除しません。
func (e *HistoryExtractor) Fetch(ctx context.Context, symbol entity.Symbol) (entity.HistorySeries, error) {
	res, err := e.client.QuoteSummary(ctx, symbol)
	if err != nil {
		return entity.HistorySeries{}, err
	}
	return toHistorySeries(res), nil
}

// toHistorySeries はAPIレスポンスをドメインのHistorySeriesへ変換します。
func toHistorySeries(res *dto.QuoteSummaryResult) entity.HistorySeries {
	hs := entity.HistorySeries{
		EarningsPerShare: []entity.PeriodValue{},
		NetMargin:        []entity.PeriodValue{},
	}

	if res.Earnings != nil {
		for _, y := range res.Earnings.FinancialsChart.Yearly {
			hs.EarningsPerShare = append(hs.EarningsPerShare, entity.PeriodValue{
				// 年次データは会計年度の1月末を期間とする
				Period: time.Date(y.Date, time.January, 31, 0, 0, 0, 0, time.UTC),
				Value:  fromRaw(y.Earnings),
			})
		}
	}

	if res.IncomeStatementHistory != nil {
		for _, s := range res.IncomeStatementHistory.IncomeStatementHistory {
			var period time.Time
			if s.EndDate.Raw != nil {
				period = time.Unix(int64(*s.EndDate.Raw), 0).UTC()
			}
			hs.NetMargin = append(hs.NetMargin, entity.PeriodValue{
				Period: period,
				Value:  netMargin(s.NetIncome.Raw, s.TotalRevenue.Raw),
			})
		}
	}

	if res.FinancialData != nil {
		hs.DebtByAnnualEquity = fromRaw(res.FinancialData.DebtToEquity)
	}
	return hs
}

// netMargin は netIncome / totalRevenue を返します。
// どちらかが欠損、または売上がゼロの場合は欠損値です（無限大やNaNにはしない）。
func netMargin(netIncome, totalRevenue *float64) decimal.NullDecimal {
	if netIncome == nil || totalRevenue == nil || *totalRevenue == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*netIncome).Div(decimal.NewFromFloat(*totalRevenue)))
}

func fromRaw(v dto.RawValue) decimal.NullDecimal {
	if v.Raw == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*v.Raw))
}
