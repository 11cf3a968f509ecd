// Package dto defines data transfer objects for the Yahoo Finance quoteSummary API responses.
package dto

// RawValue is Yahoo's {"raw": 1.5, "fmt": "1.50"} number wrapper.
// Raw is nil when the API sends an empty object.
type RawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt,omitempty"`
}

// QuoteSummaryResponse represents the JSON response from the v10 quoteSummary endpoint.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *APIError            `json:"error"`
	} `json:"quoteSummary"`
}

// APIError is the error object embedded in an otherwise well-formed response.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// QuoteSummaryResult holds the modules requested with modules=earnings,incomeStatementHistory,financialData.
type QuoteSummaryResult struct {
	Earnings *struct {
		FinancialsChart struct {
			Yearly []struct {
				Date     int      `json:"date"` // fiscal year, e.g. 2021
				Revenue  RawValue `json:"revenue"`
				Earnings RawValue `json:"earnings"`
			} `json:"yearly"`
		} `json:"financialsChart"`
	} `json:"earnings"`

	IncomeStatementHistory *struct {
		IncomeStatementHistory []struct {
			EndDate      RawValue `json:"endDate"` // epoch seconds
			TotalRevenue RawValue `json:"totalRevenue"`
			NetIncome    RawValue `json:"netIncome"`
		} `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistory"`

	FinancialData *struct {
		DebtToEquity RawValue `json:"debtToEquity"`
	} `json:"financialData"`
}
