package models

import (
	"strings"
	"time"
)

// RevenueEarningsQuarter is one quarter of the transposed
// revenue/earnings table. All numeric fields are nil when the source
// cell does not parse.
type RevenueEarningsQuarter struct {
	Quarter   string   `json:"quarter"`
	Revenue   *float64 `json:"revenue"`
	EPS       *float64 `json:"eps"`
	Dividends *float64 `json:"dividends"`
}

// NewRevenueEarningsQuarter normalizes one quarter's label and raw cell
// values. Parenthesis-wrapped EPS and dividend cells read as negative.
func NewRevenueEarningsQuarter(quarter string, revenue, eps, dividends interface{}) RevenueEarningsQuarter {
	return RevenueEarningsQuarter{
		Quarter:   strings.TrimSpace(quarter),
		Revenue:   ParseMonetary(revenue),
		EPS:       ParseMonetary(eps),
		Dividends: ParseMonetary(dividends),
	}
}

// HistoricalQuote is one day of OHLCV data. Quotes are keyed externally
// by their raw date string; duplicate dates overwrite.
type HistoricalQuote struct {
	Date   string   `json:"date"`
	Open   *float64 `json:"open"`
	High   *float64 `json:"high"`
	Low    *float64 `json:"low"`
	Close  *float64 `json:"close"`
	Volume *int64   `json:"volume"`
}

// HistoricalQuoteFromRow maps one row of the historical trades table.
func HistoricalQuoteFromRow(row map[string]interface{}) HistoricalQuote {
	return HistoricalQuote{
		Date:   stringField(row, "date"),
		Open:   ParseMonetary(field(row, "open")),
		High:   ParseMonetary(field(row, "high")),
		Low:    ParseMonetary(field(row, "low")),
		Close:  ParseMonetary(field(row, "close")),
		Volume: ParseInt(field(row, "volume")),
	}
}

// DividendRecord is one row of the dividend history table. Dates are
// parsed against DateFormats in priority order.
type DividendRecord struct {
	ExOrEffDate     *time.Time `json:"exOrEffDate"`
	Type            string     `json:"type"`
	Amount          *float64   `json:"amount"`
	DeclarationDate *time.Time `json:"declarationDate"`
	RecordDate      *time.Time `json:"recordDate"`
	PaymentDate     *time.Time `json:"paymentDate"`
	Currency        string     `json:"currency"`
}

// DividendRecordFromRow maps one dividend row. Type defaults to "Cash"
// and currency to "USD" when the source omits them.
func DividendRecordFromRow(row map[string]interface{}) DividendRecord {
	rec := DividendRecord{
		ExOrEffDate:     ParseDate(field(row, "exOrEffDate", "date"), DateFormats),
		Type:            stringField(row, "type"),
		Amount:          ParseMonetary(field(row, "amount")),
		DeclarationDate: ParseDate(field(row, "declarationDate"), DateFormats),
		RecordDate:      ParseDate(field(row, "recordDate"), DateFormats),
		PaymentDate:     ParseDate(field(row, "paymentDate"), DateFormats),
		Currency:        stringField(row, "currency"),
	}
	if rec.Type == "" {
		rec.Type = "Cash"
	}
	if rec.Currency == "" {
		rec.Currency = "USD"
	}
	return rec
}

// FinancialRatio is one named ratio. Values stay raw strings because
// the source table mixes numerics with ranges ("226.11 - 229.5").
type FinancialRatio struct {
	Name         string `json:"name"`
	Value        string `json:"value"`
	DisplayValue string `json:"displayValue"`
}
