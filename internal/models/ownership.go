package models

import "time"

// InsiderSummaryRow is one row of the insider activity summary tables
// (trade counts or share totals over 3 and 12 months).
// Parenthesis-wrapped counts read as negative.
type InsiderSummaryRow struct {
	Metric   string `json:"insiderTrade"`
	Months3  *int64 `json:"months3"`
	Months12 *int64 `json:"months12"`
}

// InsiderSummaryRowFromRow maps one summary row.
func InsiderSummaryRowFromRow(row map[string]interface{}) InsiderSummaryRow {
	return InsiderSummaryRow{
		Metric:   stringField(row, "insiderTrade"),
		Months3:  ParseInt(field(row, "months3")),
		Months12: ParseInt(field(row, "months12")),
	}
}

// InsiderTransaction is one row of the insider transaction table.
type InsiderTransaction struct {
	Insider         string     `json:"insider"`
	Relation        string     `json:"relation"`
	LastDate        *time.Time `json:"lastDate"`
	TransactionType string     `json:"transactionType"`
	OwnType         string     `json:"ownType"`
	SharesTraded    *int64     `json:"sharesTraded"`
	LastPrice       *float64   `json:"lastPrice"`
	SharesHeld      *int64     `json:"sharesHeld"`
}

// InsiderTransactionFromRow maps one transaction row. All
// numeric-from-string fields fall back to nil on parse failure.
func InsiderTransactionFromRow(row map[string]interface{}) InsiderTransaction {
	return InsiderTransaction{
		Insider:         stringField(row, "insider", "insiderName"),
		Relation:        stringField(row, "relation", "relationship"),
		LastDate:        ParseDate(field(row, "lastDate", "transactionDate", "date"), DateFormats),
		TransactionType: stringField(row, "transactionType"),
		OwnType:         stringField(row, "ownType"),
		SharesTraded:    ParseInt(field(row, "sharesTraded", "shares")),
		LastPrice:       ParseMonetary(field(row, "lastPrice", "price")),
		SharesHeld:      ParseInt(field(row, "sharesHeld")),
	}
}

// InsiderActivity aggregates the three tables of the insider-trades
// endpoint.
type InsiderActivity struct {
	NumberOfTrades       []InsiderSummaryRow  `json:"number_of_trades"`
	NumberOfSharesTraded []InsiderSummaryRow  `json:"number_of_shares_traded"`
	Transactions         []InsiderTransaction `json:"transaction_table"`
}

// Empty reports whether the endpoint yielded no usable rows at all.
func (a InsiderActivity) Empty() bool {
	return len(a.NumberOfTrades) == 0 && len(a.NumberOfSharesTraded) == 0 && len(a.Transactions) == 0
}

// LabelValue is a labeled scalar from the ownership summary block.
type LabelValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PositionSummaryRow is one row of the active or new/sold-out position
// summaries.
type PositionSummaryRow struct {
	Positions string `json:"positions"`
	Holders   *int64 `json:"holders"`
	Shares    *int64 `json:"shares"`
}

// PositionSummaryRowFromRow maps one position summary row.
func PositionSummaryRowFromRow(row map[string]interface{}) PositionSummaryRow {
	return PositionSummaryRow{
		Positions: stringField(row, "positions"),
		Holders:   ParseInt(field(row, "holders")),
		Shares:    ParseInt(field(row, "shares")),
	}
}

// InstitutionalHolding is one row of the institutional holdings
// transaction table. Percent fields are decimals; share changes read
// parenthesis negatives.
type InstitutionalHolding struct {
	OwnerName       string     `json:"ownerName"`
	Date            *time.Time `json:"date"`
	SharesHeld      *int64     `json:"sharesHeld"`
	SharesChange    *int64     `json:"sharesChange"`
	SharesChangePct *float64   `json:"sharesChangePct"`
	MarketValue     *float64   `json:"marketValue"`
}

// InstitutionalHoldingFromRow maps one holdings row.
func InstitutionalHoldingFromRow(row map[string]interface{}) InstitutionalHolding {
	return InstitutionalHolding{
		OwnerName:       stringField(row, "ownerName", "institutionName"),
		Date:            ParseDate(field(row, "date", "lastReportedDate"), DateFormats),
		SharesHeld:      ParseInt(field(row, "sharesHeld")),
		SharesChange:    ParseInt(field(row, "sharesChange", "changeInShares")),
		SharesChangePct: ParsePercent(field(row, "sharesChangePCT", "changePercent")),
		MarketValue:     ParseMonetary(field(row, "marketValue")),
	}
}

// InstitutionalSummary aggregates the four blocks of the
// institutional-holdings endpoint.
type InstitutionalSummary struct {
	OwnershipSummary     map[string]LabelValue  `json:"ownership_summary"`
	ActivePositions      []PositionSummaryRow   `json:"active_positions"`
	NewSoldOutPositions  []PositionSummaryRow   `json:"new_sold_out_positions"`
	HoldingsTransactions []InstitutionalHolding `json:"holdings_transactions"`
}

// ShortInterestRecord is one settlement period of short interest data.
type ShortInterestRecord struct {
	SettlementDate      *time.Time `json:"settlementDate"`
	Interest            *int64     `json:"interest"`
	AvgDailyShareVolume *int64     `json:"avgDailyShareVolume"`
	DaysToCover         *float64   `json:"daysToCover"`
}

// ShortInterestRecordFromRow maps one short-interest row.
func ShortInterestRecordFromRow(row map[string]interface{}) ShortInterestRecord {
	return ShortInterestRecord{
		SettlementDate:      ParseDate(field(row, "settlementDate"), DateFormats),
		Interest:            ParseInt(field(row, "interest", "shortInterest")),
		AvgDailyShareVolume: ParseInt(field(row, "avgDailyShareVolume", "averageDailyVolume")),
		DaysToCover:         ParseMonetary(field(row, "daysToCover")),
	}
}
