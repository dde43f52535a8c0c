package nasdaq

import (
	"context"
	"fmt"

	"nasdaq-client/internal/logging"
	"nasdaq-client/internal/models"
)

// shortInterestRowsKept caps short interest at the most recent
// settlement periods.
const shortInterestRowsKept = 4

// FetchInsiderActivity returns the three insider trading tables for
// the symbol. A failed request degrades all three to empty.
func (c *Client) FetchInsiderActivity(ctx context.Context, symbol string) models.InsiderActivity {
	log := logging.WithSymbol(c.logger, symbol)
	url := fmt.Sprintf("%s/api/company/%s/insider-trades?limit=10&type=all&sortColumn=lastDate&sortOrder=DESC",
		c.baseAPI, symbol)
	activity := models.InsiderActivity{
		NumberOfTrades:       []models.InsiderSummaryRow{},
		NumberOfSharesTraded: []models.InsiderSummaryRow{},
		Transactions:         []models.InsiderTransaction{},
	}
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "insider_activity", 0, err)
		return activity
	}

	for _, row := range tableRows(body, "data", "numberOfTrades", "rows") {
		activity.NumberOfTrades = append(activity.NumberOfTrades, models.InsiderSummaryRowFromRow(row))
	}
	for _, row := range tableRows(body, "data", "numberOfSharesTraded", "rows") {
		activity.NumberOfSharesTraded = append(activity.NumberOfSharesTraded, models.InsiderSummaryRowFromRow(row))
	}
	for _, row := range tableRows(body, "data", "transactionTable", "table", "rows") {
		activity.Transactions = append(activity.Transactions, models.InsiderTransactionFromRow(row))
	}
	logging.LogFetch(log, "insider_activity", len(activity.Transactions), nil)
	return activity
}

// FetchInstitutionalHoldings returns the ownership summary and
// position tables of the institutional holdings endpoint.
func (c *Client) FetchInstitutionalHoldings(ctx context.Context, symbol string) models.InstitutionalSummary {
	log := logging.WithSymbol(c.logger, symbol)
	url := fmt.Sprintf("%s/api/company/%s/institutional-holdings?limit=10&type=TOTAL&sortColumn=marketValue",
		c.baseAPI, symbol)
	summary := models.InstitutionalSummary{
		OwnershipSummary:     map[string]models.LabelValue{},
		ActivePositions:      []models.PositionSummaryRow{},
		NewSoldOutPositions:  []models.PositionSummaryRow{},
		HoldingsTransactions: []models.InstitutionalHolding{},
	}
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "institutional_holdings", 0, err)
		return summary
	}

	for key, raw := range lookupMap(body, "data", "ownershipSummary") {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		summary.OwnershipSummary[key] = models.LabelValue{
			Label: stringValue(entry["label"]),
			Value: stringValue(entry["value"]),
		}
	}
	for _, row := range tableRows(body, "data", "activePositions", "rows") {
		summary.ActivePositions = append(summary.ActivePositions, models.PositionSummaryRowFromRow(row))
	}
	for _, row := range tableRows(body, "data", "newSoldOutPositions", "rows") {
		summary.NewSoldOutPositions = append(summary.NewSoldOutPositions, models.PositionSummaryRowFromRow(row))
	}
	for _, row := range tableRows(body, "data", "holdingsTransactions", "table", "rows") {
		summary.HoldingsTransactions = append(summary.HoldingsTransactions, models.InstitutionalHoldingFromRow(row))
	}
	logging.LogFetch(log, "institutional_holdings", len(summary.HoldingsTransactions), nil)
	return summary
}

// FetchShortInterest returns the most recent short interest settlement
// periods, capped at four rows.
func (c *Client) FetchShortInterest(ctx context.Context, symbol string) []models.ShortInterestRecord {
	log := logging.WithSymbol(c.logger, symbol)
	url := fmt.Sprintf("%s/api/quote/%s/short-interest?assetClass=stocks", c.baseAPI, symbol)
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "short_interest", 0, err)
		return []models.ShortInterestRecord{}
	}

	rows := tableRows(body, "data", "shortInterestTable", "rows")
	if len(rows) > shortInterestRowsKept {
		rows = rows[:shortInterestRowsKept]
	}
	records := make([]models.ShortInterestRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.ShortInterestRecordFromRow(row))
	}
	logging.LogFetch(log, "short_interest", len(records), nil)
	return records
}
