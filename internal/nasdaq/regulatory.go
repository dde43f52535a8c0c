package nasdaq

import (
	"context"
	"fmt"

	"nasdaq-client/internal/logging"
	"nasdaq-client/internal/models"
)

// FetchSECFilings returns recent SEC filings for the symbol.
// filingType narrows to one form type; "ALL" or "" fetches everything.
func (c *Client) FetchSECFilings(ctx context.Context, symbol, filingType string) []models.SECFiling {
	log := logging.WithSymbol(c.logger, symbol)
	if filingType == "" {
		filingType = "ALL"
	}
	url := fmt.Sprintf("%s/api/company/%s/sec-filings?limit=10&filingType=%s", c.baseAPI, symbol, filingType)
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "sec_filings", 0, err)
		return []models.SECFiling{}
	}

	// Newer responses put rows directly under data; older ones nest
	// them in filingsTable.
	rows := tableRows(body, "data", "rows")
	if rows == nil {
		rows = tableRows(body, "data", "filingsTable", "rows")
	}
	filings := make([]models.SECFiling, 0, len(rows))
	for _, row := range rows {
		filings = append(filings, models.SECFilingFromRow(row))
	}
	logging.LogFetch(log, "sec_filings", len(filings), nil)
	return filings
}
