package nasdaq

import (
	"context"
	"fmt"
	"strings"

	apperrors "nasdaq-client/internal/errors"
	"nasdaq-client/internal/logging"
	"nasdaq-client/internal/models"
)

const (
	// revenueQuartersKept caps the transposed revenue table at the most
	// recent quarters.
	revenueQuartersKept = 6

	// historicalPeriodThreshold is the period, in days, at which the
	// calendar window is widened to cover non-trading days.
	historicalPeriodThreshold = 150
)

// FetchCompanyProfile returns the company description paragraph, or ""
// when the profile is unavailable.
func (c *Client) FetchCompanyProfile(ctx context.Context, symbol string) string {
	log := logging.WithSymbol(c.logger, symbol)
	url := fmt.Sprintf("%s/api/company/%s/company-profile", c.baseAPI, symbol)
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "company_profile", 0, err)
		return ""
	}
	desc := lookupString(body, "", "data", "CompanyDescription", "value")
	logging.LogFetch(log, "company_profile", 1, nil)
	return desc
}

// FetchCompanyOverview maps the labeled fields of the company-profile
// payload into a typed record. The record always carries the requested
// symbol, even when the endpoint yields nothing else.
func (c *Client) FetchCompanyOverview(ctx context.Context, symbol string) models.CompanyProfile {
	log := logging.WithSymbol(c.logger, symbol)
	url := fmt.Sprintf("%s/api/company/%s/company-profile", c.baseAPI, symbol)
	row := map[string]interface{}{"symbol": symbol}

	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "company_overview", 0, err)
		return models.CompanyProfileFromRow(row)
	}

	data := lookupMap(body, "data")
	for src, dst := range map[string]string{
		"CompanyName":        "companyName",
		"Symbol":             "symbol",
		"CompanyDescription": "description",
		"Sector":             "sector",
		"Industry":           "industry",
		"Region":             "region",
		"Address":            "address",
		"CompanyUrl":         "website",
	} {
		if v := lookupString(data, "", src, "value"); v != "" {
			row[dst] = v
		}
	}
	logging.LogFetch(log, "company_overview", 1, nil)
	return models.CompanyProfileFromRow(row)
}

// FetchRevenueEarnings returns the most recent quarters of the revenue
// and earnings table. The table arrives transposed, with each
// consecutive group of four rows describing one quarter; a malformed
// table degrades the whole result to empty rather than yielding
// partial quarters.
func (c *Client) FetchRevenueEarnings(ctx context.Context, symbol string) []models.RevenueEarningsQuarter {
	log := logging.WithSymbol(c.logger, symbol)
	url := fmt.Sprintf("%s/api/company/%s/revenue?limit=1", c.baseAPI, symbol)
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "revenue_earnings", 0, err)
		return []models.RevenueEarningsQuarter{}
	}

	rows := tableRows(body, "data", "revenueTable", "rows")
	quarters, err := transposeRevenueRows(rows)
	if err != nil {
		logging.LogFetch(log, "revenue_earnings", 0, err)
		return []models.RevenueEarningsQuarter{}
	}
	if len(quarters) > revenueQuartersKept {
		quarters = quarters[len(quarters)-revenueQuartersKept:]
	}
	logging.LogFetch(log, "revenue_earnings", len(quarters), nil)
	return quarters
}

// transposeRevenueRows folds groups of four rows into quarters. The
// group layout is fixed: the quarter label sits in value1 of the first
// row, then revenue, EPS, and dividends in value2 of the next three.
func transposeRevenueRows(rows []map[string]interface{}) ([]models.RevenueEarningsQuarter, error) {
	if len(rows)%4 != 0 {
		return nil, apperrors.Wrapf(apperrors.ErrMalformedTable, "revenue table has %d rows", len(rows))
	}
	quarters := make([]models.RevenueEarningsQuarter, 0, len(rows)/4)
	for i := 0; i < len(rows); i += 4 {
		label, ok := rows[i]["value1"]
		if !ok {
			return nil, apperrors.Wrapf(apperrors.ErrMalformedTable, "revenue row %d missing value1", i)
		}
		cells := make([]interface{}, 3)
		for j := range cells {
			cell, ok := rows[i+1+j]["value2"]
			if !ok {
				return nil, apperrors.Wrapf(apperrors.ErrMalformedTable, "revenue row %d missing value2", i+1+j)
			}
			cells[j] = cell
		}
		quarters = append(quarters, models.NewRevenueEarningsQuarter(stringValue(label), cells[0], cells[1], cells[2]))
	}
	return quarters, nil
}

// FetchHistoricalQuotes returns daily OHLCV rows keyed by each row's
// raw date string. Periods of 150 days or more widen the calendar
// window by half so weekends and holidays do not shrink the sample.
func (c *Client) FetchHistoricalQuotes(ctx context.Context, symbol string, period int, asset models.AssetClass) map[string]models.HistoricalQuote {
	log := logging.WithSymbol(c.logger, symbol)

	days := period
	if period >= historicalPeriodThreshold {
		days = int(float64(period) * 1.5)
	}
	end := c.now()
	start := end.AddDate(0, 0, -days)

	url := fmt.Sprintf("%s/api/quote/%s/historical?assetclass=%s&fromdate=%s&limit=%d&todate=%s",
		c.baseAPI, symbol, asset.QueryValue(), start.Format("2006-01-02"), days, end.Format("2006-01-02"))
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "historical_quotes", 0, err)
		return map[string]models.HistoricalQuote{}
	}

	quotes := make(map[string]models.HistoricalQuote)
	for _, row := range tableRows(body, "data", "tradesTable", "rows") {
		q := models.HistoricalQuoteFromRow(row)
		if q.Date == "" {
			continue
		}
		quotes[q.Date] = q
	}
	logging.LogFetch(log, "historical_quotes", len(quotes), nil)
	return quotes
}

// FetchDividends returns the dividend history. The endpoint has
// shipped two shapes; the current data.dividends.rows is preferred
// over the legacy data.dividendTable.rows.
func (c *Client) FetchDividends(ctx context.Context, symbol string) []models.DividendRecord {
	log := logging.WithSymbol(c.logger, symbol)
	url := fmt.Sprintf("%s/api/quote/%s/dividends?assetClass=stocks", c.baseAPI, symbol)
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "dividend_history", 0, err)
		return []models.DividendRecord{}
	}

	rows := tableRows(body, "data", "dividends", "rows")
	if rows == nil {
		rows = tableRows(body, "data", "dividendTable", "rows")
	}
	records := make([]models.DividendRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.DividendRecordFromRow(row))
	}
	logging.LogFetch(log, "dividend_history", len(records), nil)
	return records
}

// FetchRatios returns named financial ratios, trying three endpoints
// in order until one yields data: the quote ratios table, the company
// ratios table, then the quote info endpoint from which a minimal set
// is synthesized.
func (c *Client) FetchRatios(ctx context.Context, symbol string) map[string]models.FinancialRatio {
	log := logging.WithSymbol(c.logger, symbol)

	endpoints := []string{
		fmt.Sprintf("%s/api/quote/%s/ratios?assetClass=stocks", c.baseAPI, symbol),
		fmt.Sprintf("%s/api/company/%s/ratios", c.baseAPI, symbol),
		fmt.Sprintf("%s/api/quote/%s/info?assetclass=stocks", c.baseAPI, symbol),
	}

	var data map[string]interface{}
	var lastErr error
	for _, url := range endpoints {
		body, err := c.getJSON(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}
		if d := lookupMap(body, "data"); len(d) > 0 {
			data = d
			break
		}
	}
	if data == nil {
		logging.LogFetch(log, "financial_ratios", 0, lastErr)
		return map[string]models.FinancialRatio{}
	}

	ratios := ratiosFromTable(data)
	if len(ratios) == 0 {
		for name, r := range ratiosFromKeyStats(data) {
			ratios[name] = r
		}
	}
	for name, r := range ratiosFromPrimaryData(data) {
		ratios[name] = r
	}
	logging.LogFetch(log, "financial_ratios", len(ratios), nil)
	return ratios
}

// ratiosFromTable maps data.ratioTable.rows into named ratios. Rows
// without a name are skipped.
func ratiosFromTable(data map[string]interface{}) map[string]models.FinancialRatio {
	ratios := make(map[string]models.FinancialRatio)
	for _, row := range tableRows(data, "ratioTable", "rows") {
		name := stringValue(row["name"])
		if name == "" {
			continue
		}
		ratios[name] = models.FinancialRatio{
			Name:         name,
			Value:        stringValue(row["value"]),
			DisplayValue: stringValue(row["displayValue"]),
		}
	}
	return ratios
}

// ratiosFromKeyStats synthesizes range entries from the info
// endpoint's keyStats block.
func ratiosFromKeyStats(data map[string]interface{}) map[string]models.FinancialRatio {
	ratios := make(map[string]models.FinancialRatio)
	for src, name := range map[string]string{
		"fiftyTwoWeekHighLow": "52 Week Range",
		"dayrange":            "Day Range",
	} {
		v := lookupString(data, "", "keyStats", src, "value")
		if v == "" {
			continue
		}
		ratios[name] = models.FinancialRatio{Name: name, Value: v, DisplayValue: v}
	}
	return ratios
}

// ratiosFromPrimaryData lifts the live quote fields of the info
// endpoint into ratio entries, keeping the formatted string as the
// display value.
func ratiosFromPrimaryData(data map[string]interface{}) map[string]models.FinancialRatio {
	ratios := make(map[string]models.FinancialRatio)
	if v := lookupString(data, "", "primaryData", "lastSalePrice"); v != "" {
		ratios["Current Price"] = models.FinancialRatio{
			Name:         "Current Price",
			Value:        strings.ReplaceAll(v, "$", ""),
			DisplayValue: v,
		}
	}
	if v := lookupString(data, "", "primaryData", "percentageChange"); v != "" {
		ratios["Percent Change"] = models.FinancialRatio{
			Name:         "Percent Change",
			Value:        strings.ReplaceAll(v, "%", ""),
			DisplayValue: v,
		}
	}
	return ratios
}

// FetchOptionChain returns the raw option chain payload. The chain's
// nested shape varies by expiry grouping so it is passed through
// undecoded.
func (c *Client) FetchOptionChain(ctx context.Context, symbol, moneyType string) map[string]interface{} {
	log := logging.WithSymbol(c.logger, symbol)
	if moneyType == "" {
		moneyType = "ALL"
	}
	url := fmt.Sprintf("%s/api/quote/%s/option-chain?assetClass=stocks&moneyType=%s&expiryType=ALL",
		c.baseAPI, symbol, moneyType)
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "option_chain", 0, err)
		return map[string]interface{}{}
	}
	data, err := dataObject(body)
	if err != nil {
		logging.LogFetch(log, "option_chain", 0, err)
		return map[string]interface{}{}
	}
	logging.LogFetch(log, "option_chain", len(data), nil)
	return data
}
