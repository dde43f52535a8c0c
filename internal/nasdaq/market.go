package nasdaq

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nasdaq-client/internal/logging"
	"nasdaq-client/internal/models"
)

// earningsCallFields orders the calendar row fields folded into the
// human-readable call summary. The first element of each pair is the
// row key, the second the label it is printed under.
var earningsCallFields = [][2]string{
	{"callDate", "callDate"},
	{"lastYearRptDt", "lastYearReportDate"},
	{"lastYearEPS", "lastYearEPS"},
	{"time", "reportTime"},
	{"fiscalQuarterEnding", "fiscalQuarterEnding"},
	{"epsForecast", "epsForecast"},
	{"noOfEsts", "numberOfEstimates"},
}

// FetchEarningsCalendar returns the earnings calls scheduled in the
// daysAhead-day window starting today. Days whose request fails are
// skipped without failing the rest of the window.
func (c *Client) FetchEarningsCalendar(ctx context.Context, daysAhead int) []models.EarningsCalendarEvent {
	now := c.now()
	events := []models.EarningsCalendarEvent{}
	for day := 0; day < daysAhead; day++ {
		dateStr := now.AddDate(0, 0, day).Format("2006-01-02")
		url := fmt.Sprintf("%s/api/calendar/earnings?date=%s", c.baseAPI, dateStr)
		body, err := c.getJSON(ctx, url)
		if err != nil {
			logging.LogFetch(c.logger, "earnings_calendar_day", 0, err)
			continue
		}
		for _, row := range tableRows(body, "data", "rows") {
			row["callDate"] = dateStr
			events = append(events, earningsEventFromRow(row, now))
		}
	}
	logging.LogFetch(c.logger, "earnings_calendar", len(events), nil)
	return events
}

// earningsEventFromRow folds one calendar row into an event. The call
// summary lists only the fields present in the row, labeled and joined
// in a fixed order. DaysToEarnings counts calendar days from today to
// the call date.
func earningsEventFromRow(row map[string]interface{}, now time.Time) models.EarningsCalendarEvent {
	parts := make([]string, 0, len(earningsCallFields))
	for _, f := range earningsCallFields {
		v, ok := row[f[0]]
		if !ok || v == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f[1], stringValue(v)))
	}
	event := models.EarningsCalendarEvent{
		Symbol:          strings.ToUpper(stringValue(row["symbol"])),
		NextEarningCall: strings.Join(parts, ", "),
	}
	if call := models.ParseDate(row["callDate"], models.DateFormats); call != nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		days := int64(call.Sub(today).Hours() / 24)
		event.DaysToEarnings = &days
	}
	return event
}

// FetchScreener returns the stock and ETF screeners merged into one
// list. Either request failing degrades the whole result to empty.
func (c *Client) FetchScreener(ctx context.Context) []models.MarketScreenerResult {
	stocksURL := fmt.Sprintf("%s/api/screener/stocks?tableonly=false&download=true", c.baseAPI)
	stocksBody, err := c.getJSON(ctx, stocksURL)
	if err != nil {
		logging.LogFetch(c.logger, "screener", 0, err)
		return []models.MarketScreenerResult{}
	}
	etfURL := fmt.Sprintf("%s/api/screener/etf?tableonly=false&download=true", c.baseAPI)
	etfBody, err := c.getJSON(ctx, etfURL)
	if err != nil {
		logging.LogFetch(c.logger, "screener", 0, err)
		return []models.MarketScreenerResult{}
	}

	// The ETF response nests its table one level deeper than the stock
	// response does.
	stockRows := tableRows(stocksBody, "data", "rows")
	etfRows := tableRows(etfBody, "data", "data", "rows")

	results := make([]models.MarketScreenerResult, 0, len(stockRows)+len(etfRows))
	for _, row := range stockRows {
		results = append(results, models.MarketScreenerResultFromRow(row, models.AssetStock))
	}
	for _, row := range etfRows {
		results = append(results, models.MarketScreenerResultFromRow(row, models.AssetETF))
	}
	logging.LogFetch(c.logger, "screener", len(results), nil)
	return results
}

// FetchNews returns recent articles for the symbol in feed order.
// Articles older than daysBack days are dropped, as are rows whose
// created date does not parse.
func (c *Client) FetchNews(ctx context.Context, symbol string, daysBack int) []models.NewsArticle {
	log := logging.WithSymbol(c.logger, symbol)
	url := fmt.Sprintf("%s/api/news/topic/articlebysymbol?q=%s|STOCKS&offset=0&limit=5&fallback=true",
		c.baseWeb, symbol)
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "news", 0, err)
		return []models.NewsArticle{}
	}

	cutoff := c.now().AddDate(0, 0, -daysBack)
	articles := []models.NewsArticle{}
	for _, row := range tableRows(body, "data", "rows") {
		created := models.ParseDate(row["created"], models.NewsDateFormats)
		if created == nil || created.Before(cutoff) {
			continue
		}
		article := models.NewsArticleFromRow(row)
		article.URL = c.fullURL(article.URL)
		articles = append(articles, article)
	}
	logging.LogFetch(log, "news", len(articles), nil)
	return articles
}

// FetchPressReleases returns recent press releases for the symbol,
// filtered by the same recency rule as FetchNews.
func (c *Client) FetchPressReleases(ctx context.Context, symbol string, daysBack int) []models.PressRelease {
	log := logging.WithSymbol(c.logger, symbol)
	url := fmt.Sprintf("%s/api/news/topic/press_release?q=symbol:%s|assetclass:stocks&limit=10&offset=0",
		c.baseWeb, symbol)
	body, err := c.getJSON(ctx, url)
	if err != nil {
		logging.LogFetch(log, "press_releases", 0, err)
		return []models.PressRelease{}
	}

	cutoff := c.now().AddDate(0, 0, -daysBack)
	releases := []models.PressRelease{}
	for _, row := range tableRows(body, "data", "rows") {
		created := models.ParseDate(row["created"], models.NewsDateFormats)
		if created == nil || created.Before(cutoff) {
			continue
		}
		release := models.PressRelease{NewsArticle: models.NewsArticleFromRow(row)}
		release.URL = c.fullURL(release.URL)
		releases = append(releases, release)
	}
	logging.LogFetch(log, "press_releases", len(releases), nil)
	return releases
}
