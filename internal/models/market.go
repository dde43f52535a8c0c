package models

import "strings"

// AssetClass selects between the two instrument types the quote
// endpoints distinguish.
type AssetClass string

const (
	AssetStock AssetClass = "stock"
	AssetETF   AssetClass = "etf"
)

// QueryValue returns the spelling the quote endpoints expect in their
// assetclass query parameter ("stock" travels as "stocks").
func (a AssetClass) QueryValue() string {
	if a == AssetStock {
		return "stocks"
	}
	return string(a)
}

// MarketScreenerResult is one merged screener row. Percentage fields
// are stored as decimals (5.5% is 0.055).
type MarketScreenerResult struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"companyName"`
	LastSalePrice    *float64 `json:"lastSalePrice"`
	NetChange        *float64 `json:"netChange"`
	PercentageChange *float64 `json:"percentageChange"`
	MarketCap        *float64 `json:"marketCap"`
	Country          string   `json:"country"`
	IPOYear          string   `json:"ipoYear"`
	Volume           *int64   `json:"volume"`
	Sector           string   `json:"sector"`
	Industry         string   `json:"industry"`
	AssetType        string   `json:"assetType"`
}

// MarketScreenerResultFromRow maps one screener row. Stock rows carry
// the short field names (name, lastsale, pctchange) and ETF rows the
// long ones (companyName, lastSalePrice, percentageChange); both
// spellings are accepted.
func MarketScreenerResultFromRow(row map[string]interface{}, asset AssetClass) MarketScreenerResult {
	return MarketScreenerResult{
		Symbol:           strings.ToUpper(stringField(row, "symbol")),
		Name:             stringField(row, "companyName", "name"),
		LastSalePrice:    ParseMonetary(field(row, "lastSalePrice", "lastsale")),
		NetChange:        ParseMonetary(field(row, "netchange", "netChange")),
		PercentageChange: ParsePercent(field(row, "percentageChange", "pctchange")),
		MarketCap:        ParseMonetary(field(row, "marketCap")),
		Country:          stringField(row, "country"),
		IPOYear:          stringField(row, "ipoyear", "ipoYear"),
		Volume:           ParseInt(field(row, "volume")),
		Sector:           stringField(row, "sector"),
		Industry:         stringField(row, "industry"),
		AssetType:        string(asset),
	}
}

// NewsArticle is one article from the symbol news feed. Created keeps
// the feed's raw date string.
type NewsArticle struct {
	Title     string `json:"title"`
	Created   string `json:"created"`
	Publisher string `json:"publisher"`
	URL       string `json:"url"`
}

// NewsArticleFromRow maps one article row. Relative links are expected
// to be absolutized by the caller before construction.
func NewsArticleFromRow(row map[string]interface{}) NewsArticle {
	return NewsArticle{
		Title:     stringField(row, "title"),
		Created:   stringField(row, "created"),
		Publisher: stringField(row, "publisher"),
		URL:       stringField(row, "url"),
	}
}

// PressRelease is a news article sourced from the press-release feed.
type PressRelease struct {
	NewsArticle
}

// EarningsCalendarEvent is one upcoming earnings call. NextEarningCall
// is a human-readable "label: value" summary of the calendar row.
type EarningsCalendarEvent struct {
	Symbol          string `json:"symbol"`
	NextEarningCall string `json:"next_earning_call"`
	DaysToEarnings  *int64 `json:"days_to_earnings"`
}
