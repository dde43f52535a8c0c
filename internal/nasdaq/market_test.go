package nasdaq

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestFetchEarningsCalendar(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/calendar/earnings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		switch r.URL.Query().Get("date") {
		case "2026-08-25":
			writeJSON(w, map[string]interface{}{
				"data": map[string]interface{}{
					"rows": []interface{}{
						map[string]interface{}{
							"symbol":      "aapl",
							"time":        "time-after-hours",
							"epsForecast": "$1.33",
							"noOfEsts":    float64(11),
						},
					},
				},
			})
		case "2026-08-26":
			http.Error(w, "boom", http.StatusInternalServerError)
		case "2026-08-27":
			writeJSON(w, map[string]interface{}{
				"data": map[string]interface{}{
					"rows": []interface{}{
						map[string]interface{}{
							"symbol":        "MSFT",
							"lastYearRptDt": "08/27/2025",
						},
					},
				},
			})
		default:
			t.Errorf("unexpected date %q", r.URL.Query().Get("date"))
		}
	}))

	events := client.FetchEarningsCalendar(context.Background(), 3)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2 with the failed day skipped", len(events))
	}

	first := events[0]
	if first.Symbol != "AAPL" {
		t.Fatalf("Symbol = %q, want AAPL", first.Symbol)
	}
	wantCall := "callDate: 2026-08-25, reportTime: time-after-hours, epsForecast: $1.33, numberOfEstimates: 11"
	if first.NextEarningCall != wantCall {
		t.Fatalf("NextEarningCall = %q, want %q", first.NextEarningCall, wantCall)
	}
	if first.DaysToEarnings == nil || *first.DaysToEarnings != 0 {
		t.Fatalf("DaysToEarnings = %v, want 0", first.DaysToEarnings)
	}

	second := events[1]
	if second.NextEarningCall != "callDate: 2026-08-27, lastYearReportDate: 08/27/2025" {
		t.Fatalf("NextEarningCall = %q", second.NextEarningCall)
	}
	if second.DaysToEarnings == nil || *second.DaysToEarnings != 2 {
		t.Fatalf("DaysToEarnings = %v, want 2", second.DaysToEarnings)
	}
}

func screenerPayloads() (stocks, etfs map[string]interface{}) {
	stocks = map[string]interface{}{
		"data": map[string]interface{}{
			"rows": []interface{}{
				map[string]interface{}{
					"symbol": "AAPL", "name": "Apple Inc.", "lastsale": "$177.80",
					"netchange": "-1.20", "pctchange": "-0.67%",
					"marketCap": "2,800,000,000,000", "country": "United States",
					"ipoyear": "1980", "volume": "45,678,912",
					"sector": "Technology", "industry": "Computer Manufacturing",
					"url": "/market-activity/stocks/aapl",
				},
			},
		},
	}
	etfs = map[string]interface{}{
		"data": map[string]interface{}{
			"data": map[string]interface{}{
				"rows": []interface{}{
					map[string]interface{}{
						"symbol": "SPY", "companyName": "SPDR S&P 500 ETF",
						"lastSalePrice": "$500.10", "netchange": "2.50",
						"percentageChange": "0.50%", "deltaIndicator": "up",
						"oneYearPercentage": "12.00%",
					},
				},
			},
		},
	}
	return stocks, etfs
}

func TestFetchScreenerMergesAssetClasses(t *testing.T) {
	stocks, etfs := screenerPayloads()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/screener/stocks":
			writeJSON(w, stocks)
		case "/api/screener/etf":
			writeJSON(w, etfs)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	results := client.FetchScreener(context.Background())
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	stock := results[0]
	if stock.Symbol != "AAPL" || stock.AssetType != "stock" {
		t.Fatalf("stock row = %+v", stock)
	}
	if stock.LastSalePrice == nil || *stock.LastSalePrice != 177.80 {
		t.Fatalf("LastSalePrice = %v, want 177.80", stock.LastSalePrice)
	}
	if stock.PercentageChange == nil || !almostEqual(*stock.PercentageChange, -0.0067) {
		t.Fatalf("PercentageChange = %v, want -0.0067", stock.PercentageChange)
	}
	if stock.MarketCap == nil || *stock.MarketCap != 2.8e12 {
		t.Fatalf("MarketCap = %v, want 2.8e12", stock.MarketCap)
	}
	if stock.Volume == nil || *stock.Volume != 45678912 {
		t.Fatalf("Volume = %v, want 45678912", stock.Volume)
	}

	etf := results[1]
	if etf.Symbol != "SPY" || etf.AssetType != "etf" {
		t.Fatalf("etf row = %+v", etf)
	}
	if etf.Name != "SPDR S&P 500 ETF" {
		t.Fatalf("etf Name = %q, long field names were not mapped", etf.Name)
	}
	if etf.LastSalePrice == nil || *etf.LastSalePrice != 500.10 {
		t.Fatalf("etf LastSalePrice = %v, want 500.10", etf.LastSalePrice)
	}
	if etf.PercentageChange == nil || !almostEqual(*etf.PercentageChange, 0.005) {
		t.Fatalf("etf PercentageChange = %v, want 0.005", etf.PercentageChange)
	}
	if etf.MarketCap != nil || etf.Country != "" || etf.Volume != nil {
		t.Fatalf("etf row should leave missing stock columns empty: %+v", etf)
	}
}

func TestFetchScreenerEitherRequestFailing(t *testing.T) {
	stocks, _ := screenerPayloads()
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/screener/stocks" {
			writeJSON(w, stocks)
			return
		}
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	results := client.FetchScreener(context.Background())
	if results == nil || len(results) != 0 {
		t.Fatalf("want a non-nil empty slice when the ETF leg fails, got %v", results)
	}
}

func TestFetchNews(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/news/topic/articlebysymbol" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if q := r.URL.RawQuery; !strings.Contains(q, "q=AAPL|STOCKS") {
			t.Errorf("query = %q, want symbol selector", q)
		}
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"rows": []interface{}{
					map[string]interface{}{
						"title": "Fresh article", "created": "Aug 20, 2026",
						"publisher": "Reuters", "url": "/articles/fresh",
					},
					map[string]interface{}{
						"title": "Stale article", "created": "Jan 1, 2020",
						"publisher": "MT Newswires", "url": "/articles/stale",
					},
					map[string]interface{}{
						"title": "Undated article", "publisher": "Benzinga",
						"url": "/articles/undated",
					},
				},
			},
		})
	}))

	articles := client.FetchNews(context.Background(), "AAPL", 7)
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1 within the window", len(articles))
	}
	a := articles[0]
	if a.Title != "Fresh article" {
		t.Fatalf("Title = %q", a.Title)
	}
	if a.Created != "Aug 20, 2026" {
		t.Fatalf("Created = %q, raw feed date should be preserved", a.Created)
	}
	if want := client.baseWeb + "/articles/fresh"; a.URL != want {
		t.Fatalf("URL = %q, want %q", a.URL, want)
	}
}

func TestFetchPressReleases(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/news/topic/press_release" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if q := r.URL.RawQuery; !strings.Contains(q, "q=symbol:AAPL|assetclass:stocks") {
			t.Errorf("query = %q, want press selector", q)
		}
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"rows": []interface{}{
					map[string]interface{}{
						"title": "Quarterly results", "created": "Aug 15, 2026",
						"publisher": "GlobeNewswire", "url": "https://www.globenewswire.com/x",
					},
					map[string]interface{}{
						"title": "Old announcement", "created": "Jan 5, 2026",
						"publisher": "GlobeNewswire", "url": "/press/old",
					},
				},
			},
		})
	}))

	releases := client.FetchPressReleases(context.Background(), "AAPL", 15)
	if len(releases) != 1 {
		t.Fatalf("got %d releases, want 1 within the window", len(releases))
	}
	if releases[0].Title != "Quarterly results" {
		t.Fatalf("Title = %q", releases[0].Title)
	}
	// Absolute links pass through untouched.
	if releases[0].URL != "https://www.globenewswire.com/x" {
		t.Fatalf("URL = %q", releases[0].URL)
	}
}

func TestFetchNewsDegrades(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusForbidden)
	}))

	articles := client.FetchNews(context.Background(), "AAPL", 7)
	if articles == nil || len(articles) != 0 {
		t.Fatalf("want a non-nil empty slice, got %v", articles)
	}
	releases := client.FetchPressReleases(context.Background(), "AAPL", 15)
	if releases == nil || len(releases) != 0 {
		t.Fatalf("want a non-nil empty slice, got %v", releases)
	}
}
