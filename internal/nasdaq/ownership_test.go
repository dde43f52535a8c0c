package nasdaq

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestFetchInsiderActivity(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/company/AAPL/insider-trades" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"numberOfTrades": map[string]interface{}{
					"rows": []interface{}{
						map[string]interface{}{"insiderTrade": "Number of Open Market Buys", "months3": "2", "months12": "4"},
					},
				},
				"numberOfSharesTraded": map[string]interface{}{
					"rows": []interface{}{
						map[string]interface{}{"insiderTrade": "Net Activity", "months3": "(95,000)", "months12": "1,200,000"},
					},
				},
				"transactionTable": map[string]interface{}{
					"table": map[string]interface{}{
						"rows": []interface{}{
							map[string]interface{}{
								"insider": "COOK TIMOTHY D", "relation": "Chief Executive Officer",
								"lastDate": "08/04/2026", "transactionType": "Sell",
								"ownType": "Direct", "sharesTraded": "100,000",
								"lastPrice": "$224.37", "sharesHeld": "3,280,180",
								"url": "/market-activity/insiders/cook-timothy-d",
							},
						},
					},
				},
			},
		})
	}))

	activity := client.FetchInsiderActivity(context.Background(), "AAPL")
	if len(activity.NumberOfTrades) != 1 || len(activity.NumberOfSharesTraded) != 1 || len(activity.Transactions) != 1 {
		t.Fatalf("table sizes = %d/%d/%d, want 1/1/1",
			len(activity.NumberOfTrades), len(activity.NumberOfSharesTraded), len(activity.Transactions))
	}

	net := activity.NumberOfSharesTraded[0]
	if net.Months3 == nil || *net.Months3 != -95000 {
		t.Fatalf("Months3 = %v, want -95000 from a parenthesis negative", net.Months3)
	}
	if net.Months12 == nil || *net.Months12 != 1200000 {
		t.Fatalf("Months12 = %v, want 1200000", net.Months12)
	}

	tx := activity.Transactions[0]
	if tx.Insider != "COOK TIMOTHY D" || tx.TransactionType != "Sell" {
		t.Fatalf("transaction = %+v", tx)
	}
	if tx.LastPrice == nil || *tx.LastPrice != 224.37 {
		t.Fatalf("LastPrice = %v, want 224.37", tx.LastPrice)
	}
	want := time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)
	if tx.LastDate == nil || !tx.LastDate.Equal(want) {
		t.Fatalf("LastDate = %v, want %v", tx.LastDate, want)
	}
	if tx.SharesHeld == nil || *tx.SharesHeld != 3280180 {
		t.Fatalf("SharesHeld = %v, want 3280180", tx.SharesHeld)
	}
}

func TestFetchInsiderActivityDegrades(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	activity := client.FetchInsiderActivity(context.Background(), "AAPL")
	if !activity.Empty() {
		t.Fatalf("degraded activity should be empty: %+v", activity)
	}
	if activity.NumberOfTrades == nil || activity.NumberOfSharesTraded == nil || activity.Transactions == nil {
		t.Fatal("degraded tables should be non-nil empty slices")
	}
}

func TestFetchInstitutionalHoldings(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/company/AAPL/institutional-holdings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"ownershipSummary": map[string]interface{}{
					"SharesOutstandingPct": map[string]interface{}{
						"label": "Institutional Ownership", "value": "63.12%",
					},
					"TotalHoldingsValue": map[string]interface{}{
						"label": "Total Value of Holdings", "value": "$2.1T",
					},
				},
				"activePositions": map[string]interface{}{
					"rows": []interface{}{
						map[string]interface{}{"positions": "Increased Positions", "holders": "2,015", "shares": "512,000,000"},
					},
				},
				"newSoldOutPositions": map[string]interface{}{
					"rows": []interface{}{
						map[string]interface{}{"positions": "New Positions", "holders": "158", "shares": "12,345,678"},
					},
				},
				"holdingsTransactions": map[string]interface{}{
					"table": map[string]interface{}{
						"rows": []interface{}{
							map[string]interface{}{
								"ownerName": "VANGUARD GROUP INC", "date": "06/30/2026",
								"sharesHeld": "1,395,162,562", "sharesChange": "(5,000,000)",
								"sharesChangePCT": "-0.36%", "marketValue": "$316,036,000,000",
								"url": "/market-activity/institutional-portfolio/vanguard",
							},
						},
					},
				},
			},
		})
	}))

	summary := client.FetchInstitutionalHoldings(context.Background(), "AAPL")
	if got := summary.OwnershipSummary["SharesOutstandingPct"].Value; got != "63.12%" {
		t.Fatalf("ownership summary value = %q", got)
	}
	if got := summary.OwnershipSummary["TotalHoldingsValue"].Label; got != "Total Value of Holdings" {
		t.Fatalf("ownership summary label = %q", got)
	}
	if len(summary.ActivePositions) != 1 || len(summary.NewSoldOutPositions) != 1 {
		t.Fatalf("position tables = %d/%d, want 1/1", len(summary.ActivePositions), len(summary.NewSoldOutPositions))
	}
	if p := summary.ActivePositions[0]; p.Holders == nil || *p.Holders != 2015 {
		t.Fatalf("Holders = %v, want 2015", p.Holders)
	}

	if len(summary.HoldingsTransactions) != 1 {
		t.Fatalf("got %d holdings transactions, want 1", len(summary.HoldingsTransactions))
	}
	h := summary.HoldingsTransactions[0]
	if h.SharesChange == nil || *h.SharesChange != -5000000 {
		t.Fatalf("SharesChange = %v, want -5000000 from a parenthesis negative", h.SharesChange)
	}
	if h.SharesChangePct == nil || !almostEqual(*h.SharesChangePct, -0.0036) {
		t.Fatalf("SharesChangePct = %v, want -0.0036 as a decimal", h.SharesChangePct)
	}
	if h.MarketValue == nil || *h.MarketValue != 316036000000 {
		t.Fatalf("MarketValue = %v, want 316036000000", h.MarketValue)
	}
}

func TestFetchInstitutionalHoldingsDegrades(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"data": nil})
	}))

	summary := client.FetchInstitutionalHoldings(context.Background(), "AAPL")
	if summary.OwnershipSummary == nil || len(summary.OwnershipSummary) != 0 {
		t.Fatalf("want a non-nil empty summary map, got %v", summary.OwnershipSummary)
	}
	if summary.ActivePositions == nil || summary.HoldingsTransactions == nil {
		t.Fatal("degraded tables should be non-nil empty slices")
	}
}

func TestFetchShortInterestKeepsFirstFour(t *testing.T) {
	rows := make([]interface{}, 0, 6)
	for i := 0; i < 6; i++ {
		rows = append(rows, map[string]interface{}{
			"settlementDate":      fmt.Sprintf("0%d/15/2026", i+1),
			"interest":            "120,000,000",
			"avgDailyShareVolume": "48,000,000",
			"daysToCover":         "2.5",
		})
	}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quote/AAPL/short-interest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"shortInterestTable": map[string]interface{}{"rows": rows},
			},
		})
	}))

	records := client.FetchShortInterest(context.Background(), "AAPL")
	if len(records) != 4 {
		t.Fatalf("got %d records, want the first 4", len(records))
	}
	first := records[0]
	want := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	if first.SettlementDate == nil || !first.SettlementDate.Equal(want) {
		t.Fatalf("SettlementDate = %v, want %v", first.SettlementDate, want)
	}
	if first.Interest == nil || *first.Interest != 120000000 {
		t.Fatalf("Interest = %v, want 120000000", first.Interest)
	}
	if first.DaysToCover == nil || *first.DaysToCover != 2.5 {
		t.Fatalf("DaysToCover = %v, want 2.5", first.DaysToCover)
	}
}
