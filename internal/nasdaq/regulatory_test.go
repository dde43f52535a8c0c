package nasdaq

import (
	"context"
	"net/http"
	"testing"
)

func TestFetchSECFilings(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/company/AAPL/sec-filings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("filingType"); got != "ALL" {
			t.Errorf("filingType = %q, want ALL", got)
		}
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"rows": []interface{}{
					map[string]interface{}{
						"companyName": "APPLE INC", "formType": "10-Q",
						"filed": "08/01/2026", "period": "06/27/2026",
						"url": "https://www.nasdaq.com/plain-link",
						"view": map[string]interface{}{
							"htmlLink": "https://www.sec.gov/Archives/doc.html",
							"docFormat": "html",
						},
					},
					map[string]interface{}{
						"companyName": "APPLE INC", "formType": "8-K",
						"filed": "07/15/2026", "period": "",
						"url": "https://www.nasdaq.com/only-link",
					},
				},
			},
		})
	}))

	filings := client.FetchSECFilings(context.Background(), "AAPL", "")
	if len(filings) != 2 {
		t.Fatalf("got %d filings, want 2", len(filings))
	}
	// The nested view link wins over the top-level url.
	if filings[0].URL != "https://www.sec.gov/Archives/doc.html" {
		t.Fatalf("URL = %q, want the view htmlLink", filings[0].URL)
	}
	if filings[0].FormType != "10-Q" || filings[0].Filed != "08/01/2026" {
		t.Fatalf("filing = %+v", filings[0])
	}
	if filings[1].URL != "https://www.nasdaq.com/only-link" {
		t.Fatalf("URL = %q, want the top-level url", filings[1].URL)
	}
}

func TestFetchSECFilingsLegacyTable(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("filingType"); got != "10-K" {
			t.Errorf("filingType = %q, want 10-K", got)
		}
		writeJSON(w, map[string]interface{}{
			"data": map[string]interface{}{
				"filingsTable": map[string]interface{}{
					"rows": []interface{}{
						map[string]interface{}{
							"companyName": "APPLE INC", "formType": "10-K",
							"filed": "11/01/2025", "period": "09/27/2025",
							"url": "https://www.nasdaq.com/annual",
						},
					},
				},
			},
		})
	}))

	filings := client.FetchSECFilings(context.Background(), "AAPL", "10-K")
	if len(filings) != 1 {
		t.Fatalf("got %d filings from the legacy table, want 1", len(filings))
	}
	if filings[0].FormType != "10-K" {
		t.Fatalf("FormType = %q", filings[0].FormType)
	}
}

func TestFetchSECFilingsDegrades(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))

	filings := client.FetchSECFilings(context.Background(), "AAPL", "ALL")
	if filings == nil || len(filings) != 0 {
		t.Fatalf("want a non-nil empty slice, got %v", filings)
	}
}
