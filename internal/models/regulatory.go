package models

// SECFiling is one row of the SEC filings table.
type SECFiling struct {
	CompanyName string `json:"companyName"`
	FormType    string `json:"formType"`
	Filed       string `json:"filed"`
	Period      string `json:"period"`
	URL         string `json:"url"`
}

// SECFilingFromRow maps one filings row. The document URL prefers the
// nested view.htmlLink over a top-level url field; the view object
// itself is dropped.
func SECFilingFromRow(row map[string]interface{}) SECFiling {
	f := SECFiling{
		CompanyName: stringField(row, "companyName"),
		FormType:    stringField(row, "formType", "filingType", "type"),
		Filed:       stringField(row, "filed", "filedDate", "date"),
		Period:      stringField(row, "period", "periodOfReport"),
		URL:         stringField(row, "url"),
	}
	if view, ok := row["view"].(map[string]interface{}); ok {
		if link, _ := view["htmlLink"].(string); link != "" {
			f.URL = link
		}
	}
	return f
}
