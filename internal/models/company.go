package models

import "strings"

// CompanyProfile describes a listed company as reported by the
// company-profile endpoint.
type CompanyProfile struct {
	Symbol      string   `json:"symbol"`
	Name        string   `json:"companyName"`
	Description string   `json:"description"`
	Sector      string   `json:"sector"`
	Industry    string   `json:"industry"`
	Region      string   `json:"region"`
	Address     string   `json:"address"`
	Website     string   `json:"website"`
	MarketCap   *float64 `json:"marketCap"`
	Employees   *int64   `json:"employees"`
	AssetType   string   `json:"assetType"`
}

// CompanyProfileFromRow builds a profile from a flattened
// company-profile payload. Market cap and employee count degrade to nil
// when the source value does not parse.
func CompanyProfileFromRow(row map[string]interface{}) CompanyProfile {
	p := CompanyProfile{
		Symbol:      strings.ToUpper(stringField(row, "symbol")),
		Name:        stringField(row, "companyName", "name"),
		Description: stringField(row, "description"),
		Sector:      stringField(row, "sector"),
		Industry:    stringField(row, "industry"),
		Region:      stringField(row, "region"),
		Address:     stringField(row, "address"),
		Website:     stringField(row, "website", "companyUrl"),
		MarketCap:   ParseMonetary(field(row, "marketCap")),
		Employees:   ParseInt(field(row, "employees")),
		AssetType:   stringField(row, "assetType"),
	}
	if p.AssetType == "" {
		p.AssetType = string(AssetStock)
	}
	return p
}
