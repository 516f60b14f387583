package store

import "time"

type CampaignRecord struct {
	ID                  int64
	Age                 int64
	Income              float64
	Education           string
	MaritalStatus       string
	TotalSpent          float64
	NumWebPurchases     int64
	NumStorePurchases   int64
	NumCatalogPurchases int64
}

type DatasetImport struct {
	Source      string
	RecordCount int64
	ImportedAt  time.Time
}
