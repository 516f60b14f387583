package adapters

import (
	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/de-tools/campaign-dash/pkg/models/store"
)

func MapDomainRecordToStore(r domain.Record) store.CampaignRecord {
	return store.CampaignRecord{
		ID:                  int64(r.ID),
		Age:                 int64(r.Age),
		Income:              r.Income,
		Education:           r.Education,
		MaritalStatus:       r.MaritalStatus,
		TotalSpent:          r.TotalSpent,
		NumWebPurchases:     int64(r.NumWebPurchases),
		NumStorePurchases:   int64(r.NumStorePurchases),
		NumCatalogPurchases: int64(r.NumCatalogPurchases),
	}
}

func MapStoreRecordToDomain(r store.CampaignRecord) domain.Record {
	return domain.Record{
		ID:                  int(r.ID),
		Age:                 int(r.Age),
		Income:              r.Income,
		Education:           r.Education,
		MaritalStatus:       r.MaritalStatus,
		TotalSpent:          r.TotalSpent,
		NumWebPurchases:     int(r.NumWebPurchases),
		NumStorePurchases:   int(r.NumStorePurchases),
		NumCatalogPurchases: int(r.NumCatalogPurchases),
	}
}
