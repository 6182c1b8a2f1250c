package entities

// Backup is the full-dataset export document. The field names match the
// file produced by the legacy app so old backups import directly.
type Backup struct {
	Customers   []Customer     `json:"customers"`
	Orders      []ServiceOrder `json:"orders"`
	Items       []CatalogItem  `json:"items"`
	CompanyInfo CompanyProfile `json:"companyInfo"`
}
