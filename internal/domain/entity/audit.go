package entity

import "time"

// Establishment representa o estabelecimento auditado.
type Establishment struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	TradeName   string `json:"tradeName"`
	CNPJ        string `json:"cnpj"`
	Responsible string `json:"responsible"`
}

// Audit representa uma auditoria como devolvida pela API do Auditaxs.
type Audit struct {
	ID              int64          `json:"id"`
	Exported        bool           `json:"exported"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	EstablishmentID int64          `json:"establishmentId"`
	Establishment   *Establishment `json:"establishment,omitempty"`
	SummaryData     []SummaryRow   `json:"summaryData,omitempty"`
	DetailsData     []DetailsRow   `json:"detailsData,omitempty"`
}

// CompanyName retorna a razão social do estabelecimento ou "-" quando ausente.
func (a Audit) CompanyName() string {
	if a.Establishment == nil || a.Establishment.CompanyName == "" {
		return "-"
	}
	return a.Establishment.CompanyName
}
