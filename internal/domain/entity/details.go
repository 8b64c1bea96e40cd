package entity

// DetailsRow é uma venda individual analisada pela auditoria.
// Todos os valores monetários e taxas chegam como strings no formato pt-BR.
type DetailsRow struct {
	EstablishmentCode   string `json:"cod_estabelecimento"`
	Acquirer            string `json:"credenciadora"`
	SaleDate            string `json:"data_venda"`
	SaleStatus          string `json:"status_venda"`
	NSU                 string `json:"nsu"`
	Brand               string `json:"bandeira"`
	PaymentMethod       string `json:"modalidade_pagamento"`
	Product             string `json:"produto"`
	SaleValue           string `json:"valor_venda"`
	FeeValue            string `json:"valor_taxa"`
	NetValue            string `json:"valor_liquido"`
	ReferencedFee       string `json:"taxa_referenciada"`
	CardNumber          string `json:"numero_cartao"`
	ReceiptDate         string `json:"data_recebimento"`
	AuditedFee          string `json:"taxa_auditada"`
	AuditedFeeValue     string `json:"valor_taxa_auditada"`
	DifferenceToReceive string `json:"diferenca_receber"`
}

// PaginatedDetails é uma página de DetailsRow.
type PaginatedDetails struct {
	Data        []DetailsRow `json:"data"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
	TotalItems  int          `json:"totalItems"`
	AuditID     string       `json:"auditId"`
	PageSize    int          `json:"pageSize"`
}
