package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/repository"
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/summary"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	auditRepo  repository.AuditRepository
	exportRepo repository.ExportRepository
	publisher  repository.ReportPublisher
	console    types.ConsoleInterface
	config     *types.Config
}

// NewDashboardUseCase creates a new dashboard use case. publisher may be nil.
func NewDashboardUseCase(
	auditRepo repository.AuditRepository,
	exportRepo repository.ExportRepository,
	publisher repository.ReportPublisher,
	console types.ConsoleInterface,
	config *types.Config,
) *DashboardUseCase {
	if config == nil {
		config = types.DefaultConfig()
	}
	return &DashboardUseCase{
		auditRepo:  auditRepo,
		exportRepo: exportRepo,
		publisher:  publisher,
		console:    console,
		config:     config,
	}
}

// ListAudits exibe as auditorias disponíveis.
func (uc *DashboardUseCase) ListAudits(ctx context.Context) error {
	status := uc.console.Status("Carregando auditorias...")
	audits, err := uc.auditRepo.ListAudits(ctx)
	status.Stop()
	if err != nil {
		return fmt.Errorf("error listing audits: %w", err)
	}

	if len(audits) == 0 {
		uc.console.LogInfo("Nenhuma auditoria encontrada.")
		return nil
	}

	table := uc.console.CreateTable()
	table.AddColumn("ID")
	table.AddColumn("Data de criação")
	table.AddColumn("Estabelecimento")
	for _, audit := range audits {
		table.AddRow(fmt.Sprintf("%d", audit.ID), formatDate(audit), audit.CompanyName())
	}

	uc.console.Print(table.Render())
	return nil
}

// LoadSummary busca a auditoria e monta o relatório do resumo para a seleção.
func (uc *DashboardUseCase) LoadSummary(ctx context.Context, auditID string, selection entity.FilterSelection) (entity.SummaryReport, error) {
	if auditID == "" {
		return entity.SummaryReport{}, types.ErrMissingAuditID
	}

	status := uc.console.Status(fmt.Sprintf("Carregando auditoria #%s...", auditID))
	audit, err := uc.auditRepo.GetAudit(ctx, auditID)
	status.Stop()
	if err != nil {
		return entity.SummaryReport{}, fmt.Errorf("error loading audit %s: %w", auditID, err)
	}

	return entity.SummaryReport{
		AuditID:       auditID,
		Establishment: audit.Establishment,
		Table:         summary.Build(audit.SummaryData, selection),
	}, nil
}

// ShowSummary exibe a grade do resumo, as opções de filtro e os gráficos.
func (uc *DashboardUseCase) ShowSummary(ctx context.Context, auditID string, selection entity.FilterSelection) error {
	report, err := uc.LoadSummary(ctx, auditID, selection)
	if err != nil {
		return err
	}
	table := report.Table

	uc.printEstablishment(report)

	if len(table.BrandOptions) == 0 && len(table.ProductOptions) == 0 {
		uc.console.LogWarning("A auditoria #%s não possui dados de resumo.", auditID)
		return nil
	}
	uc.warnUnknownOptions(selection, table)

	grid := uc.console.CreateTable()
	for _, column := range summary.Header(table) {
		grid.AddColumn(column)
	}
	for _, record := range summary.Cells(table) {
		grid.AddRow(toCells(record)...)
	}
	uc.console.Print(grid.Render())

	uc.console.Println()
	uc.console.Printf("Bandeiras: %s\n", strings.Join(table.BrandOptions, ", "))
	uc.console.Printf("Produtos: %s\n", strings.Join(table.ProductOptions, ", "))

	for _, series := range []entity.ChartSeries{table.BrandSeries, table.PeriodSeries, table.ProductSeries} {
		uc.console.DisplayBars(series.Title, toBars(series))
	}
	return nil
}

// ShowDetails exibe uma página dos detalhes de venda.
func (uc *DashboardUseCase) ShowDetails(ctx context.Context, auditID string, page, pageSize int) error {
	if auditID == "" {
		return types.ErrMissingAuditID
	}
	if pageSize <= 0 {
		pageSize = uc.config.PageSize
	}

	status := uc.console.Status(fmt.Sprintf("Carregando detalhes da auditoria #%s...", auditID))
	details, err := uc.auditRepo.GetDetails(ctx, auditID, page, pageSize)
	status.Stop()
	if err != nil {
		return fmt.Errorf("error loading details of audit %s: %w", auditID, err)
	}

	if len(details.Data) == 0 {
		uc.console.LogInfo("Nenhum detalhe encontrado para a auditoria #%s.", auditID)
		return nil
	}

	table := uc.console.CreateTable()
	for _, column := range []string{"NSU", "Data da Venda", "Bandeira", "Produto", "Valor da Venda", "Taxa Referenciada", "Taxa Auditada", "Diferença a Receber"} {
		table.AddColumn(column)
	}
	for _, row := range details.Data {
		table.AddRow(
			row.NSU,
			row.SaleDate,
			row.Brand,
			row.Product,
			summary.FormatValue(row.SaleValue),
			summary.FormatPercentage(row.ReferencedFee),
			summary.FormatPercentage(row.AuditedFee),
			summary.FormatValue(row.DifferenceToReceive),
		)
	}
	uc.console.Print(table.Render())
	uc.console.Printf("Página %d de %d (%d itens)\n", details.CurrentPage, details.TotalPages, details.TotalItems)
	return nil
}

// DeleteAudit remove a auditoria após confirmação.
func (uc *DashboardUseCase) DeleteAudit(ctx context.Context, auditID string, confirmed bool) error {
	if auditID == "" {
		return types.ErrMissingAuditID
	}

	if !confirmed && !uc.console.Confirm(fmt.Sprintf("Excluir a auditoria #%s? Esta ação não pode ser desfeita.", auditID)) {
		uc.console.LogInfo("Exclusão cancelada.")
		return nil
	}

	if err := uc.auditRepo.DeleteAudit(ctx, auditID); err != nil {
		return fmt.Errorf("error deleting audit %s: %w", auditID, err)
	}
	uc.console.LogSuccess("Auditoria #%s excluída.", auditID)
	return nil
}

// ShareSummary exibe o link público do resumo.
func (uc *DashboardUseCase) ShareSummary(auditID, locale string) (string, error) {
	if locale == "" {
		locale = uc.config.Locale
	}

	link, err := ShareLink(uc.config.DashboardURL, locale, auditID)
	if err != nil {
		return "", err
	}
	uc.console.LogSuccess("Link do resumo: %s", link)
	return link, nil
}

func (uc *DashboardUseCase) printEstablishment(report entity.SummaryReport) {
	uc.console.Printf("Resumo #%s\n", report.AuditID)
	if est := report.Establishment; est != nil {
		uc.console.Printf("Estabelecimento: %s\n", est.CompanyName)
		uc.console.Printf("CNPJ: %s\n", est.CNPJ)
		uc.console.Printf("Responsável: %s\n", est.Responsible)
	}
	uc.console.Println()
}

func (uc *DashboardUseCase) warnUnknownOptions(selection entity.FilterSelection, table entity.SummaryTable) {
	for _, brand := range missing(selection.Brands, table.BrandOptions) {
		uc.console.LogWarning("Bandeira '%s' não encontrada na auditoria", brand)
	}
	for _, product := range missing(selection.Products, table.ProductOptions) {
		uc.console.LogWarning("Produto '%s' não encontrado na auditoria", product)
	}
}

func missing(selected, options []string) []string {
	known := make(map[string]struct{}, len(options))
	for _, option := range options {
		known[option] = struct{}{}
	}

	var out []string
	for _, value := range selected {
		if _, ok := known[value]; !ok {
			out = append(out, value)
		}
	}
	return out
}

func toCells(record []string) []interface{} {
	cells := make([]interface{}, len(record))
	for i, value := range record {
		cells[i] = value
	}
	return cells
}

func toBars(series entity.ChartSeries) []types.ChartBar {
	bars := make([]types.ChartBar, len(series.Labels))
	for i, label := range series.Labels {
		bars[i] = types.ChartBar{Label: label, Value: series.Values[i]}
	}
	return bars
}

func formatDate(audit entity.Audit) string {
	if audit.CreatedAt.IsZero() {
		return "-"
	}
	return audit.CreatedAt.Format("02/01/2006")
}
