package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
)

// SupportedReportTypes são os formatos aceitos por ExportSummary.
var SupportedReportTypes = []string{"pdf", "xlsx", "csv", "json"}

// ExportSummary exporta o resumo nos formatos pedidos.
// Falhas de um formato são registradas e não impedem os demais.
func (uc *DashboardUseCase) ExportSummary(ctx context.Context, args *types.CLIArgs) ([]string, error) {
	reportTypes, err := normalizeReportTypes(args.ReportType)
	if err != nil {
		return nil, err
	}

	report, err := uc.LoadSummary(ctx, args.AuditID, entity.FilterSelection{
		Brands:   args.Brands,
		Products: args.Products,
	})
	if err != nil {
		return nil, err
	}
	if len(report.Table.BrandOptions) == 0 && len(report.Table.ProductOptions) == 0 && !onlyXLSX(reportTypes) {
		return nil, fmt.Errorf("audit %s: %w", args.AuditID, types.ErrNoSummaryData)
	}

	reportName := args.ReportName
	if reportName == "" {
		reportName = uc.config.ReportName
	}

	var paths []string
	for _, reportType := range reportTypes {
		var path string
		var err error

		switch reportType {
		case "pdf":
			path, err = uc.exportRepo.ExportSummaryToPDF(report, reportName, args.Dir)
		case "csv":
			path, err = uc.exportRepo.ExportSummaryToCSV(report, reportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportSummaryToJSON(report, reportName, args.Dir)
		case "xlsx":
			path, err = uc.exportDetails(ctx, args.AuditID, report, reportName, args.Dir)
		}

		label := strings.ToUpper(reportType)
		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", label, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", label, path)
		paths = append(paths, path)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("audit %s: %w", args.AuditID, types.ErrExportFailed)
	}

	if args.Publish {
		uc.publish(ctx, paths)
	}
	return paths, nil
}

func (uc *DashboardUseCase) exportDetails(ctx context.Context, auditID string, report entity.SummaryReport, reportName, dir string) (string, error) {
	status := uc.console.Status("Carregando todos os detalhes de venda...")
	details, err := uc.auditRepo.GetAllDetails(ctx, auditID)
	status.Stop()
	if err != nil {
		return "", fmt.Errorf("error loading details: %w", err)
	}

	var summaryReport *entity.SummaryReport
	if len(report.Table.Rows) > 0 {
		summaryReport = &report
	}
	return uc.exportRepo.ExportDetailsToXLSX(details, summaryReport, reportName, dir)
}

func (uc *DashboardUseCase) publish(ctx context.Context, paths []string) {
	if uc.publisher == nil {
		uc.console.LogWarning("Publishing skipped: no S3 bucket configured")
		return
	}

	progress := uc.console.ProgressWithTotal(len(paths))
	var published []string
	for _, path := range paths {
		uri, err := uc.publisher.Publish(ctx, path)
		progress.Increment()
		if err != nil {
			uc.console.LogError("Failed to publish %s: %s", path, err)
			continue
		}
		published = append(published, uri)
	}
	progress.Stop()

	for _, uri := range published {
		uc.console.LogSuccess("Published: %s", uri)
	}
}

// normalizeReportTypes valida os formatos e remove repetições, preservando a ordem.
func normalizeReportTypes(reportTypes []string) ([]string, error) {
	seen := make(map[string]struct{}, len(reportTypes))
	out := make([]string, 0, len(reportTypes))

	for _, reportType := range reportTypes {
		reportType = strings.ToLower(strings.TrimSpace(reportType))
		if reportType == "" {
			continue
		}
		if !isSupported(reportType) {
			return nil, fmt.Errorf("%w: %s (use %s)", types.ErrUnsupportedReportType, reportType, strings.Join(SupportedReportTypes, ", "))
		}
		if _, ok := seen[reportType]; ok {
			continue
		}
		seen[reportType] = struct{}{}
		out = append(out, reportType)
	}

	if len(out) == 0 {
		out = append(out, "pdf")
	}
	return out, nil
}

func isSupported(reportType string) bool {
	for _, supported := range SupportedReportTypes {
		if supported == reportType {
			return true
		}
	}
	return false
}

func onlyXLSX(reportTypes []string) bool {
	return len(reportTypes) == 1 && reportTypes[0] == "xlsx"
}
