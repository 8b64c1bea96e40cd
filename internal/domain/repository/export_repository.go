package repository

import (
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/export_repository_mock.go -package=mocks . ExportRepository

type ExportRepository interface {
	ExportSummaryToPDF(report entity.SummaryReport, filename, outputDir string) (string, error)
	ExportSummaryToCSV(report entity.SummaryReport, filename, outputDir string) (string, error)
	ExportSummaryToJSON(report entity.SummaryReport, filename, outputDir string) (string, error)

	// Planilha com todos os itens de detalhe; report é opcional.
	ExportDetailsToXLSX(details []entity.DetailsRow, report *entity.SummaryReport, filename, outputDir string) (string, error)
}
