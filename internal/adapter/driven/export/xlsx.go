package export

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/summary"
	"github.com/xuri/excelize/v2"
)

const (
	detailsSheet   = "Detalhes"
	summarySheet   = "Resumo"
	maxColumnWidth = 255
)

// DetailsHeader são os cabeçalhos da planilha de detalhes, na ordem das colunas.
var DetailsHeader = []string{
	"Código do Estabelecimento",
	"Credenciadora",
	"Data da Venda",
	"Status",
	"NSU",
	"Bandeira",
	"Modalidade de Pagamento",
	"Produto",
	"Valor da Venda",
	"Valor da Taxa",
	"Valor Líquido",
	"Taxa Referenciada",
	"Número do Cartão",
	"Data de Recebimento",
	"Taxa Auditada",
	"Valor da Taxa Auditada",
	"Diferença a Receber",
}

// detailsRecord renderiza uma venda: valores em pt-BR canônico, taxas com "%".
func detailsRecord(row entity.DetailsRow) []string {
	return []string{
		row.EstablishmentCode,
		row.Acquirer,
		row.SaleDate,
		row.SaleStatus,
		row.NSU,
		row.Brand,
		row.PaymentMethod,
		row.Product,
		summary.FormatValue(row.SaleValue),
		summary.FormatValue(row.FeeValue),
		summary.FormatValue(row.NetValue),
		summary.FormatPercentage(row.ReferencedFee),
		row.CardNumber,
		row.ReceiptDate,
		summary.FormatPercentage(row.AuditedFee),
		summary.FormatValue(row.AuditedFeeValue),
		summary.FormatValue(row.DifferenceToReceive),
	}
}

// ExportDetailsToXLSX grava todos os detalhes de venda em uma planilha.
// Quando report não é nil, a grade do resumo vai para uma segunda aba.
func (r *ExportRepositoryImpl) ExportDetailsToXLSX(details []entity.DetailsRow, report *entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), detailsSheet); err != nil {
		return "", fmt.Errorf("error naming sheet: %w", err)
	}

	records := make([][]string, 0, len(details))
	for _, row := range details {
		records = append(records, detailsRecord(row))
	}
	if err := writeSheet(f, detailsSheet, DetailsHeader, records); err != nil {
		return "", err
	}

	if report != nil {
		if _, err := f.NewSheet(summarySheet); err != nil {
			return "", fmt.Errorf("error creating summary sheet: %w", err)
		}
		if err := writeSheet(f, summarySheet, summary.Header(report.Table), summary.Cells(report.Table)); err != nil {
			return "", err
		}
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func writeSheet(f *excelize.File, sheet string, header []string, records [][]string) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}

	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("error resolving header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("error styling header: %w", err)
	}

	for i, record := range records {
		if err := setRow(f, sheet, i+2, record); err != nil {
			return err
		}
	}

	for col, width := range columnCharWidths(header, records) {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("error resolving column %d: %w", col+1, err)
		}
		if err := f.SetColWidth(sheet, name, name, float64(width)); err != nil {
			return fmt.Errorf("error setting width of column %s: %w", name, err)
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("error resolving row %d: %w", row, err)
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("error writing row %d of %s: %w", row, sheet, err)
	}
	return nil
}

// columnCharWidths retorna, por coluna, o maior texto entre cabeçalho e células.
func columnCharWidths(header []string, records [][]string) []int {
	widths := make([]int, len(header))
	for i, label := range header {
		widths[i] = utf8.RuneCountInString(label)
	}
	for _, record := range records {
		for i, value := range record {
			if i >= len(widths) {
				break
			}
			if n := utf8.RuneCountInString(value); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}
