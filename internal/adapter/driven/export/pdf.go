package export

import (
	"fmt"
	"path/filepath"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/summary"
	"github.com/jung-kurt/gofpdf"
)

// Layout do resumo em A4 retrato, em milímetros.
const (
	pageMargin      = 10.0
	contentWidth    = 190.0
	footerOffset    = 10.0
	tableTopMargin  = 20.0
	tableBottomEdge = 20.0
	chartTop        = 85.0
	chartWidth      = 60.0
	chartHeight     = 48.0
	chartGap        = 5.0
	tableStartY     = 138.0
	tableRowHeight  = 6.0
	brandColWidth   = 28.0
	productColWidth = 28.0
	feeColWidth     = 18.0
)

var (
	textColor        = rgb{41, 41, 41}
	accentColor      = rgb{231, 146, 4}
	mutedColor       = rgb{128, 128, 128}
	separatorColor   = rgb{200, 200, 200}
	headerFillColor  = rgb{41, 41, 41}
	stripeFillColor  = rgb{245, 245, 245}
	emptyChartColor  = rgb{220, 220, 220}
	headerTextColor  = rgb{255, 255, 255}
	watermarkOpacity = 0.1
)

// ExportSummaryToPDF gera o relatório do resumo: cabeçalho, gráficos e grade.
func (r *ExportRepositoryImpl) ExportSummaryToPDF(report entity.SummaryReport, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, tableTopMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("{nb}")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		drawWatermark(pdf)
	})
	pdf.SetFooterFunc(func() {
		_, pageHeight := pdf.GetPageSize()
		pdf.SetY(pageHeight - footerOffset - 4)
		pdf.SetFont("Helvetica", "", 8)
		setTextColor(pdf, mutedColor)
		pdf.CellFormat(0, 4, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	drawSummaryHeader(pdf, tr, report)

	table := report.Table
	drawDoughnutChart(pdf, tr, table.BrandSeries, pageMargin, chartTop, chartWidth, chartHeight)
	drawVerticalBarChart(pdf, tr, table.PeriodSeries, pageMargin+chartWidth+chartGap, chartTop, chartWidth, chartHeight)
	drawHorizontalBarChart(pdf, tr, table.ProductSeries, pageMargin+2*(chartWidth+chartGap), chartTop, chartWidth, chartHeight)

	drawSummaryGrid(pdf, tr, table)

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func drawWatermark(pdf *gofpdf.Fpdf) {
	pdf.SetAlpha(watermarkOpacity, "Normal")
	pdf.SetFont("Helvetica", "B", 120)
	setTextColor(pdf, mutedColor)
	pdf.TransformBegin()
	pdf.TransformRotate(45, 60, 190)
	pdf.Text(60, 190, "AUDITAXS")
	pdf.TransformEnd()
	pdf.SetAlpha(1, "Normal")
}

func drawSummaryHeader(pdf *gofpdf.Fpdf, tr func(string) string, report entity.SummaryReport) {
	setTextColor(pdf, textColor)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(pageMargin, 20, "AUDITAXS")

	pdf.SetFont("Helvetica", "B", 16)
	title := tr("Resumo")
	pdf.Text(pageMargin, 35, title)
	titleWidth := pdf.GetStringWidth(title)

	if report.AuditID != "" {
		setTextColor(pdf, accentColor)
		pdf.SetFontSize(12)
		pdf.Text(pageMargin+titleWidth+10, 35, "#"+tr(report.AuditID))
		setTextColor(pdf, textColor)
	}

	if est := report.Establishment; est != nil {
		fields := []struct {
			label string
			value string
		}{
			{"Estabelecimento:", est.CompanyName},
			{"CNPJ:", est.CNPJ},
			{"Responsável:", est.Responsible},
		}

		y := 45.0
		pdf.SetFontSize(10)
		for _, field := range fields {
			pdf.SetFont("Helvetica", "", 10)
			pdf.Text(pageMargin, y, tr(field.label))
			pdf.SetFont("Helvetica", "B", 10)
			pdf.Text(pageMargin, y+5, tr(dash(field.value)))
			y += 10
		}
	}

	setDrawColor(pdf, separatorColor)
	pdf.Line(pageMargin, 75, pageMargin+contentWidth, 75)
}

// drawSummaryGrid desenha a grade; a linha de total fica em negrito e o
// cabeçalho se repete a cada quebra de página.
func drawSummaryGrid(pdf *gofpdf.Fpdf, tr func(string) string, table entity.SummaryTable) {
	header := summary.Header(table)
	cells := summary.Cells(table)
	widths := columnWidths(len(header))
	_, pageHeight := pdf.GetPageSize()

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		setFillColor(pdf, headerFillColor)
		setTextColor(pdf, headerTextColor)
		setDrawColor(pdf, separatorColor)
		pdf.SetX(pageMargin)
		for i, label := range header {
			pdf.CellFormat(widths[i], tableRowHeight+1, tr(label), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetY(tableStartY)
	drawHeader()

	for i, record := range cells {
		if pdf.GetY()+tableRowHeight > pageHeight-tableBottomEdge {
			pdf.AddPage()
			pdf.SetY(tableTopMargin)
			drawHeader()
		}

		isTotal := i == len(cells)-1
		if isTotal {
			pdf.SetFont("Helvetica", "B", 9)
		} else {
			pdf.SetFont("Helvetica", "", 8)
		}
		setTextColor(pdf, textColor)
		fill := i%2 == 1
		if fill {
			setFillColor(pdf, stripeFillColor)
		}

		pdf.SetX(pageMargin)
		for j, value := range record {
			align := "R"
			if j < 2 {
				align = "L"
			} else if j == 2 {
				align = "C"
			}
			pdf.CellFormat(widths[j], tableRowHeight, tr(value), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

// columnWidths divide o espaço que sobra entre os períodos e o total geral.
func columnWidths(columns int) []float64 {
	widths := make([]float64, columns)
	fixed := []float64{brandColWidth, productColWidth, feeColWidth}
	copy(widths, fixed)

	numeric := columns - len(fixed)
	if numeric <= 0 {
		return widths
	}
	remaining := contentWidth - brandColWidth - productColWidth - feeColWidth
	for i := len(fixed); i < columns; i++ {
		widths[i] = remaining / float64(numeric)
	}
	return widths
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func setTextColor(pdf *gofpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.R, c.G, c.B)
}

func setFillColor(pdf *gofpdf.Fpdf, c rgb) {
	pdf.SetFillColor(c.R, c.G, c.B)
}

func setDrawColor(pdf *gofpdf.Fpdf, c rgb) {
	pdf.SetDrawColor(c.R, c.G, c.B)
}
