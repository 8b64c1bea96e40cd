package export

import (
	"math"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/summary"
	"github.com/jung-kurt/gofpdf"
)

const (
	chartTitleHeight = 6.0
	legendLineHeight = 3.5
	arcStepDegrees   = 3.0
	maxLabelChars    = 14
)

func drawChartFrame(pdf *gofpdf.Fpdf, tr func(string) string, title string, x, y, w, h float64) {
	setDrawColor(pdf, separatorColor)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x, y, w, h, "D")

	pdf.SetFont("Helvetica", "B", 8)
	setTextColor(pdf, textColor)
	pdf.SetXY(x, y+1)
	pdf.CellFormat(w, 4, tr(title), "", 0, "C", false, 0, "")
}

// drawDoughnutChart desenha a distribuição por bandeira como anel com legenda.
func drawDoughnutChart(pdf *gofpdf.Fpdf, tr func(string) string, series entity.ChartSeries, x, y, w, h float64) {
	drawChartFrame(pdf, tr, series.Title, x, y, w, h)

	outer := math.Min(w*0.3, (h-chartTitleHeight)/2-2)
	inner := outer * 0.55
	cx := x + outer + 3
	cy := y + chartTitleHeight + (h-chartTitleHeight)/2

	total := 0.0
	for _, v := range series.Values {
		if v > 0 {
			total += v
		}
	}

	colors := chartColors(len(series.Values))
	if total <= 0 {
		setFillColor(pdf, emptyChartColor)
		pdf.Polygon(ringSegment(cx, cy, outer, inner, 0, 360), "F")
	} else {
		start := -90.0
		for i, v := range series.Values {
			if v <= 0 {
				continue
			}
			sweep := v / total * 360
			setFillColor(pdf, colors[i])
			pdf.Polygon(ringSegment(cx, cy, outer, inner, start, start+sweep), "F")
			start += sweep
		}
	}

	legendX := cx + outer + 3
	drawLegend(pdf, tr, series.Labels, colors, legendX, y+chartTitleHeight+2, x+w-legendX-1, h-chartTitleHeight-3)
}

// ringSegment aproxima o trecho do anel entre os ângulos (em graus) por um polígono.
func ringSegment(cx, cy, outer, inner, from, to float64) []gofpdf.PointType {
	steps := int(math.Ceil(math.Abs(to-from) / arcStepDegrees))
	if steps < 1 {
		steps = 1
	}

	points := make([]gofpdf.PointType, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		points = append(points, polar(cx, cy, outer, from+(to-from)*float64(i)/float64(steps)))
	}
	for i := steps; i >= 0; i-- {
		points = append(points, polar(cx, cy, inner, from+(to-from)*float64(i)/float64(steps)))
	}
	return points
}

func polar(cx, cy, radius, degrees float64) gofpdf.PointType {
	rad := degrees * math.Pi / 180
	return gofpdf.PointType{X: cx + radius*math.Cos(rad), Y: cy + radius*math.Sin(rad)}
}

func drawLegend(pdf *gofpdf.Fpdf, tr func(string) string, labels []string, colors []rgb, x, y, w, h float64) {
	maxLines := int(h / legendLineHeight)
	pdf.SetFont("Helvetica", "", 5.5)
	setTextColor(pdf, textColor)

	for i, label := range labels {
		if i >= maxLines {
			break
		}
		if i == maxLines-1 && len(labels) > maxLines {
			pdf.SetXY(x, y+float64(i)*legendLineHeight)
			pdf.CellFormat(w, legendLineHeight, "...", "", 0, "L", false, 0, "")
			break
		}
		lineY := y + float64(i)*legendLineHeight
		setFillColor(pdf, colors[i])
		pdf.Rect(x, lineY+0.75, 2, 2, "F")
		pdf.SetXY(x+3, lineY)
		pdf.CellFormat(w-3, legendLineHeight, tr(truncate(label, maxLabelChars)), "", 0, "L", false, 0, "")
	}
}

// drawVerticalBarChart desenha os valores por período.
func drawVerticalBarChart(pdf *gofpdf.Fpdf, tr func(string) string, series entity.ChartSeries, x, y, w, h float64) {
	drawChartFrame(pdf, tr, series.Title, x, y, w, h)
	if len(series.Values) == 0 {
		return
	}

	areaX := x + 3
	areaW := w - 6
	top := y + chartTitleHeight + 4
	baseline := y + h - 5
	maxValue := positiveMax(series.Values)

	setDrawColor(pdf, separatorColor)
	pdf.Line(areaX, baseline, areaX+areaW, baseline)

	slot := areaW / float64(len(series.Values))
	barW := slot * 0.6
	colors := chartColors(len(series.Values))

	for i, v := range series.Values {
		barX := areaX + float64(i)*slot + (slot-barW)/2
		barH := 0.0
		if maxValue > 0 && v > 0 {
			barH = v / maxValue * (baseline - top)
		}
		if barH > 0 {
			setFillColor(pdf, colors[i])
			pdf.Rect(barX, baseline-barH, barW, barH, "F")
		}

		pdf.SetFont("Helvetica", "", 4.5)
		setTextColor(pdf, textColor)
		pdf.SetXY(areaX+float64(i)*slot, baseline-barH-3)
		pdf.CellFormat(slot, 3, summary.Format(v), "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 5.5)
		pdf.SetXY(areaX+float64(i)*slot, baseline+0.5)
		pdf.CellFormat(slot, 3.5, tr(truncate(series.Labels[i], maxLabelChars)), "", 0, "C", false, 0, "")
	}
}

// drawHorizontalBarChart desenha os valores por produto.
func drawHorizontalBarChart(pdf *gofpdf.Fpdf, tr func(string) string, series entity.ChartSeries, x, y, w, h float64) {
	drawChartFrame(pdf, tr, series.Title, x, y, w, h)
	if len(series.Values) == 0 {
		return
	}

	labelW := 16.0
	valueW := 12.0
	areaX := x + labelW + 2
	areaW := w - labelW - valueW - 4
	top := y + chartTitleHeight + 1
	rowH := math.Min(5, (h-chartTitleHeight-3)/float64(len(series.Values)))
	maxValue := positiveMax(series.Values)
	colors := chartColors(len(series.Values))
	fontSize := math.Min(5.5, rowH*2)

	for i, v := range series.Values {
		rowY := top + float64(i)*rowH

		pdf.SetFont("Helvetica", "", fontSize)
		setTextColor(pdf, textColor)
		pdf.SetXY(x+1, rowY)
		pdf.CellFormat(labelW, rowH, tr(truncate(series.Labels[i], maxLabelChars)), "", 0, "R", false, 0, "")

		barW := 0.0
		if maxValue > 0 && v > 0 {
			barW = v / maxValue * areaW
		}
		if barW > 0 {
			setFillColor(pdf, colors[i])
			pdf.Rect(areaX, rowY+rowH*0.15, barW, rowH*0.7, "F")
		}

		pdf.SetXY(areaX+barW+0.5, rowY)
		pdf.CellFormat(valueW, rowH, summary.Format(v), "", 0, "L", false, 0, "")
	}
}

func positiveMax(values []float64) float64 {
	maxValue := 0.0
	for _, v := range values {
		if v > maxValue {
			maxValue = v
		}
	}
	return maxValue
}

func truncate(label string, limit int) string {
	runes := []rune(label)
	if len(runes) <= limit {
		return label
	}
	return string(runes[:limit-1]) + "…"
}
