package summary

import (
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
)

// Títulos dos gráficos do resumo.
const (
	BrandSeriesTitle   = "Distribuição por Bandeira"
	PeriodSeriesTitle  = "Valores por Ano"
	ProductSeriesTitle = "Valores por Produto"
)

// Build monta a tabela de um ciclo de exibição: normaliza, calcula as opções
// dos filtros sobre o conjunto completo, filtra e agrega.
func Build(rows []entity.SummaryRow, selection entity.FilterSelection) entity.SummaryTable {
	periods, normalized := Normalize(rows)

	brandOptions := DistinctValues(normalized, entity.DimensionBrand)
	productOptions := DistinctValues(normalized, entity.DimensionProduct)

	filtered := Apply(normalized, selection)

	rowTotals := make([]float64, len(filtered))
	for i, row := range filtered {
		rowTotals[i] = RowTotal(row)
	}

	columnTotals := make(map[string]float64, len(periods))
	periodValues := make([]float64, len(periods))
	for i, period := range periods {
		columnTotals[period] = ColumnTotal(filtered, period)
		periodValues[i] = columnTotals[period]
	}

	return entity.SummaryTable{
		Periods:        periods,
		Rows:           filtered,
		RowTotals:      rowTotals,
		ColumnTotals:   columnTotals,
		GrandTotal:     GrandTotal(filtered),
		BrandOptions:   brandOptions,
		ProductOptions: productOptions,
		BrandSeries:    groupSeries(BrandSeriesTitle, filtered, entity.DimensionBrand, brandOptions),
		PeriodSeries: entity.ChartSeries{
			Title:  PeriodSeriesTitle,
			Labels: periods,
			Values: periodValues,
		},
		ProductSeries: groupSeries(ProductSeriesTitle, filtered, entity.DimensionProduct, productOptions),
		Selection:     selection,
	}
}

// groupSeries tem um bucket por opção; opções fora do filtro ficam com 0.
func groupSeries(title string, rows []entity.NormalizedRow, dimension entity.Dimension, options []string) entity.ChartSeries {
	values := make([]float64, len(options))
	for i, option := range options {
		values[i] = GroupTotal(rows, dimension, option)
	}
	return entity.ChartSeries{
		Title:  title,
		Labels: options,
		Values: values,
	}
}

// Header retorna os rótulos das colunas da grade de resumo.
func Header(table entity.SummaryTable) []string {
	header := []string{"Bandeira", "Produto", "Taxa (%)"}
	header = append(header, table.Periods...)
	return append(header, "Total Geral")
}

// Cells monta a grade exibida e exportada: uma linha por registro filtrado
// seguida da linha de total.
func Cells(table entity.SummaryTable) [][]string {
	cells := make([][]string, 0, len(table.Rows)+1)

	for i, row := range table.Rows {
		line := []string{row.Brand, row.Product, FormatPercentage(row.Percentage)}
		for _, period := range table.Periods {
			line = append(line, FormatValue(row.Values[period]))
		}
		cells = append(cells, append(line, Format(table.RowTotals[i])))
	}

	total := []string{"Total", "-", "-"}
	for _, period := range table.Periods {
		total = append(total, Format(table.ColumnTotals[period]))
	}
	return append(cells, append(total, Format(table.GrandTotal)))
}
