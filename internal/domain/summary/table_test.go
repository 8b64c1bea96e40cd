package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
)

func TestBuildScenario(t *testing.T) {
	table := Build(scenarioRows(), entity.FilterSelection{})

	assert.Equal(t, []string{"2023", "2024"}, table.Periods)
	require.Len(t, table.Rows, 2)
	assert.InDeltaSlice(t, []float64{100, 50.5}, table.RowTotals, 1e-9)
	assert.InDelta(t, 100.0, table.ColumnTotals["2023"], 1e-9)
	assert.InDelta(t, 50.5, table.ColumnTotals["2024"], 1e-9)
	assert.InDelta(t, 150.5, table.GrandTotal, 1e-9)

	assert.Equal(t, []string{"Master", "Visa"}, table.BrandSeries.Labels)
	assert.InDeltaSlice(t, []float64{50.5, 100}, table.BrandSeries.Values, 1e-9)
	assert.Equal(t, []string{"2023", "2024"}, table.PeriodSeries.Labels)
	assert.InDeltaSlice(t, []float64{100, 50.5}, table.PeriodSeries.Values, 1e-9)
	assert.Equal(t, []string{"Credit", "Debit"}, table.ProductSeries.Labels)
}

func TestBuildOptionsIgnoreSelection(t *testing.T) {
	all := Build(scenarioRows(), entity.FilterSelection{})
	filtered := Build(scenarioRows(), entity.FilterSelection{Brands: []string{"Visa"}})

	assert.Equal(t, all.BrandOptions, filtered.BrandOptions)
	assert.Equal(t, all.ProductOptions, filtered.ProductOptions)

	require.Len(t, filtered.Rows, 1)
	assert.InDelta(t, 100.0, filtered.GrandTotal, 1e-9)
	assert.Zero(t, filtered.ColumnTotals["2024"])

	// a bandeira fora do filtro continua no gráfico, com zero
	assert.Equal(t, []string{"Master", "Visa"}, filtered.BrandSeries.Labels)
	assert.InDeltaSlice(t, []float64{0, 100}, filtered.BrandSeries.Values, 1e-9)
}

func TestBuildEmpty(t *testing.T) {
	table := Build(nil, entity.FilterSelection{})

	assert.Empty(t, table.Periods)
	assert.Empty(t, table.Rows)
	assert.Zero(t, table.GrandTotal)
	assert.Empty(t, table.BrandSeries.Labels)

	cells := Cells(table)
	assert.Equal(t, [][]string{{"Total", "-", "-", "0,00"}}, cells)
	assert.Equal(t, []string{"Bandeira", "Produto", "Taxa (%)", "Total Geral"}, Header(table))
}

func TestCells(t *testing.T) {
	table := Build(scenarioRows(), entity.FilterSelection{})

	assert.Equal(t, []string{"Bandeira", "Produto", "Taxa (%)", "2023", "2024", "Total Geral"}, Header(table))
	assert.Equal(t, [][]string{
		{"Visa", "Credit", "2,50%", "100,00", "0,00", "100,00"},
		{"Master", "Debit", "1,80%", "0,00", "50,50", "50,50"},
		{"Total", "-", "-", "100,00", "50,50", "150,50"},
	}, Cells(table))
}
