package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
)

func TestTotalsScenario(t *testing.T) {
	_, rows := Normalize(scenarioRows())

	assert.InDelta(t, 100.00, RowTotal(rows[0]), 1e-9)
	assert.InDelta(t, 50.50, RowTotal(rows[1]), 1e-9)
	assert.InDelta(t, 100.00, ColumnTotal(rows, "2023"), 1e-9)
	assert.InDelta(t, 50.50, ColumnTotal(rows, "2024"), 1e-9)
	assert.InDelta(t, 150.50, GrandTotal(rows), 1e-9)
}

func TestTotalsEmpty(t *testing.T) {
	assert.Zero(t, ColumnTotal(nil, "2023"))
	assert.Zero(t, GroupTotal(nil, entity.DimensionBrand, "Visa"))
	assert.Zero(t, GrandTotal(nil))
	assert.Zero(t, RowTotal(entity.NormalizedRow{}))
}

func TestRowTotalIsSumOfParsedValues(t *testing.T) {
	row := entity.NormalizedRow{Values: map[string]string{
		"2021": "1.000,10",
		"2022": "",
		"2023": "oops",
		"2024": "0,90",
		"2025": "-1,00",
	}}

	want := Parse("1.000,10") + Parse("0,90") + Parse("-1,00")
	assert.InDelta(t, want, RowTotal(row), 1e-9)
}

func TestColumnTotalMissingPeriod(t *testing.T) {
	_, rows := Normalize(scenarioRows())
	assert.Zero(t, ColumnTotal(rows, "1999"))
}

func TestGroupTotal(t *testing.T) {
	input := []entity.SummaryRow{
		{Brand: "Visa", Product: "Credit", Periods: []entity.PeriodValue{{Period: "2023", Value: "10,00"}, {Period: "2024", Value: "5,00"}}},
		{Brand: "Visa", Product: "Debit", Periods: []entity.PeriodValue{{Period: "2024", Value: "1,25"}}},
		{Brand: "Master", Product: "Credit", Periods: []entity.PeriodValue{{Period: "2023", Value: "7,00"}}},
	}
	_, rows := Normalize(input)

	assert.InDelta(t, 16.25, GroupTotal(rows, entity.DimensionBrand, "Visa"), 1e-9)
	assert.InDelta(t, 7.00, GroupTotal(rows, entity.DimensionBrand, "Master"), 1e-9)
	assert.InDelta(t, 22.00, GroupTotal(rows, entity.DimensionProduct, "Credit"), 1e-9)
	assert.InDelta(t, 1.25, GroupTotal(rows, entity.DimensionProduct, "Debit"), 1e-9)
	assert.Zero(t, GroupTotal(rows, entity.DimensionBrand, "visa"))
}
