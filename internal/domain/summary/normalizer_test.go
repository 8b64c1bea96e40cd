package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
)

func scenarioRows() []entity.SummaryRow {
	return []entity.SummaryRow{
		{
			Brand: "Visa", Product: "Credit", Percentage: "2,50",
			Periods: []entity.PeriodValue{{Period: "2023", Value: "100,00"}},
		},
		{
			Brand: "Master", Product: "Debit", Percentage: "1,80",
			Periods: []entity.PeriodValue{{Period: "2024", Value: "50,50"}},
		},
	}
}

func TestNormalizeScenario(t *testing.T) {
	periods, rows := Normalize(scenarioRows())

	assert.Equal(t, []string{"2023", "2024"}, periods)
	require.Len(t, rows, 2)

	assert.Equal(t, "Visa", rows[0].Brand)
	assert.Equal(t, map[string]string{"2023": "100,00", "2024": "0,00"}, rows[0].Values)
	assert.Equal(t, "Master", rows[1].Brand)
	assert.Equal(t, map[string]string{"2023": "0,00", "2024": "50,50"}, rows[1].Values)
}

func TestNormalizeEmpty(t *testing.T) {
	periods, rows := Normalize(nil)

	assert.NotNil(t, periods)
	assert.NotNil(t, rows)
	assert.Empty(t, periods)
	assert.Empty(t, rows)
}

func TestNormalizeEveryRowHasThePeriodSet(t *testing.T) {
	input := []entity.SummaryRow{
		{Brand: "Elo", Product: "Credit", Periods: []entity.PeriodValue{
			{Period: "2022", Value: "1,00"},
			{Period: "2025", Value: "2,00"},
		}},
		{Brand: "Elo", Product: "Debit"},
		{Brand: "Visa", Product: "Credit", Periods: []entity.PeriodValue{
			{Period: "2023", Value: "3,00"},
		}},
	}

	periods, rows := Normalize(input)
	require.Equal(t, []string{"2022", "2023", "2025"}, periods)

	for _, row := range rows {
		keys := make([]string, 0, len(row.Values))
		for k := range row.Values {
			keys = append(keys, k)
		}
		assert.ElementsMatch(t, periods, keys)
	}

	// linha sem períodos recebe tudo zerado
	assert.Equal(t, map[string]string{"2022": "0,00", "2023": "0,00", "2025": "0,00"}, rows[1].Values)
}

func TestNormalizeKeepsDuplicatesAndOrder(t *testing.T) {
	input := []entity.SummaryRow{
		{Brand: "Visa", Product: "Credit", Percentage: "2,50", Periods: []entity.PeriodValue{{Period: "2023", Value: "1,00"}}},
		{Brand: "Amex", Product: "Credit", Percentage: "3,10"},
		{Brand: "Visa", Product: "Credit", Percentage: "2,50", Periods: []entity.PeriodValue{{Period: "2023", Value: "2,00"}}},
	}

	_, rows := Normalize(input)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Visa", "Amex", "Visa"}, []string{rows[0].Brand, rows[1].Brand, rows[2].Brand})
	assert.Equal(t, "1,00", rows[0].Values["2023"])
	assert.Equal(t, "2,00", rows[2].Values["2023"])
}

func TestNormalizeEmptyValueDefaultsToZero(t *testing.T) {
	input := []entity.SummaryRow{
		{Brand: "Visa", Periods: []entity.PeriodValue{{Period: "2023", Value: ""}}},
	}

	_, rows := Normalize(input)
	assert.Equal(t, ZeroValue, rows[0].Values["2023"])
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	input := scenarioRows()
	_, rows := Normalize(input)
	rows[0].Values["2023"] = "999,00"

	assert.Equal(t, "100,00", input[0].Periods[0].Value)
	assert.Len(t, input[0].Periods, 1)
}
