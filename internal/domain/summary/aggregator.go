package summary

import (
	"sort"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
)

// RowTotal soma os valores de todos os períodos da linha.
func RowTotal(row entity.NormalizedRow) float64 {
	periods := make([]string, 0, len(row.Values))
	for period := range row.Values {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	total := 0.0
	for _, period := range periods {
		total += Parse(row.Values[period])
	}
	return total
}

// ColumnTotal soma o valor de um período em todas as linhas.
func ColumnTotal(rows []entity.NormalizedRow, period string) float64 {
	total := 0.0
	for _, row := range rows {
		total += Parse(row.Values[period])
	}
	return total
}

// GroupTotal soma o total das linhas cujo campo da dimensão é igual a value.
func GroupTotal(rows []entity.NormalizedRow, dimension entity.Dimension, value string) float64 {
	total := 0.0
	for _, row := range rows {
		if row.Field(dimension) == value {
			total += RowTotal(row)
		}
	}
	return total
}

// GrandTotal soma o total de todas as linhas.
func GrandTotal(rows []entity.NormalizedRow) float64 {
	total := 0.0
	for _, row := range rows {
		total += RowTotal(row)
	}
	return total
}
