package summary

import (
	"sort"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
)

// Periods retorna os períodos distintos da coleção em ordem crescente.
// A ordenação é lexicográfica: os rótulos são anos de largura fixa.
func Periods(rows []entity.SummaryRow) []string {
	seen := make(map[string]struct{})
	periods := []string{}

	for _, row := range rows {
		for _, pv := range row.Periods {
			if _, ok := seen[pv.Period]; ok {
				continue
			}
			seen[pv.Period] = struct{}{}
			periods = append(periods, pv.Period)
		}
	}

	sort.Strings(periods)
	return periods
}

// Normalize densifica as linhas: cada NormalizedRow recebe um valor para todos
// os períodos observados na coleção, com ZeroValue onde a linha não tinha dado.
// A ordem das linhas é preservada e linhas repetidas não são removidas.
func Normalize(rows []entity.SummaryRow) ([]string, []entity.NormalizedRow) {
	periods := Periods(rows)
	normalized := make([]entity.NormalizedRow, 0, len(rows))

	for _, row := range rows {
		values := make(map[string]string, len(periods))
		for _, period := range periods {
			values[period] = ZeroValue
		}
		// Se o mesmo período aparece duas vezes, vale o último.
		for _, pv := range row.Periods {
			if pv.Value == "" {
				continue
			}
			values[pv.Period] = pv.Value
		}

		normalized = append(normalized, entity.NormalizedRow{
			Brand:      row.Brand,
			Product:    row.Product,
			Percentage: row.Percentage,
			Values:     values,
		})
	}

	return periods, normalized
}
