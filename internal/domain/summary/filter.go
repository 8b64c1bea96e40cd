package summary

import (
	"sort"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
)

// DistinctValues retorna os valores distintos da dimensão, ordenados.
// Deve ser chamado sobre as linhas sem filtro para que as opções não encolham.
func DistinctValues(rows []entity.NormalizedRow, dimension entity.Dimension) []string {
	seen := make(map[string]struct{})
	values := []string{}

	for _, row := range rows {
		v := row.Field(dimension)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}

// Apply mantém as linhas que atendem aos dois eixos da seleção, na ordem original.
// Eixo vazio não restringe; valores são comparados exatamente.
func Apply(rows []entity.NormalizedRow, selection entity.FilterSelection) []entity.NormalizedRow {
	brands := toSet(selection.Brands)
	products := toSet(selection.Products)

	filtered := make([]entity.NormalizedRow, 0, len(rows))
	for _, row := range rows {
		if !matches(brands, row.Brand) || !matches(products, row.Product) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

func matches(set map[string]struct{}, value string) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[value]
	return ok
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
