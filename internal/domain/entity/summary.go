package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Dimension é um eixo categórico da tabela de resumo.
type Dimension string

const (
	DimensionBrand   Dimension = "brand"
	DimensionProduct Dimension = "product"
)

// PeriodValue é o valor de uma linha de resumo para um período (ano).
type PeriodValue struct {
	ID     string `json:"id,omitempty"`
	Period string `json:"year"`
	Value  string `json:"value"`
}

// UnmarshalJSON aceita "year" numérico ou string, e também a chave "period".
func (p *PeriodValue) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID     json.RawMessage `json:"id"`
		Year   json.RawMessage `json:"year"`
		Period json.RawMessage `json:"period"`
		Value  json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := rawText(raw.ID)
	if err != nil {
		return err
	}
	period, err := rawText(raw.Year)
	if err != nil {
		return err
	}
	if period == "" {
		if period, err = rawText(raw.Period); err != nil {
			return err
		}
	}
	value, err := rawText(raw.Value)
	if err != nil {
		return err
	}
	if isJSONNumber(raw.Value) {
		// 1234.5 -> "1234,5"
		value = strings.Replace(value, ".", ",", 1)
	}

	*p = PeriodValue{ID: id, Period: period, Value: value}
	return nil
}

// SummaryRow é uma linha bruta do resumo de uma auditoria. Periods pode ser esparso.
type SummaryRow struct {
	ID         string        `json:"id,omitempty"`
	Brand      string        `json:"brand"`
	Product    string        `json:"product"`
	Percentage string        `json:"percentage"`
	Periods    []PeriodValue `json:"years"`
}

// UnmarshalJSON tolera "id" numérico.
func (r *SummaryRow) UnmarshalJSON(data []byte) error {
	type alias SummaryRow
	var raw struct {
		alias
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id, err := rawText(raw.ID)
	if err != nil {
		return err
	}
	*r = SummaryRow(raw.alias)
	r.ID = id
	return nil
}

// NormalizedRow é uma linha densa: Values tem uma entrada para cada período do conjunto.
type NormalizedRow struct {
	Brand      string            `json:"brand"`
	Product    string            `json:"product"`
	Percentage string            `json:"percentage"`
	Values     map[string]string `json:"values"`
}

// Field retorna o valor da linha para a dimensão informada.
func (r NormalizedRow) Field(dimension Dimension) string {
	switch dimension {
	case DimensionBrand:
		return r.Brand
	case DimensionProduct:
		return r.Product
	default:
		return ""
	}
}

// FilterSelection restringe as linhas por bandeira e produto.
// Um eixo vazio significa "sem restrição" naquele eixo.
type FilterSelection struct {
	Brands   []string `json:"brands,omitempty"`
	Products []string `json:"products,omitempty"`
}

// IsEmpty indica se nenhum eixo está restrito.
func (s FilterSelection) IsEmpty() bool {
	return len(s.Brands) == 0 && len(s.Products) == 0
}

// ChartSeries alimenta um gráfico: um rótulo por valor.
type ChartSeries struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// SummaryTable é o resultado de um ciclo de exibição do resumo.
type SummaryTable struct {
	Periods        []string           `json:"periods"`
	Rows           []NormalizedRow    `json:"rows"`
	RowTotals      []float64          `json:"row_totals"`
	ColumnTotals   map[string]float64 `json:"column_totals"`
	GrandTotal     float64            `json:"grand_total"`
	BrandOptions   []string           `json:"brand_options"`
	ProductOptions []string           `json:"product_options"`
	BrandSeries    ChartSeries        `json:"brand_series"`
	PeriodSeries   ChartSeries        `json:"period_series"`
	ProductSeries  ChartSeries        `json:"product_series"`
	Selection      FilterSelection    `json:"selection"`
}

// SummaryReport agrupa o que os exportadores precisam para um resumo.
type SummaryReport struct {
	AuditID       string         `json:"audit_id"`
	Establishment *Establishment `json:"establishment,omitempty"`
	Table         SummaryTable   `json:"table"`
}

func rawText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(raw), nil
}

func isJSONNumber(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	c := raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}
