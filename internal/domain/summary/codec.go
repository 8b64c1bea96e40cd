// Package summary normaliza, agrega e filtra as linhas de resumo de uma auditoria.
//
// Todas as funções são puras: recebem coleções já materializadas e não guardam estado.
package summary

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ZeroValue é a representação canônica de zero no formato pt-BR.
const ZeroValue = "0,00"

// Parse converte um valor pt-BR ("1.234,56") em número.
// Entradas vazias ou malformadas valem 0.
func Parse(display string) float64 {
	s := strings.TrimSpace(display)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// Format renderiza n com duas casas decimais, vírgula decimal e ponto de milhar.
func Format(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return ZeroValue
	}

	fixed := decimal.NewFromFloat(n).StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	dot := strings.IndexByte(fixed, '.')
	intPart, fracPart := fixed[:dot], fixed[dot+1:]

	out := groupThousands(intPart) + "," + fracPart
	if negative && out != ZeroValue {
		out = "-" + out
	}
	return out
}

// FormatValue re-renderiza um valor vindo da API na forma canônica.
func FormatValue(display string) string {
	if strings.TrimSpace(display) == "" {
		return ZeroValue
	}
	return Format(Parse(display))
}

// FormatPercentage acrescenta o sufixo de porcentagem a uma taxa.
func FormatPercentage(rate string) string {
	rate = strings.TrimSpace(rate)
	if rate == "" {
		return "-"
	}
	return strings.TrimSuffix(rate, "%") + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
