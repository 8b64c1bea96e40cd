package console

import (
	"fmt"
	"strings"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/summary"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// barWidth é o comprimento máximo, em caracteres, de uma barra dos gráficos.
const barWidth = 40

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Cores predefinidas para uso consistente
var (
	Orange     = color.New(color.FgHiYellow, color.Bold).SprintFunc()
	BrightCyan = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// ProgressWithTotal cria uma barra de progresso com total passos.
func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Publicando relatórios").
		WithShowElapsedTime(true).
		WithShowCount(true).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		_, _ = h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// Confirm pede uma confirmação sim/não; o padrão é não.
func (c *Console) Confirm(message string) bool {
	confirmed, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(message)
	if err != nil {
		return false
	}
	return confirmed
}

// DisplayBars exibe um gráfico de barras com valor e participação de cada item.
func (c *Console) DisplayBars(title string, bars []types.ChartBar) {
	if len(bars) == 0 {
		pterm.Warning.Printfln("%s: sem dados", title)
		return
	}

	rows := barRows(bars, barWidth)
	tableData := pterm.TableData{{"", "Valor", "", "%"}}
	for _, row := range rows {
		tableData = append(tableData, []string{
			row.label,
			row.value,
			pterm.FgCyan.Sprint(row.bar),
			row.share,
		})
	}

	renderedTable, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

type barRow struct {
	label string
	value string
	bar   string
	share string
}

// barRows escala as barras pelo maior valor; valores negativos ficam sem barra.
func barRows(bars []types.ChartBar, width int) []barRow {
	maxValue, total := 0.0, 0.0
	for _, b := range bars {
		if b.Value > maxValue {
			maxValue = b.Value
		}
		if b.Value > 0 {
			total += b.Value
		}
	}

	rows := make([]barRow, len(bars))
	for i, b := range bars {
		length := 0
		if maxValue > 0 && b.Value > 0 {
			length = int(b.Value / maxValue * float64(width))
		}

		share := "-"
		if total > 0 && b.Value > 0 {
			share = summary.Format(b.Value/total*100) + "%"
		} else if total > 0 {
			share = summary.Format(0) + "%"
		}

		rows[i] = barRow{
			label: b.Label,
			value: summary.Format(b.Value),
			bar:   strings.Repeat("█", length),
			share: share,
		}
	}
	return rows
}
