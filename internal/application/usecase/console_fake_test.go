package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
)

// fakeConsole grava tudo o que o caso de uso escreve.
type fakeConsole struct {
	output   strings.Builder
	infos    []string
	warnings []string
	errors   []string
	success  []string
	tables   []*fakeTable
	charts   map[string][]types.ChartBar
	confirm  bool
	prompts  []string
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{charts: make(map[string][]types.ChartBar)}
}

func (c *fakeConsole) Print(a ...interface{})                 { c.output.WriteString(fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.output.WriteString(fmt.Sprintf(format, a...)) }
func (c *fakeConsole) Println(a ...interface{})               { c.output.WriteString(fmt.Sprintln(a...)) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(message string) types.StatusHandle { return fakeHandle{} }

func (c *fakeConsole) ProgressWithTotal(total int) types.ProgressHandle { return fakeHandle{} }

func (c *fakeConsole) CreateTable() types.TableInterface {
	table := &fakeTable{}
	c.tables = append(c.tables, table)
	return table
}

func (c *fakeConsole) DisplayBars(title string, bars []types.ChartBar) {
	c.charts[title] = bars
}

func (c *fakeConsole) Confirm(message string) bool {
	c.prompts = append(c.prompts, message)
	return c.confirm
}

type fakeHandle struct{}

func (fakeHandle) Update(string) {}
func (fakeHandle) Increment()    {}
func (fakeHandle) Stop()         {}

type fakeTable struct {
	columns []string
	rows    [][]string
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string {
	return strings.Join(t.columns, "|")
}
