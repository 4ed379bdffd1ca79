package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/calculation"
	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
	"github.com/davidiamir-glitch/Retirement-Simulator/internal/output"
)

type appState int

const (
	stateForm appState = iota
	stateResults
	stateSave
)

const defaultExportFilename = "retirement_simulation.csv"

// App is the interactive simulator: a parameter form that feeds the engine,
// and a results screen with KPI cards, a balance chart, and a yearly table.
// It is purely a presentation collaborator; all semantics live in the
// calculation package.
type App struct {
	state appState

	params *domain.SimulationParameters
	values formValues
	form   *huh.Form

	result  *domain.SimulationResult
	yearly  []output.YearlySummary
	monthly bool // table granularity toggle
	tableAt int  // scroll offset into the table

	saveInput textinput.Model

	width  int
	height int

	status string
	err    error
}

// NewApp creates the TUI model seeded with the given parameters.
func NewApp(params *domain.SimulationParameters) App {
	a := App{
		state:  stateForm,
		params: params,
		values: valuesFromParams(params),
		width:  100,
		height: 30,
	}
	a.form = newParameterForm(&a.values)
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.form.Init()
}

type resultMsg struct {
	result *domain.SimulationResult
	err    error
}

func simulateCmd(params *domain.SimulationParameters) tea.Cmd {
	return func() tea.Msg {
		engine := calculation.NewEngine()
		result, err := engine.Simulate(params)
		return resultMsg{result: result, err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.state {
		case stateResults:
			return a.updateResults(msg)
		case stateSave:
			return a.updateSave(msg)
		}

	case resultMsg:
		if msg.err != nil {
			// Invalid parameters block the results screen; reopen the form
			// with the message attached.
			a.err = msg.err
			a.state = stateForm
			a.form = newParameterForm(&a.values)
			return a, a.form.Init()
		}
		a.err = nil
		a.result = msg.result
		a.yearly = output.AggregateByYear(msg.result)
		a.tableAt = 0
		a.state = stateResults
		return a, nil
	}

	if a.state == stateForm {
		return a.updateForm(msg)
	}
	if a.state == stateSave {
		var cmd tea.Cmd
		a.saveInput, cmd = a.saveInput.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		params, err := a.values.toParams()
		if err != nil {
			a.err = err
			a.form = newParameterForm(&a.values)
			return a, a.form.Init()
		}
		a.params = params
		return a, simulateCmd(params)
	}
	if a.form.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("q", "esc"))):
		return a, tea.Quit
	case key.Matches(msg, key.NewBinding(key.WithKeys("e"))):
		a.state = stateForm
		a.status = ""
		a.form = newParameterForm(&a.values)
		return a, a.form.Init()
	case key.Matches(msg, key.NewBinding(key.WithKeys("s"))):
		ti := textinput.New()
		ti.Placeholder = defaultExportFilename
		ti.SetValue(defaultExportFilename)
		ti.CharLimit = 80
		ti.Width = 40
		ti.Focus()
		a.saveInput = ti
		a.status = ""
		a.state = stateSave
		return a, textinput.Blink
	case key.Matches(msg, key.NewBinding(key.WithKeys("m"))):
		a.monthly = !a.monthly
		a.tableAt = 0
		return a, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		if a.tableAt > 0 {
			a.tableAt--
		}
		return a, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
		if a.tableAt < a.tableRows()-1 {
			a.tableAt++
		}
		return a, nil
	}
	return a, nil
}

func (a App) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		name := strings.TrimSpace(a.saveInput.Value())
		if name == "" {
			name = defaultExportFilename
		}
		a.status = a.exportCSV(name)
		a.state = stateResults
		return a, nil
	case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
		a.state = stateResults
		return a, nil
	}
	var cmd tea.Cmd
	a.saveInput, cmd = a.saveInput.Update(msg)
	return a, cmd
}

func (a App) exportCSV(filename string) string {
	data, err := (output.CSVFormatter{}).Format(a.result)
	if err != nil {
		return "export failed: " + err.Error()
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "export failed: " + err.Error()
	}
	return "saved " + filename
}

// View implements tea.Model.
func (a App) View() string {
	if a.state == stateForm {
		var b strings.Builder
		b.WriteString(titleStyle.Render("Retirement Savings Simulator"))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Simulate balances month-by-month, with inflation and investment returns."))
		b.WriteString("\n\n")
		if a.err != nil {
			b.WriteString(errorStyle.Render(a.err.Error()))
			b.WriteString("\n\n")
		}
		b.WriteString(a.form.View())
		return b.String()
	}
	return a.viewResults()
}

func (a App) viewResults() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Projection Results"))
	b.WriteString("\n\n")
	b.WriteString(a.renderKPIs())
	b.WriteString("\n\n")
	b.WriteString(a.renderChart())
	b.WriteString("\n\n")
	b.WriteString(a.renderTable())
	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(subtitleStyle.Render(a.status))
		b.WriteString("\n")
	}
	if a.state == stateSave {
		b.WriteString("Save CSV as: " + a.saveInput.View())
		b.WriteString("\n")
		b.WriteString(statusBarStyle.Render("enter save • esc cancel"))
	} else {
		b.WriteString(statusBarStyle.Render("e edit • m yearly/monthly • s save csv • ↑/↓ scroll • q quit"))
	}

	return b.String()
}

func (a App) renderKPIs() string {
	depletion := "Never"
	if a.result.Depleted() {
		depletion = fmt.Sprintf("Period %d", *a.result.DepletionPeriod)
	}
	horizon := fmt.Sprintf("%d years (%d periods)", a.result.HorizonYears(), a.result.TotalPeriods)

	cards := []string{
		renderMetricCard("Ending balance (nominal)", output.FormatCurrency(a.result.EndingBalanceNominal)),
		renderMetricCard("Ending balance (today's $)", output.FormatCurrency(a.result.EndingBalanceReal)),
		renderMetricCard("Horizon", horizon),
		renderMetricCard("Depletion", depletion),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderMetricCard(label, value string) string {
	content := metricLabelStyle.Render(label) + "\n" + metricValueStyle.Render(value)
	return cardStyle.Render(content)
}

func (a App) renderChart() string {
	nominal := make([]float64, len(a.result.Records))
	real := make([]float64, len(a.result.Records))
	for i, rec := range a.result.Records {
		nominal[i], _ = rec.BalanceNominal.Float64()
		real[i], _ = rec.BalanceReal.Float64()
	}

	width := a.width - 4
	if width > 110 {
		width = 110
	}
	chart := newBalanceChart("Balance over time", width, 12)
	chart.addSeries("nominal", nominal, colorNominal, '●')
	chart.addSeries("today's $", real, colorReal, '○')
	return chart.render()
}

func (a App) tableRows() int {
	if a.monthly {
		return len(a.result.Records)
	}
	return len(a.yearly)
}

func (a App) renderTable() string {
	visible := a.height - 28
	if visible < 4 {
		visible = 4
	}

	var b strings.Builder
	total := a.tableRows()
	end := a.tableAt + visible
	if end > total {
		end = total
	}

	if a.monthly {
		b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-7s %-13s %12s %12s %14s %14s",
			"Period", "Phase", "Net Flow", "Withdrawal", "Nominal", "Today's $")))
		b.WriteString("\n")
		for _, rec := range a.result.Records[a.tableAt:end] {
			b.WriteString(fmt.Sprintf("%-7d %-13s %12s %12s %14s %14s\n",
				rec.Period,
				rec.Phase,
				rec.NetCashflow.StringFixed(0),
				rec.Withdrawal.Add(rec.OneTimeWithdrawal).StringFixed(0),
				rec.BalanceNominal.StringFixed(0),
				rec.BalanceReal.StringFixed(0),
			))
		}
	} else {
		b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-5s %-13s %12s %12s %12s %14s %14s",
			"Year", "Phase", "Income", "Contrib", "Withdrawal", "End Nominal", "End Real")))
		b.WriteString("\n")
		for _, y := range a.yearly[a.tableAt:end] {
			b.WriteString(fmt.Sprintf("%-5d %-13s %12s %12s %12s %14s %14s\n",
				y.Year,
				y.Phase,
				y.Income.StringFixed(0),
				y.Contribution.Add(y.OneTimeContribution).StringFixed(0),
				y.Withdrawal.Add(y.OneTimeWithdrawal).StringFixed(0),
				y.EndingBalanceNominal.StringFixed(0),
				y.EndingBalanceReal.StringFixed(0),
			))
		}
	}
	if end < total {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("… %d more rows", total-end)))
	}
	return b.String()
}
