package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
)

// ConsoleFormatter renders the summary metrics and the yearly table the way
// the interactive app presents them: KPIs first, then one aggregated row per
// (year, phase) group.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "RETIREMENT SAVINGS PROJECTION")
	fmt.Fprintln(buf, strings.Repeat("=", 60))
	fmt.Fprintf(buf, "Horizon:                   %d years (%d periods)\n", result.HorizonYears(), result.TotalPeriods)
	fmt.Fprintf(buf, "Ending balance (nominal):  %s\n", FormatCurrency(result.EndingBalanceNominal))
	fmt.Fprintf(buf, "Ending balance (today's $): %s\n", FormatCurrency(result.EndingBalanceReal))
	if result.Depleted() {
		fmt.Fprintf(buf, "Depletion period:          %d\n", *result.DepletionPeriod)
	} else {
		fmt.Fprintln(buf, "Depletion period:          never")
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "YEARLY SUMMARY")
	fmt.Fprintln(buf, strings.Repeat("-", 60))

	w := tabwriter.NewWriter(buf, 2, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Year\tPhase\tIncome\tContrib\tWithdrawal\tEnd Nominal\tEnd Real\t")
	for _, y := range AggregateByYear(result) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			y.Year,
			y.Phase,
			y.Income.StringFixed(0),
			y.Contribution.Add(y.OneTimeContribution).StringFixed(0),
			y.Withdrawal.Add(y.OneTimeWithdrawal).StringFixed(0),
			y.EndingBalanceNominal.StringFixed(0),
			y.EndingBalanceReal.StringFixed(0),
		)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
