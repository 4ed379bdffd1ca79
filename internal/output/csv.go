package output

import (
	"bytes"
	"encoding/csv"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
)

// CSVFormatter writes the flat per-period export: one row per period with
// every field of the record, so downstream tools never need to re-derive
// anything from the input parameters.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Period", "Year", "Phase",
		"StartingBalance", "PreFloorBalance", "BalanceNominal", "BalanceReal",
		"ReturnRate", "InflationRate",
		"Income", "Contribution", "Withdrawal",
		"OneTimeContribution", "OneTimeWithdrawal", "NetCashflow",
		"WentNegative",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, rec := range result.Records {
		row := []string{
			intToString(rec.Period),
			intToString(rec.Year),
			string(rec.Phase),
			rec.StartingBalance.StringFixed(2),
			rec.PreFloorBalance.StringFixed(2),
			rec.BalanceNominal.StringFixed(2),
			rec.BalanceReal.StringFixed(2),
			rec.ReturnRate.String(),
			rec.InflationRate.String(),
			rec.Income.StringFixed(2),
			rec.Contribution.StringFixed(2),
			rec.Withdrawal.StringFixed(2),
			rec.OneTimeContribution.StringFixed(2),
			rec.OneTimeWithdrawal.StringFixed(2),
			rec.NetCashflow.StringFixed(2),
			boolToString(rec.WentNegative),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func boolToString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
