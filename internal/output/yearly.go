package output

import (
	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// YearlySummary aggregates the periods of one (year, phase) group: flow
// fields are summed, balance fields take the last period's value. A year
// that straddles the phase boundary produces one row per phase.
type YearlySummary struct {
	Year  int          `json:"year"`
	Phase domain.Phase `json:"phase"`

	Income              decimal.Decimal `json:"income"`
	Contribution        decimal.Decimal `json:"contribution"`
	Withdrawal          decimal.Decimal `json:"withdrawal"`
	OneTimeContribution decimal.Decimal `json:"oneTimeContribution"`
	OneTimeWithdrawal   decimal.Decimal `json:"oneTimeWithdrawal"`

	EndingBalanceNominal decimal.Decimal `json:"endingBalanceNominal"`
	EndingBalanceReal    decimal.Decimal `json:"endingBalanceReal"`
}

// AggregateByYear folds the period sequence into yearly rows, preserving
// period order within and across groups.
func AggregateByYear(result *domain.SimulationResult) []YearlySummary {
	if result == nil || len(result.Records) == 0 {
		return nil
	}

	var summaries []YearlySummary
	current := -1 // index into summaries of the open group

	for _, rec := range result.Records {
		if current < 0 || summaries[current].Year != rec.Year || summaries[current].Phase != rec.Phase {
			summaries = append(summaries, YearlySummary{Year: rec.Year, Phase: rec.Phase})
			current = len(summaries) - 1
		}
		s := &summaries[current]
		s.Income = s.Income.Add(rec.Income)
		s.Contribution = s.Contribution.Add(rec.Contribution)
		s.Withdrawal = s.Withdrawal.Add(rec.Withdrawal)
		s.OneTimeContribution = s.OneTimeContribution.Add(rec.OneTimeContribution)
		s.OneTimeWithdrawal = s.OneTimeWithdrawal.Add(rec.OneTimeWithdrawal)
		s.EndingBalanceNominal = rec.BalanceNominal
		s.EndingBalanceReal = rec.BalanceReal
	}

	return summaries
}
