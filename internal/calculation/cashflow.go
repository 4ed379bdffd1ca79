package calculation

import (
	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// periodCashflow carries every flow component computed for one period.
type periodCashflow struct {
	Income              decimal.Decimal
	Contribution        decimal.Decimal
	Withdrawal          decimal.Decimal
	OneTimeContribution decimal.Decimal
	OneTimeWithdrawal   decimal.Decimal
}

// Net returns inflows minus outflows.
func (c periodCashflow) Net() decimal.Decimal {
	return c.Income.Add(c.Contribution).Add(c.OneTimeContribution).
		Sub(c.Withdrawal).Sub(c.OneTimeWithdrawal)
}

// cashflowFor computes the flows for one period. It is a pure function of
// (phase, period index, parameters, per-period inflation rate).
//
// Income and contributions apply only during accumulation; the configured
// contribution is forced to zero in distribution regardless of its value.
// The withdrawal switches from the pre to the post rate at the phase
// boundary, and when inflation indexing is enabled the post withdrawal is
// scaled by (1+inflation)^(periods into distribution - 1), so the first
// distribution period pays exactly the configured amount.
func cashflowFor(p *domain.SimulationParameters, schedule HorizonSchedule, period int, inflationPerPeriod decimal.Decimal) periodCashflow {
	phase := schedule.PhaseFor(period)

	var cf periodCashflow
	if phase == domain.PhaseAccumulation {
		cf.Income = p.PeriodicIncome
		cf.Contribution = p.PeriodicContribution
		cf.Withdrawal = p.PeriodicWithdrawalPre
	} else {
		cf.Income = decimalZero
		cf.Contribution = decimalZero
		cf.Withdrawal = p.PeriodicWithdrawalPost
		if p.InflatePostWithdrawals && !inflationPerPeriod.IsZero() {
			into := schedule.PeriodsIntoDistribution(period)
			scale := onePlus(inflationPerPeriod).Pow(decimal.NewFromInt(int64(into - 1)))
			cf.Withdrawal = p.PeriodicWithdrawalPost.Mul(scale)
		}
	}

	cf.OneTimeContribution = oneTimeAmount(p.OneTimeContribution, period)
	cf.OneTimeWithdrawal = oneTimeAmount(p.OneTimeWithdrawal, period)

	return cf
}

func oneTimeAmount(event *domain.OneTimeEvent, period int) decimal.Decimal {
	if event != nil && event.Period == period {
		return event.Amount
	}
	return decimalZero
}
