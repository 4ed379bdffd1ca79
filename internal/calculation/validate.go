package calculation

import (
	"fmt"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
	"github.com/shopspring/decimal"
)

var minusOne = decimal.NewFromInt(-1)

// ValidateParameters checks a parameter record before any computation
// starts. Every failure wraps domain.ErrInvalidParameter; the engine never
// produces a partial result for invalid input.
func ValidateParameters(p *domain.SimulationParameters) error {
	if p == nil {
		return fmt.Errorf("%w: parameters are required", domain.ErrInvalidParameter)
	}

	if p.PeriodsPerYear != 1 && p.PeriodsPerYear != 12 {
		return fmt.Errorf("%w: periods per year must be 1 or 12, got %d", domain.ErrInvalidParameter, p.PeriodsPerYear)
	}

	switch p.CompoundingMode {
	case domain.PeriodicEffective, domain.AnnualRealRate:
	default:
		return fmt.Errorf("%w: unrecognized compounding mode %q", domain.ErrInvalidParameter, p.CompoundingMode)
	}

	switch p.OperationOrder {
	case domain.GrowthFirst, domain.CashflowFirst:
	default:
		return fmt.Errorf("%w: unrecognized operation order %q", domain.ErrInvalidParameter, p.OperationOrder)
	}

	for _, check := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"opening balance", p.OpeningBalance},
		{"periodic income", p.PeriodicIncome},
		{"periodic contribution", p.PeriodicContribution},
		{"periodic withdrawal (pre)", p.PeriodicWithdrawalPre},
		{"periodic withdrawal (post)", p.PeriodicWithdrawalPost},
	} {
		if check.value.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: %s cannot be negative", domain.ErrInvalidParameter, check.name)
		}
	}

	for _, check := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"inflation rate", p.InflationRateAnnual},
		{"yield rate", p.YieldRateAnnual},
		{"fee rate", p.FeeRateAnnual},
		// The fee is netted against yield before conversion, so the net
		// rate must clear the same bound or the fractional root is
		// undefined.
		{"net yield rate (yield - fee)", p.YieldRateAnnual.Sub(p.FeeRateAnnual)},
	} {
		if check.value.LessThanOrEqual(minusOne) {
			return fmt.Errorf("%w: %s must be greater than -100%%", domain.ErrInvalidParameter, check.name)
		}
	}

	if p.AccumulationPeriods < 0 || p.DistributionPeriods < 0 {
		return fmt.Errorf("%w: phase period counts cannot be negative", domain.ErrInvalidParameter)
	}

	schedule := ResolveHorizon(p)
	total := schedule.TotalPeriods()
	if total <= 0 {
		return fmt.Errorf("%w: horizon must resolve to at least one period", domain.ErrInvalidParameter)
	}

	if err := validateOneTimeEvent("one-time contribution", p.OneTimeContribution, total); err != nil {
		return err
	}
	if err := validateOneTimeEvent("one-time withdrawal", p.OneTimeWithdrawal, total); err != nil {
		return err
	}

	return nil
}

func validateOneTimeEvent(name string, event *domain.OneTimeEvent, totalPeriods int) error {
	if event == nil {
		return nil
	}
	if event.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: %s amount cannot be negative", domain.ErrInvalidParameter, name)
	}
	if event.Period < 1 || event.Period > totalPeriods {
		return fmt.Errorf("%w: %s period %d is outside the horizon [1, %d]",
			domain.ErrInvalidParameter, name, event.Period, totalPeriods)
	}
	return nil
}
