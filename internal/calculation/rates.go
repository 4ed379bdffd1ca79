package calculation

import (
	"math"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalOne  = decimal.NewFromInt(1)
	decimalZero = decimal.Zero
)

// AnnualToPeriodic converts a nominal annual rate to the effective rate for
// one period under compounding: (1+annual)^(1/periodsPerYear) - 1. For an
// annual granularity (periodsPerYear == 1) this is the identity.
//
// The fractional root is taken through float64 once per run; everything
// downstream of the derived rate stays in decimal arithmetic.
func AnnualToPeriodic(annual decimal.Decimal, periodsPerYear int) decimal.Decimal {
	if periodsPerYear <= 1 {
		return annual
	}
	f, _ := annual.Float64()
	periodic := math.Pow(1.0+f, 1.0/float64(periodsPerYear)) - 1.0
	return decimal.NewFromFloat(periodic)
}

// FisherReal combines a nominal rate and an inflation rate into a real rate:
// (1+nominal)/(1+inflation) - 1.
func FisherReal(nominal, inflation decimal.Decimal) decimal.Decimal {
	return onePlus(nominal).Div(onePlus(inflation)).Sub(decimalOne)
}

// periodRates holds the two effective per-period rates the loop runs on.
type periodRates struct {
	growth    decimal.Decimal // applied to the balance each period
	inflation decimal.Decimal // drives the cumulative index and withdrawal indexing
}

// deriveRates resolves the configured compounding mode into concrete
// per-period rates. Fees are netted against yield at the annual level, before
// conversion.
//
// Under AnnualRealRate the growth rate is the Fisher combination of net
// yield and inflation, and the per-period inflation rate is zero: the whole
// sequence is produced directly in today's money, so the cumulative index
// stays at 1 and real balances equal nominal ones.
func deriveRates(p *domain.SimulationParameters) periodRates {
	netYield := p.YieldRateAnnual.Sub(p.FeeRateAnnual)

	switch p.CompoundingMode {
	case domain.AnnualRealRate:
		return periodRates{
			growth:    AnnualToPeriodic(FisherReal(netYield, p.InflationRateAnnual), p.PeriodsPerYear),
			inflation: decimalZero,
		}
	default: // domain.PeriodicEffective, enforced by validation
		return periodRates{
			growth:    AnnualToPeriodic(netYield, p.PeriodsPerYear),
			inflation: AnnualToPeriodic(p.InflationRateAnnual, p.PeriodsPerYear),
		}
	}
}

func onePlus(value decimal.Decimal) decimal.Decimal {
	return decimalOne.Add(value)
}
