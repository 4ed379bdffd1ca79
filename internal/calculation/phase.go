package calculation

import "github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"

// HorizonSchedule is the resolved phase layout for one run: how many periods
// belong to accumulation and how many to distribution.
type HorizonSchedule struct {
	AccumulationPeriods int
	DistributionPeriods int
	PeriodsPerYear      int
}

// ResolveHorizon turns either parameterization of the horizon into a
// concrete schedule. An age triple takes precedence over explicit period
// counts; both phase lengths are floored at zero, so an immediate-retirement
// schedule (zero accumulation periods) is valid.
func ResolveHorizon(p *domain.SimulationParameters) HorizonSchedule {
	ppy := p.PeriodsPerYear
	if ppy <= 0 {
		ppy = 1
	}

	if p.Ages != nil {
		acc := (p.Ages.RetirementAge - p.Ages.CurrentAge) * ppy
		dist := (p.Ages.LifeExpectancy - p.Ages.RetirementAge) * ppy
		if acc < 0 {
			acc = 0
		}
		if dist < 0 {
			dist = 0
		}
		return HorizonSchedule{AccumulationPeriods: acc, DistributionPeriods: dist, PeriodsPerYear: ppy}
	}

	return HorizonSchedule{
		AccumulationPeriods: p.AccumulationPeriods,
		DistributionPeriods: p.DistributionPeriods,
		PeriodsPerYear:      ppy,
	}
}

// TotalPeriods is the full horizon length.
func (h HorizonSchedule) TotalPeriods() int {
	return h.AccumulationPeriods + h.DistributionPeriods
}

// PhaseFor classifies a 1-based period index. The last accumulation period
// belongs to accumulation; the first distribution period is the one after it.
func (h HorizonSchedule) PhaseFor(period int) domain.Phase {
	if period <= h.AccumulationPeriods {
		return domain.PhaseAccumulation
	}
	return domain.PhaseDistribution
}

// PeriodsIntoDistribution returns how far a period is into the distribution
// phase, 1-based; zero for accumulation periods.
func (h HorizonSchedule) PeriodsIntoDistribution(period int) int {
	if period <= h.AccumulationPeriods {
		return 0
	}
	return period - h.AccumulationPeriods
}

// YearFor derives the 1-based year a period falls in.
func (h HorizonSchedule) YearFor(period int) int {
	return (period-1)/h.PeriodsPerYear + 1
}
