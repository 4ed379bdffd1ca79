package calculation

import (
	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine runs the deterministic period-by-period projection. It holds no
// mutable state between runs; Simulate is a pure function of its input.
type Engine struct {
	Logger Logger
	Debug  bool // gates the per-run diagnostic logging
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger installs the no-op one.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Simulate validates the parameters and produces the full period sequence
// plus summary scalars. No partial result is ever returned: either the
// parameters are rejected up front or the whole horizon is computed.
//
// Depletion is not an error. When a period's balance nets out negative the
// period is flagged, the reported balance is clamped to zero, and the next
// period starts from that floored zero; the run always completes.
func (e *Engine) Simulate(params *domain.SimulationParameters) (*domain.SimulationResult, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}

	schedule := ResolveHorizon(params)
	total := schedule.TotalPeriods()
	rates := deriveRates(params)

	if e.Debug {
		e.Logger.Debugf("simulate: %d periods (%d accumulation, %d distribution), growth=%s/period, inflation=%s/period",
			total, schedule.AccumulationPeriods, schedule.DistributionPeriods,
			rates.growth.String(), rates.inflation.String())
	}

	growthFactor := onePlus(rates.growth)
	indexStep := onePlus(rates.inflation)

	records := make([]domain.PeriodRecord, 0, total)
	balance := params.OpeningBalance
	// Cumulative inflation index, anchored so period 1 deflates by 1.0.
	index := decimalOne

	for m := 1; m <= total; m++ {
		cf := cashflowFor(params, schedule, m, rates.inflation)
		net := cf.Net()
		starting := balance

		// Growth-first grows the carried-in balance and then nets the
		// period's cashflows; cashflow-first does the reverse.
		var preFloor decimal.Decimal
		if params.OperationOrder == domain.CashflowFirst {
			preFloor = starting.Add(net).Mul(growthFactor)
		} else {
			preFloor = starting.Mul(growthFactor).Add(net)
		}

		wentNegative := preFloor.IsNegative()
		reported := preFloor
		if wentNegative {
			reported = decimalZero
		}

		records = append(records, domain.PeriodRecord{
			Period:              m,
			Year:                schedule.YearFor(m),
			Phase:               schedule.PhaseFor(m),
			StartingBalance:     starting,
			PreFloorBalance:     preFloor,
			BalanceNominal:      reported,
			BalanceReal:         reported.Div(index),
			ReturnRate:          rates.growth,
			InflationRate:       rates.inflation,
			Income:              cf.Income,
			Contribution:        cf.Contribution,
			Withdrawal:          cf.Withdrawal,
			OneTimeContribution: cf.OneTimeContribution,
			OneTimeWithdrawal:   cf.OneTimeWithdrawal,
			NetCashflow:         net,
			WentNegative:        wentNegative,
		})

		// The floored value feeds the next period; a negative balance is
		// never resurrected.
		balance = reported
		index = index.Mul(indexStep)
	}

	last := records[len(records)-1]
	result := &domain.SimulationResult{
		Records:              records,
		EndingBalanceNominal: last.BalanceNominal,
		EndingBalanceReal:    last.BalanceReal,
		DepletionPeriod:      scanDepletion(records),
		TotalPeriods:         total,
		PeriodsPerYear:       schedule.PeriodsPerYear,
	}

	if result.Depleted() {
		e.Logger.Infof("simulate: balance depleted at period %d", *result.DepletionPeriod)
	}

	return result, nil
}

// scanDepletion walks the completed sequence in period order and returns the
// first period that went negative, or nil when the balance never depleted.
func scanDepletion(records []domain.PeriodRecord) *int {
	for i := range records {
		if records[i].WentNegative {
			period := records[i].Period
			return &period
		}
	}
	return nil
}
