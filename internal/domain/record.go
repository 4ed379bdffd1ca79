package domain

import "github.com/shopspring/decimal"

// PeriodRecord is one row of the produced time series. Records are ordered,
// append-only, and never mutated after the engine returns.
type PeriodRecord struct {
	Period int   `json:"period"` // 1-based, strictly increasing, no gaps
	Year   int   `json:"year"`   // 1-based, derived from Period and PeriodsPerYear
	Phase  Phase `json:"phase"`

	StartingBalance decimal.Decimal `json:"startingBalance"` // balance carried in from the previous period
	PreFloorBalance decimal.Decimal `json:"preFloorBalance"` // balance after growth and cashflow, before the zero floor
	BalanceNominal  decimal.Decimal `json:"balanceNominal"`  // reported balance, clamped at zero
	BalanceReal     decimal.Decimal `json:"balanceReal"`     // reported balance in today's money

	ReturnRate    decimal.Decimal `json:"returnRate"`    // effective per-period growth rate
	InflationRate decimal.Decimal `json:"inflationRate"` // effective per-period inflation rate

	Income              decimal.Decimal `json:"income"`
	Contribution        decimal.Decimal `json:"contribution"`
	Withdrawal          decimal.Decimal `json:"withdrawal"`
	OneTimeContribution decimal.Decimal `json:"oneTimeContribution"`
	OneTimeWithdrawal   decimal.Decimal `json:"oneTimeWithdrawal"`
	NetCashflow         decimal.Decimal `json:"netCashflow"`

	WentNegative bool `json:"wentNegative"`
}

// SimulationResult is the full output of one engine run: the ordered period
// sequence plus the derived summary scalars.
type SimulationResult struct {
	Records []PeriodRecord `json:"records"`

	EndingBalanceNominal decimal.Decimal `json:"endingBalanceNominal"`
	EndingBalanceReal    decimal.Decimal `json:"endingBalanceReal"`
	DepletionPeriod      *int            `json:"depletionPeriod,omitempty"` // first period that went negative, nil if none

	TotalPeriods   int `json:"totalPeriods"`
	PeriodsPerYear int `json:"periodsPerYear"`
}

// Depleted reports whether the balance went negative at any period.
func (r *SimulationResult) Depleted() bool {
	return r.DepletionPeriod != nil
}

// HorizonYears returns the total horizon expressed in whole years.
func (r *SimulationResult) HorizonYears() int {
	if r.PeriodsPerYear <= 0 {
		return 0
	}
	return r.TotalPeriods / r.PeriodsPerYear
}
