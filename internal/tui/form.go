package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
)

// formValues holds the raw string state the huh form edits. Parsing into a
// parameter record happens only after the form completes.
type formValues struct {
	openingBalance string
	yearsTill      string
	yearsIn        string

	income         string
	contribution   string
	withdrawalPre  string
	withdrawalPost string

	inflationPct string
	yieldPct     string
	feePct       string
	inflatePost  bool

	oneTimeContribution       string
	oneTimeContributionPeriod string
	oneTimeWithdrawal         string
	oneTimeWithdrawalPeriod   string

	compoundingMode string
	operationOrder  string
}

func valuesFromParams(p *domain.SimulationParameters) formValues {
	ppy := p.PeriodsPerYear
	if ppy <= 0 {
		ppy = 12
	}
	v := formValues{
		openingBalance:  p.OpeningBalance.String(),
		yearsTill:       strconv.Itoa(p.AccumulationPeriods / ppy),
		yearsIn:         strconv.Itoa(p.DistributionPeriods / ppy),
		income:          p.PeriodicIncome.String(),
		contribution:    p.PeriodicContribution.String(),
		withdrawalPre:   p.PeriodicWithdrawalPre.String(),
		withdrawalPost:  p.PeriodicWithdrawalPost.String(),
		inflationPct:    p.InflationRateAnnual.Mul(decimal.NewFromInt(100)).String(),
		yieldPct:        p.YieldRateAnnual.Mul(decimal.NewFromInt(100)).String(),
		feePct:          p.FeeRateAnnual.Mul(decimal.NewFromInt(100)).String(),
		inflatePost:     p.InflatePostWithdrawals,
		compoundingMode: string(p.CompoundingMode),
		operationOrder:  string(p.OperationOrder),
	}
	if p.OneTimeContribution != nil {
		v.oneTimeContribution = p.OneTimeContribution.Amount.String()
		v.oneTimeContributionPeriod = strconv.Itoa(p.OneTimeContribution.Period)
	}
	if p.OneTimeWithdrawal != nil {
		v.oneTimeWithdrawal = p.OneTimeWithdrawal.Amount.String()
		v.oneTimeWithdrawalPeriod = strconv.Itoa(p.OneTimeWithdrawal.Period)
	}
	return v
}

// toParams parses the edited strings back into a parameter record. The
// engine revalidates, so this only rejects outright unparseable input.
func (v *formValues) toParams() (*domain.SimulationParameters, error) {
	p := &domain.SimulationParameters{
		PeriodsPerYear:         12,
		InflatePostWithdrawals: v.inflatePost,
		CompoundingMode:        domain.CompoundingMode(v.compoundingMode),
		OperationOrder:         domain.OperationOrder(v.operationOrder),
	}

	var err error
	if p.OpeningBalance, err = parseMoney("opening balance", v.openingBalance); err != nil {
		return nil, err
	}
	yearsTill, err := parseWholeYears("years till retirement", v.yearsTill)
	if err != nil {
		return nil, err
	}
	yearsIn, err := parseWholeYears("years in retirement", v.yearsIn)
	if err != nil {
		return nil, err
	}
	p.AccumulationPeriods = yearsTill * p.PeriodsPerYear
	p.DistributionPeriods = yearsIn * p.PeriodsPerYear

	if p.PeriodicIncome, err = parseMoney("monthly income", v.income); err != nil {
		return nil, err
	}
	if p.PeriodicContribution, err = parseMoney("monthly contribution", v.contribution); err != nil {
		return nil, err
	}
	if p.PeriodicWithdrawalPre, err = parseMoney("monthly withdrawal (pre)", v.withdrawalPre); err != nil {
		return nil, err
	}
	if p.PeriodicWithdrawalPost, err = parseMoney("monthly withdrawal (post)", v.withdrawalPost); err != nil {
		return nil, err
	}

	if p.InflationRateAnnual, err = parsePercent("inflation rate", v.inflationPct); err != nil {
		return nil, err
	}
	if p.YieldRateAnnual, err = parsePercent("yield rate", v.yieldPct); err != nil {
		return nil, err
	}
	if p.FeeRateAnnual, err = parsePercent("fee rate", v.feePct); err != nil {
		return nil, err
	}

	if p.OneTimeContribution, err = parseOneTime("one-time contribution", v.oneTimeContribution, v.oneTimeContributionPeriod); err != nil {
		return nil, err
	}
	if p.OneTimeWithdrawal, err = parseOneTime("one-time withdrawal", v.oneTimeWithdrawal, v.oneTimeWithdrawalPeriod); err != nil {
		return nil, err
	}

	return p, nil
}

func parseMoney(name, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return d, nil
}

func parsePercent(name, s string) (decimal.Decimal, error) {
	d, err := parseMoney(name, s)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Div(decimal.NewFromInt(100)), nil
}

func parseWholeYears(name, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", name, s)
	}
	return n, nil
}

func parseOneTime(name, amount, period string) (*domain.OneTimeEvent, error) {
	if amount == "" || amount == "0" {
		return nil, nil
	}
	a, err := parseMoney(name+" amount", amount)
	if err != nil {
		return nil, err
	}
	m, err := parseWholeYears(name+" period", period)
	if err != nil {
		return nil, err
	}
	return &domain.OneTimeEvent{Amount: a, Period: m}, nil
}

// validNumber is the per-field validator hooked into the form inputs.
func validNumber(s string) error {
	if s == "" {
		return nil
	}
	if _, err := decimal.NewFromString(s); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func validWholeNumber(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

// newParameterForm builds the three-page assumptions form.
func newParameterForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Opening balance").Value(&v.openingBalance).Validate(validNumber),
			huh.NewInput().Title("Years till retirement").Value(&v.yearsTill).Validate(validWholeNumber),
			huh.NewInput().Title("Years in retirement").Value(&v.yearsIn).Validate(validWholeNumber),
			huh.NewInput().Title("Monthly income till retirement").Value(&v.income).Validate(validNumber),
			huh.NewInput().Title("Monthly contribution till retirement").Value(&v.contribution).Validate(validNumber),
			huh.NewInput().Title("Monthly withdrawal till retirement").Value(&v.withdrawalPre).Validate(validNumber),
			huh.NewInput().Title("Monthly withdrawal after retirement").Value(&v.withdrawalPost).Validate(validNumber),
		).Title("Balances and cashflows"),

		huh.NewGroup(
			huh.NewInput().Title("Inflation rate (annual %)").Value(&v.inflationPct).Validate(validNumber),
			huh.NewInput().Title("Avg. yield on investment (annual %)").Value(&v.yieldPct).Validate(validNumber),
			huh.NewInput().Title("Fees / tax drag (annual %)").Value(&v.feePct).Validate(validNumber),
			huh.NewConfirm().Title("Increase retirement withdrawals with inflation?").Value(&v.inflatePost),
			huh.NewSelect[string]().Title("Compounding mode").
				Options(
					huh.NewOption("Monthly effective + inflation index", string(domain.PeriodicEffective)),
					huh.NewOption("Annual real rate (Fisher)", string(domain.AnnualRealRate)),
				).Value(&v.compoundingMode),
			huh.NewSelect[string]().Title("Operation order").
				Options(
					huh.NewOption("Growth before cashflow", string(domain.GrowthFirst)),
					huh.NewOption("Cashflow before growth", string(domain.CashflowFirst)),
				).Value(&v.operationOrder),
		).Title("Rates and conventions"),

		huh.NewGroup(
			huh.NewInput().Title("One-time contribution (blank for none)").Value(&v.oneTimeContribution).Validate(validNumber),
			huh.NewInput().Title("Month of one-time contribution").Value(&v.oneTimeContributionPeriod).Validate(validWholeNumber),
			huh.NewInput().Title("One-time withdrawal (blank for none)").Value(&v.oneTimeWithdrawal).Validate(validNumber),
			huh.NewInput().Title("Month of one-time withdrawal").Value(&v.oneTimeWithdrawalPeriod).Validate(validWholeNumber),
		).Title("Optional one-time events"),
	)
}
