package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeTempFile(t, "params.yaml", `
opening_balance: 100000
accumulation_periods: 120
distribution_periods: 240
periodic_income: 8000
periodic_contribution: 1500
periodic_withdrawal_pre: 0
periodic_withdrawal_post: 4000
inflation_rate_annual: 0.03
yield_rate_annual: 0.07
fee_rate_annual: 0.005
inflate_post_withdrawals: false
`)

	parser := NewInputParser()
	params, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, params.OpeningBalance.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, 120, params.AccumulationPeriods)
	assert.Equal(t, 240, params.DistributionPeriods)
	assert.True(t, params.InflationRateAnnual.Equal(decimal.NewFromFloat(0.03)))
	assert.False(t, params.InflatePostWithdrawals)
	assert.Equal(t, domain.PeriodicEffective, params.CompoundingMode, "Omitted mode falls back to the default")
}

func TestLoadFromFile_YAMLAgeTriple(t *testing.T) {
	path := writeTempFile(t, "params.yaml", `
opening_balance: 50000
ages:
  current_age: 40
  retirement_age: 65
  life_expectancy: 90
periodic_withdrawal_post: 3000
`)

	parser := NewInputParser()
	params, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, params.Ages)
	assert.Equal(t, 40, params.Ages.CurrentAge)
	assert.Equal(t, 65, params.Ages.RetirementAge)
	assert.Equal(t, 90, params.Ages.LifeExpectancy)
}

func TestLoadFromFile_TOML(t *testing.T) {
	path := writeTempFile(t, "params.toml", `
opening_balance = "75000"
accumulation_periods = 60
distribution_periods = 120
periodic_contribution = "2000"
yield_rate_annual = "0.05"
compounding_mode = "annual-real-rate"
periods_per_year = 1

[one_time_contribution]
amount = "10000"
period = 30
`)

	parser := NewInputParser()
	params, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, params.OpeningBalance.Equal(decimal.NewFromInt(75000)))
	assert.Equal(t, domain.AnnualRealRate, params.CompoundingMode)
	assert.Equal(t, 1, params.PeriodsPerYear)
	require.NotNil(t, params.OneTimeContribution)
	assert.True(t, params.OneTimeContribution.Amount.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, 30, params.OneTimeContribution.Period)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile("does-not-exist.yaml")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	path := writeTempFile(t, "broken.yaml", "opening_balance: [not: a: number")

	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidParametersRejected(t *testing.T) {
	path := writeTempFile(t, "params.yaml", `
opening_balance: -5
`)

	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter), "Validation runs at load time")
}

func TestLoadFromFile_OneTimeEventOutsideHorizonRejected(t *testing.T) {
	path := writeTempFile(t, "params.yaml", `
accumulation_periods: 12
distribution_periods: 12
one_time_withdrawal:
  amount: 1000
  period: 25
`)

	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "outside the horizon")
}

func TestLoadFromFile_MonthlyEffectiveAlias(t *testing.T) {
	path := writeTempFile(t, "params.yaml", `
compounding_mode: monthly-effective
`)

	parser := NewInputParser()
	params, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.PeriodicEffective, params.CompoundingMode)
}
