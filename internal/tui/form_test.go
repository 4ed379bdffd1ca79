package tui

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
)

func TestFormValuesRoundTrip(t *testing.T) {
	params := domain.DefaultParameters()

	values := valuesFromParams(&params)
	parsed, err := values.toParams()
	require.NoError(t, err)

	assert.True(t, parsed.OpeningBalance.Equal(params.OpeningBalance))
	assert.Equal(t, params.AccumulationPeriods, parsed.AccumulationPeriods)
	assert.Equal(t, params.DistributionPeriods, parsed.DistributionPeriods)
	assert.True(t, parsed.InflationRateAnnual.Equal(params.InflationRateAnnual))
	assert.Equal(t, params.CompoundingMode, parsed.CompoundingMode)
	assert.Equal(t, params.OperationOrder, parsed.OperationOrder)
	assert.Equal(t, params.InflatePostWithdrawals, parsed.InflatePostWithdrawals)
}

func TestFormValues_OneTimeEvents(t *testing.T) {
	params := domain.DefaultParameters()
	params.OneTimeContribution = &domain.OneTimeEvent{Amount: decimal.NewFromInt(5000), Period: 10}

	values := valuesFromParams(&params)
	parsed, err := values.toParams()
	require.NoError(t, err)

	require.NotNil(t, parsed.OneTimeContribution)
	assert.True(t, parsed.OneTimeContribution.Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, 10, parsed.OneTimeContribution.Period)
	assert.Nil(t, parsed.OneTimeWithdrawal, "Blank amount means no event")
}

func TestFormValues_RejectsGarbage(t *testing.T) {
	params := domain.DefaultParameters()
	values := valuesFromParams(&params)
	values.openingBalance = "lots"

	_, err := values.toParams()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "opening balance")
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validNumber(""))
	assert.NoError(t, validNumber("123.45"))
	assert.Error(t, validNumber("abc"))

	assert.NoError(t, validWholeNumber("12"))
	assert.Error(t, validWholeNumber("12.5"))
}
