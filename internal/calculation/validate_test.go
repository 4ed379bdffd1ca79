package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
)

func TestValidateParameters_Defaults(t *testing.T) {
	params := domain.DefaultParameters()

	assert.NoError(t, ValidateParameters(&params), "Defaults should be valid")
}

func TestValidateParameters_Nil(t *testing.T) {
	err := ValidateParameters(nil)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestValidateParameters_NegativeMoney(t *testing.T) {
	params := domain.DefaultParameters()
	params.OpeningBalance = decimal.NewFromInt(-1)

	err := ValidateParameters(&params)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "opening balance")
}

func TestValidateParameters_PeriodsPerYear(t *testing.T) {
	params := domain.DefaultParameters()
	params.PeriodsPerYear = 4

	err := ValidateParameters(&params)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "periods per year")
}

func TestValidateParameters_UnknownCompoundingMode(t *testing.T) {
	params := domain.DefaultParameters()
	params.CompoundingMode = "quarterly-magic"

	err := ValidateParameters(&params)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "compounding mode")
}

func TestValidateParameters_UnknownOperationOrder(t *testing.T) {
	params := domain.DefaultParameters()
	params.OperationOrder = "sideways"

	err := ValidateParameters(&params)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "operation order")
}

func TestValidateParameters_ExtremeRate(t *testing.T) {
	params := domain.DefaultParameters()
	params.YieldRateAnnual = decimal.NewFromFloat(-1.5)

	err := ValidateParameters(&params)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "-100%")
}

func TestValidateParameters_EmptyHorizon(t *testing.T) {
	params := domain.DefaultParameters()
	params.AccumulationPeriods = 0
	params.DistributionPeriods = 0

	err := ValidateParameters(&params)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "horizon")
}

func TestValidateParameters_OneTimeEventOutOfRange(t *testing.T) {
	params := domain.DefaultParameters()
	params.OneTimeContribution = &domain.OneTimeEvent{Amount: decimal.NewFromInt(5000), Period: 481}

	err := ValidateParameters(&params)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "outside the horizon")
}

func TestValidateParameters_OneTimeEventInRange(t *testing.T) {
	params := domain.DefaultParameters()
	params.OneTimeWithdrawal = &domain.OneTimeEvent{Amount: decimal.NewFromInt(5000), Period: 480}

	assert.NoError(t, ValidateParameters(&params), "Last period is a valid event target")
}

func TestValidateParameters_FeeExceedsYieldPast100(t *testing.T) {
	params := domain.DefaultParameters()
	params.YieldRateAnnual = decimal.Zero
	params.FeeRateAnnual = decimal.NewFromInt(2)

	err := ValidateParameters(&params)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "net yield")
}

func TestValidateParameters_NetYieldAtBoundary(t *testing.T) {
	// Individually valid rates whose difference lands exactly on -100%.
	params := domain.DefaultParameters()
	params.YieldRateAnnual = decimal.NewFromFloat(-0.5)
	params.FeeRateAnnual = decimal.NewFromFloat(0.5)

	err := ValidateParameters(&params)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestValidateParameters_NegativePeriodCounts(t *testing.T) {
	params := domain.DefaultParameters()
	params.AccumulationPeriods = -12
	params.DistributionPeriods = 24

	err := ValidateParameters(&params)

	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "period counts")
}
