package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
)

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "console", GetFormatterByName("console").Name())
	assert.Equal(t, "console", GetFormatterByName("").Name(), "Empty name falls back to console")
	assert.Equal(t, "csv", GetFormatterByName("csv").Name())
	assert.Equal(t, "json", GetFormatterByName("json").Name())
	assert.Nil(t, GetFormatterByName("html"))
}

func TestCSVFormatter(t *testing.T) {
	result := simulateDefault(t)

	data, err := (CSVFormatter{}).Format(result)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 481, "Header plus one row per period")
	assert.Equal(t, "Period", rows[0][0])
	assert.Equal(t, "WentNegative", rows[0][len(rows[0])-1])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "accumulation", rows[1][2])
	assert.Equal(t, "distribution", rows[181][2])
	assert.Equal(t, "480", rows[480][0])
}

func TestJSONFormatter(t *testing.T) {
	result := simulateDefault(t)

	data, err := (JSONFormatter{}).Format(result)
	require.NoError(t, err)

	var decoded domain.SimulationResult
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, result.TotalPeriods, decoded.TotalPeriods)
	assert.Len(t, decoded.Records, 480)
	assert.True(t, decoded.EndingBalanceNominal.Equal(result.EndingBalanceNominal))
}

func TestConsoleFormatter(t *testing.T) {
	result := simulateDefault(t)

	data, err := (ConsoleFormatter{}).Format(result)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "RETIREMENT SAVINGS PROJECTION")
	assert.Contains(t, text, "Ending balance (nominal)")
	assert.Contains(t, text, "Depletion period:          never")
	assert.Contains(t, text, "YEARLY SUMMARY")
}

func TestConsoleFormatter_DepletedRun(t *testing.T) {
	depletion := 1
	result := &domain.SimulationResult{
		Records:         simulateDefault(t).Records[:12],
		DepletionPeriod: &depletion,
		TotalPeriods:    12,
		PeriodsPerYear:  12,
	}

	data, err := (ConsoleFormatter{}).Format(result)
	require.NoError(t, err)

	assert.Contains(t, string(data), "Depletion period:          1")
}
