package output

import (
	"strconv"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a completed simulation result into one output format.
type Formatter interface {
	Name() string
	Format(result *domain.SimulationResult) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console", "":
		return ConsoleFormatter{}
	case "csv":
		return CSVFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	default:
		return nil
	}
}

// FormatCurrency formats a decimal amount as dollars.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal rate as a percentage.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func intToString(v int) string {
	return strconv.Itoa(v)
}
