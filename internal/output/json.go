package output

import (
	"encoding/json"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
)

// JSONFormatter serializes the full result, records included.
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
