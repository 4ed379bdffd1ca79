package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/davidiamir-glitch/Retirement-Simulator/internal/calculation"
	"github.com/davidiamir-glitch/Retirement-Simulator/internal/domain"
)

// InputParser loads simulation parameter files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads parameters from a YAML or TOML file, chosen by
// extension (.toml is TOML, everything else is parsed as YAML, which also
// covers JSON). Defaults are applied before the file is decoded, so a file
// only needs to state what differs from them, and the result is validated
// before it is returned.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	params := domain.DefaultParameters()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		if err := toml.Unmarshal(data, &params); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &params); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	applyDefaults(&params)

	if err := calculation.ValidateParameters(&params); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	return &params, nil
}

// applyDefaults fills the knobs a file may legitimately leave at their zero
// value. Money fields keep whatever the decode produced; an explicit zero
// must stay zero.
func applyDefaults(p *domain.SimulationParameters) {
	switch p.CompoundingMode {
	case "":
		p.CompoundingMode = domain.PeriodicEffective
	case "monthly-effective": // accepted alias for the monthly granularity
		p.CompoundingMode = domain.PeriodicEffective
	}
	if p.OperationOrder == "" {
		p.OperationOrder = domain.GrowthFirst
	}
	if p.PeriodsPerYear == 0 {
		p.PeriodsPerYear = 12
	}
}
