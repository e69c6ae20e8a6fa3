package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/partbench/internal/capacity"
	"github.com/specialistvlad/partbench/internal/graphgen"
	"github.com/specialistvlad/partbench/internal/resource"
)

// ErrConfig is wrapped by every configuration error. Configuration errors are
// detected before any generation work and before any file is written.
var ErrConfig = errors.New("configuration error")

// Config holds all the necessary configuration for a generation run.
type Config struct {
	NumVertices       int
	NumResources      int
	Partitions        int
	MaxEdgesPerVertex int
	VertexWeight      resource.Range
	EdgeWeight        resource.Range
	ResourceWeight    resource.Range

	// Derive mode.
	Ratios    []float64
	UtilRates []float64
	// Validate mode: resource-major, (NumResources+1)*Partitions values.
	Capacities []int

	OutputPath    string
	Render        bool
	Seed          uint64
	SummaryFormat string

	LogFormat string
	LogLevel  string
}

// DefaultConfig returns a Config with every optional field at its default.
func DefaultConfig() Config {
	gen := graphgen.DefaultOptions()
	return Config{
		MaxEdgesPerVertex: gen.MaxEdgesPerVertex,
		VertexWeight:      gen.VertexWeight,
		EdgeWeight:        gen.EdgeWeight,
		ResourceWeight:    gen.ResourceWeight,
		OutputPath:        "graph.txt",
		Render:            true,
		SummaryFormat:     "text",
		LogFormat:         "text",
		LogLevel:          "info",
	}
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := cfg.GeneratorOptions().Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if cfg.Partitions < 1 {
		return nil, fmt.Errorf("%w: partition count %d must be at least 1", ErrConfig, cfg.Partitions)
	}
	if cfg.OutputPath == "" {
		return nil, fmt.Errorf("%w: output path cannot be empty", ErrConfig)
	}
	switch cfg.SummaryFormat {
	case "text", "yaml":
	default:
		return nil, fmt.Errorf("%w: summary format %q must be 'text' or 'yaml'", ErrConfig, cfg.SummaryFormat)
	}

	planner, err := cfg.Planner()
	if err != nil {
		return nil, err
	}
	if err := planner.CheckConfig(cfg.Dims()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return &cfg, nil
}

// Dims returns the number of resource dimensions including vertex weight.
func (c *Config) Dims() int {
	return c.NumResources + 1
}

// Mode reports which capacity strategy the configuration selects.
func (c *Config) Mode() capacity.Mode {
	if c.Capacities != nil {
		return capacity.ModeValidate
	}
	return capacity.ModeDerive
}

// GeneratorOptions returns the graph generator options for this run.
func (c *Config) GeneratorOptions() graphgen.Options {
	return graphgen.Options{
		NumVertices:       c.NumVertices,
		NumResources:      c.NumResources,
		MaxEdgesPerVertex: c.MaxEdgesPerVertex,
		VertexWeight:      c.VertexWeight,
		EdgeWeight:        c.EdgeWeight,
		ResourceWeight:    c.ResourceWeight,
	}
}

// Planner builds the capacity strategy for the selected mode.
func (c *Config) Planner() (capacity.Planner, error) {
	deriveGiven := c.Ratios != nil || c.UtilRates != nil
	switch {
	case deriveGiven && c.Capacities != nil:
		return nil, fmt.Errorf("%w: ratios/utilization rates and explicit capacities are mutually exclusive", ErrConfig)
	case c.Capacities != nil:
		table, err := capacity.Unflatten(c.Capacities, c.Dims(), c.Partitions)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		return capacity.FixedStrategy{Table: table}, nil
	case deriveGiven:
		if len(c.Ratios) != c.Partitions {
			return nil, fmt.Errorf("%w: %d partition ratios given for %d partitions", ErrConfig, len(c.Ratios), c.Partitions)
		}
		return capacity.DeriveStrategy{Ratios: c.Ratios, Rates: c.UtilRates}, nil
	default:
		return nil, fmt.Errorf("%w: either ratios with utilization rates or explicit capacities are required", ErrConfig)
	}
}
