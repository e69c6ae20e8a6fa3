package capacity

import "fmt"

// Mode names a planning strategy.
type Mode string

const (
	ModeDerive   Mode = "derive"
	ModeValidate Mode = "validate"
)

// Plan is what a Planner produces for one graph.
type Plan struct {
	Mode  Mode
	Table Table
	// Rates is set in derive mode only.
	Rates []float64
	// Validation is set in validate mode only.
	Validation *Validation
}

// Planner turns aggregate usage into a capacity plan.
type Planner interface {
	// CheckConfig rejects configuration errors for a graph with dims resource
	// dimensions before any generation work is done.
	CheckConfig(dims int) error
	// Plan computes the plan for the given per-resource usage.
	Plan(usage []int) (*Plan, error)
	// Mode identifies the strategy.
	Mode() Mode
}

// DeriveStrategy computes capacities from target utilization.
type DeriveStrategy struct {
	Ratios []float64
	Rates  []float64
}

// Mode returns ModeDerive.
func (s DeriveStrategy) Mode() Mode { return ModeDerive }

// CheckConfig checks ratio and rate counts against dims.
func (s DeriveStrategy) CheckConfig(dims int) error {
	return CheckDeriveInputs(dims, s.Ratios, s.Rates)
}

// Plan derives a capacity table from the measured usage.
func (s DeriveStrategy) Plan(usage []int) (*Plan, error) {
	table, err := Derive(usage, s.Ratios, s.Rates)
	if err != nil {
		return nil, err
	}
	return &Plan{Mode: ModeDerive, Table: table, Rates: append([]float64(nil), s.Rates...)}, nil
}

// FixedStrategy uses caller-supplied capacities and reports violations.
type FixedStrategy struct {
	Table Table
}

// Mode returns ModeValidate.
func (s FixedStrategy) Mode() Mode { return ModeValidate }

// CheckConfig checks that the table has dims rows of equal length.
func (s FixedStrategy) CheckConfig(dims int) error {
	if err := s.Table.checkShape(dims); err != nil {
		return fmt.Errorf("%w: %w", ErrCapacityCount, err)
	}
	return nil
}

// Plan validates the fixed table against the measured usage.
func (s FixedStrategy) Plan(usage []int) (*Plan, error) {
	v, err := Validate(usage, s.Table)
	if err != nil {
		return nil, err
	}
	return &Plan{Mode: ModeValidate, Table: s.Table.Clone(), Validation: v}, nil
}
