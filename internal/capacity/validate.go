package capacity

// Check is the outcome for one resource dimension.
type Check struct {
	Resource  int
	Usage     int
	Capacity  int
	Satisfied bool
}

// Validation is the result of comparing usage against a capacity table.
type Validation struct {
	OK     bool
	Checks []Check
}

// Violations returns the checks that failed.
func (v *Validation) Violations() []Check {
	var out []Check
	for _, c := range v.Checks {
		if !c.Satisfied {
			out = append(out, c)
		}
	}
	return out
}

// Validate compares each resource's usage with the sum of its capacities.
// The table is never modified.
func Validate(usage []int, table Table) (*Validation, error) {
	if err := table.checkShape(len(usage)); err != nil {
		return nil, err
	}
	v := &Validation{OK: true, Checks: make([]Check, len(usage))}
	for r, used := range usage {
		c := Check{Resource: r, Usage: used, Capacity: table.Sum(r)}
		c.Satisfied = c.Usage <= c.Capacity
		if !c.Satisfied {
			v.OK = false
		}
		v.Checks[r] = c
	}
	return v, nil
}
