package capacity

import (
	"errors"
	"fmt"
)

var (
	// ErrRatioSum is returned when partition ratios do not sum to 1.
	ErrRatioSum = errors.New("partition ratios must sum to 1")
	// ErrRateCount is returned when there is not one utilization rate per resource.
	ErrRateCount = errors.New("utilization rate count does not match resource count")
	// ErrZeroRate is returned for a non-positive utilization rate.
	ErrZeroRate = errors.New("utilization rate must be greater than zero")
	// ErrCapacityCount is returned when a flattened capacity list has the wrong length.
	ErrCapacityCount = errors.New("capacity count does not match resources x partitions")
	// ErrTableShape is returned for ragged tables or tables with the wrong dimension count.
	ErrTableShape = errors.New("capacity table has the wrong shape")
)

// Table holds capacities indexed as [resource][partition].
type Table [][]int

// Dims returns the number of resource dimensions.
func (t Table) Dims() int { return len(t) }

// Partitions returns the number of partitions, or 0 for an empty table.
func (t Table) Partitions() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Sum returns the total capacity of resource r across all partitions.
func (t Table) Sum(r int) int {
	total := 0
	for _, c := range t[r] {
		total += c
	}
	return total
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for r, row := range t {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// checkShape verifies that the table has dims rows of equal, non-zero length.
func (t Table) checkShape(dims int) error {
	if len(t) != dims {
		return fmt.Errorf("%w: %d resource rows, want %d", ErrTableShape, len(t), dims)
	}
	k := t.Partitions()
	if k == 0 {
		return fmt.Errorf("%w: no partitions", ErrTableShape)
	}
	for r, row := range t {
		if len(row) != k {
			return fmt.Errorf("%w: resource %d has %d partitions, want %d", ErrTableShape, r, len(row), k)
		}
	}
	return nil
}

// Unflatten splits a resource-major list of dims*k capacities into a table.
// values[r*k : (r+1)*k] become the capacities of resource r.
func Unflatten(values []int, dims, k int) (Table, error) {
	if dims < 1 || k < 1 {
		return nil, fmt.Errorf("%w: %d resources x %d partitions", ErrTableShape, dims, k)
	}
	if len(values) != dims*k {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrCapacityCount, len(values), dims*k)
	}
	t := make(Table, dims)
	for r := range t {
		t[r] = append([]int(nil), values[r*k:(r+1)*k]...)
	}
	return t, nil
}
