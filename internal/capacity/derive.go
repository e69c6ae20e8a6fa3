package capacity

import (
	"fmt"
	"math"
)

// ratioTolerance bounds how far the ratio sum may stray from 1.
const ratioTolerance = 1e-6

// CheckDeriveInputs validates ratios and rates for a graph with dims resource
// dimensions. It is run before generation so bad input never produces files.
func CheckDeriveInputs(dims int, ratios, rates []float64) error {
	if len(ratios) == 0 {
		return fmt.Errorf("%w: no ratios given", ErrRatioSum)
	}
	sum := 0.0
	for _, r := range ratios {
		if r < 0 {
			return fmt.Errorf("%w: negative ratio %g", ErrRatioSum, r)
		}
		sum += r
	}
	if math.Abs(sum-1.0) >= ratioTolerance {
		return fmt.Errorf("%w: got %g", ErrRatioSum, sum)
	}
	if len(rates) != dims {
		return fmt.Errorf("%w: got %d rates for %d resources", ErrRateCount, len(rates), dims)
	}
	for r, rate := range rates {
		if rate <= 0 || math.IsNaN(rate) {
			return fmt.Errorf("%w: resource %d has rate %g", ErrZeroRate, r, rate)
		}
	}
	return nil
}

// Derive computes a capacity table from aggregate usage. For each resource r,
// the total capacity is floor(usage[r]/rates[r]); partition p receives
// floor(total*ratios[p]) and partition 0 additionally receives the remainder.
func Derive(usage []int, ratios, rates []float64) (Table, error) {
	if err := CheckDeriveInputs(len(usage), ratios, rates); err != nil {
		return nil, err
	}

	table := make(Table, len(usage))
	for r, used := range usage {
		total := TotalCapacity(used, rates[r])
		caps := make([]int, len(ratios))
		assigned := 0
		for p, ratio := range ratios {
			caps[p] = int(math.Floor(float64(total) * ratio))
			assigned += caps[p]
		}
		caps[0] += total - assigned
		table[r] = caps
	}
	return table, nil
}

// TotalCapacity returns floor(used / rate).
func TotalCapacity(used int, rate float64) int {
	return int(math.Floor(float64(used) / rate))
}
