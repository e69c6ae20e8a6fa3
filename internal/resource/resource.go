// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the resource-demand vector and the closed integer ranges
// its values are drawn from.
package resource

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidRange is returned when a range is empty or admits non-positive values.
var ErrInvalidRange = errors.New("invalid range")

// Range is a closed interval of positive integers, [Min, Max].
type Range struct {
	Min int
	Max int
}

// Validate reports whether the range can produce positive integers.
func (r Range) Validate() error {
	if r.Min < 1 {
		return fmt.Errorf("%w: min %d must be at least 1", ErrInvalidRange, r.Min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Draw returns a uniformly random integer in [Min, Max].
func (r Range) Draw(rng *rand.Rand) int {
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// Vector is a vertex's resource demand. Index 0 is the vertex weight.
type Vector []int

// Weight returns the intrinsic vertex weight.
func (v Vector) Weight() int {
	return v[0]
}

// Dims returns the number of resource dimensions, weight included.
func (v Vector) Dims() int {
	return len(v)
}

// Assign draws one vector of length numResources+1 per vertex. Element 0 comes
// from vertexWeight and elements 1..numResources independently from auxiliary.
func Assign(rng *rand.Rand, numVertices, numResources int, vertexWeight, auxiliary Range) []Vector {
	vectors := make([]Vector, numVertices)
	for i := range vectors {
		vec := make(Vector, numResources+1)
		vec[0] = vertexWeight.Draw(rng)
		for r := 1; r <= numResources; r++ {
			vec[r] = auxiliary.Draw(rng)
		}
		vectors[i] = vec
	}
	return vectors
}

// TotalUsage sums every dimension across all vectors. Vectors shorter than
// dims contribute nothing to the missing dimensions.
func TotalUsage(vectors []Vector, dims int) []int {
	usage := make([]int, dims)
	for _, vec := range vectors {
		for r := 0; r < dims && r < len(vec); r++ {
			usage[r] += vec[r]
		}
	}
	return usage
}
