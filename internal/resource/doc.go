// Package resource defines the per-vertex resource-demand vector used by the
// generator and the capacity planner.
//
// Dimension 0 of every vector is the vertex's intrinsic weight. Dimensions
// 1..n are auxiliary resources (memory, bandwidth, licences, whatever the
// downstream partitioner models). All values are positive integers.
package resource
