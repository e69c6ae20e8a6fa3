// Package capacity plans per-partition, per-resource capacity limits.
//
// Two strategies are provided. DeriveStrategy computes capacities from the
// graph's aggregate usage, a target utilization rate per resource and a
// ratio vector splitting each total across partitions. FixedStrategy takes a
// caller-supplied table and only checks it against usage.
//
// Derived tables always sum exactly to floor(usage/rate) per resource: each
// partition gets floor(total*ratio) and partition 0 absorbs whatever the
// flooring left over. Downstream tools rely on these exact numbers, so the
// rounding rule must not be replaced by a fairer scheme.
package capacity
