// Package graphgen builds the randomized, connected, weighted graphs used as
// partitioning benchmarks.
//
// # Construction
//
// Generation runs in two phases over a fresh set of vertices:
//
//  1. **Spanning tree:** vertices are visited in a random permutation and each
//     one is attached to a uniformly chosen, already-visited vertex. This
//     phase alone guarantees connectivity and produces exactly N-1 edges.
//  2. **Degree augmentation:** every vertex, in index order, draws a target
//     degree from [2, MaxEdgesPerVertex] and is connected to random
//     non-neighbours until it reaches that target or runs out of candidates.
//
// Edges are only ever added, so the graph stays connected. A vertex pair is
// never connected twice and self loops are never produced.
//
// # Randomness
//
// Every draw comes from the *rand.Rand handed to Generate. Two calls with
// generators seeded identically produce identical graphs.
package graphgen
