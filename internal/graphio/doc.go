// Package graphio reads and writes the two plain-text benchmark files.
//
// Graph file:
//
//	<num_vertices> <num_edges>
//	<r0> <r1> ... <rD-1> <v+1> <w> <v+1> <w> ...   (one line per vertex)
//
// Neighbour indices are written 1-based. Partition file:
//
//	<k>
//	<D>
//	<cap[0][0]> ... <cap[0][k-1]>                  (one line per resource)
package graphio
