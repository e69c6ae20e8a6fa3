package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/partbench/internal/capacity"
	"github.com/specialistvlad/partbench/internal/graphgen"
	"github.com/specialistvlad/partbench/internal/resource"
)

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = errors.New("malformed benchmark file")

// lineReader yields non-empty lines split into integer fields.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &lineReader{sc: sc}
}

func (lr *lineReader) next() ([]int, error) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text == "" {
			continue
		}
		raw := strings.Fields(text)
		fields := make([]int, len(raw))
		for i, f := range raw {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, lr.errorf("field %d: %q is not an integer", i+1, f)
			}
			fields[i] = n
		}
		return fields, nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}
	return nil, lr.errorf("unexpected end of file")
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, lr.line, fmt.Sprintf(format, args...))
}

// ReadPartitions parses a partition file.
func ReadPartitions(r io.Reader) (capacity.Table, error) {
	lr := newLineReader(r)
	header, err := lr.next()
	if err != nil {
		return nil, err
	}
	if len(header) != 1 || header[0] < 1 {
		return nil, lr.errorf("expected a positive partition count")
	}
	k := header[0]

	dimsLine, err := lr.next()
	if err != nil {
		return nil, err
	}
	if len(dimsLine) != 1 || dimsLine[0] < 1 {
		return nil, lr.errorf("expected a positive resource dimension count")
	}

	table := make(capacity.Table, dimsLine[0])
	for r := range table {
		row, err := lr.next()
		if err != nil {
			return nil, err
		}
		if len(row) != k {
			return nil, lr.errorf("resource %d has %d capacities, want %d", r, len(row), k)
		}
		table[r] = row
	}
	return table, nil
}

// ReadGraph parses a graph file whose vertices carry dims resource values.
// The file does not record dims itself; callers take it from the partition file.
func ReadGraph(r io.Reader, dims int) (*graphgen.Graph, error) {
	if dims < 1 {
		return nil, fmt.Errorf("%w: resource dimension count %d must be positive", ErrMalformed, dims)
	}
	lr := newLineReader(r)
	header, err := lr.next()
	if err != nil {
		return nil, err
	}
	if len(header) != 2 || header[0] < 0 || header[1] < 0 {
		return nil, lr.errorf("expected '<num_vertices> <num_edges>'")
	}
	n, m := header[0], header[1]

	vectors := make([]resource.Vector, n)
	adjacency := make([][]graphgen.Neighbor, n)
	for u := 0; u < n; u++ {
		fields, err := lr.next()
		if err != nil {
			return nil, err
		}
		if len(fields) < dims || (len(fields)-dims)%2 != 0 {
			return nil, lr.errorf("vertex %d: want %d resource values followed by neighbour/weight pairs", u, dims)
		}
		vectors[u] = resource.Vector(fields[:dims])
		for i := dims; i < len(fields); i += 2 {
			v := fields[i] - 1
			if v < 0 || v >= n {
				return nil, lr.errorf("vertex %d: neighbour %d out of range", u, fields[i])
			}
			adjacency[u] = append(adjacency[u], graphgen.Neighbor{Vertex: v, Weight: fields[i+1]})
		}
	}

	g := graphgen.New(vectors)
	for u, nbrs := range adjacency {
		for _, nb := range nbrs {
			if nb.Vertex == u {
				return nil, fmt.Errorf("%w: vertex %d lists itself as a neighbour", ErrMalformed, u)
			}
			if u > nb.Vertex {
				w, ok := g.EdgeWeight(u, nb.Vertex)
				if !ok || w != nb.Weight {
					return nil, fmt.Errorf("%w: edge %d-%d is not listed symmetrically", ErrMalformed, nb.Vertex+1, u+1)
				}
				continue
			}
			added, err := g.AddEdge(u, nb.Vertex, nb.Weight)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
			}
			if !added {
				return nil, fmt.Errorf("%w: duplicate edge %d-%d", ErrMalformed, u+1, nb.Vertex+1)
			}
		}
	}
	for u, nbrs := range adjacency {
		if g.Degree(u) != len(nbrs) {
			return nil, fmt.Errorf("%w: vertex %d lists %d neighbours but is referenced by %d", ErrMalformed, u+1, len(nbrs), g.Degree(u))
		}
	}
	if g.NumEdges() != m {
		return nil, fmt.Errorf("%w: header declares %d edges, found %d", ErrMalformed, m, g.NumEdges())
	}
	return g, nil
}

// LoadGraph opens path and parses it with ReadGraph.
func LoadGraph(path string, dims int) (*graphgen.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGraph(f, dims)
}

// LoadPartitions opens path and parses it with ReadPartitions.
func LoadPartitions(path string) (capacity.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPartitions(f)
}
