package graphgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/specialistvlad/partbench/internal/ctxlog"
	"github.com/specialistvlad/partbench/internal/resource"
)

// ErrInvalidOptions is wrapped by every Options validation failure.
var ErrInvalidOptions = errors.New("invalid generator options")

// minTargetDegree is the lower bound of the random target degree.
const minTargetDegree = 2

// Options controls a single generation run.
type Options struct {
	NumVertices       int
	NumResources      int
	MaxEdgesPerVertex int
	VertexWeight      resource.Range
	EdgeWeight        resource.Range
	ResourceWeight    resource.Range
}

// DefaultOptions returns the generator defaults for everything except the
// vertex and resource counts.
func DefaultOptions() Options {
	return Options{
		MaxEdgesPerVertex: 10,
		VertexWeight:      resource.Range{Min: 1, Max: 10},
		EdgeWeight:        resource.Range{Min: 1, Max: 10},
		ResourceWeight:    resource.Range{Min: 1, Max: 5},
	}
}

// Validate checks the options before any random draw is made.
func (o Options) Validate() error {
	if o.NumVertices < 1 {
		return fmt.Errorf("%w: vertex count %d must be at least 1", ErrInvalidOptions, o.NumVertices)
	}
	if o.NumResources < 0 {
		return fmt.Errorf("%w: resource count %d must not be negative", ErrInvalidOptions, o.NumResources)
	}
	if o.MaxEdgesPerVertex < minTargetDegree {
		return fmt.Errorf("%w: max edges per vertex %d must be at least %d", ErrInvalidOptions, o.MaxEdgesPerVertex, minTargetDegree)
	}
	ranges := []struct {
		name string
		r    resource.Range
	}{
		{"vertex weight", o.VertexWeight},
		{"edge weight", o.EdgeWeight},
		{"resource weight", o.ResourceWeight},
	}
	for _, nr := range ranges {
		if err := nr.r.Validate(); err != nil {
			return fmt.Errorf("%w: %s range: %w", ErrInvalidOptions, nr.name, err)
		}
	}
	return nil
}

// Generate assigns resource vectors and builds a connected graph over them.
func Generate(ctx context.Context, rng *rand.Rand, opts Options) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidOptions)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	vectors := resource.Assign(rng, opts.NumVertices, opts.NumResources, opts.VertexWeight, opts.ResourceWeight)
	g := New(vectors)
	logger.Debug("Resource vectors assigned.", "vertices", opts.NumVertices, "dims", opts.NumResources+1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.buildSpanningTree(rng, opts.EdgeWeight)
	logger.Debug("Spanning tree built.", "edges", g.treeEdges)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exhausted := g.augmentDegrees(rng, opts.MaxEdgesPerVertex, opts.EdgeWeight)
	logger.Debug("Degree augmentation finished.",
		"edges_added", g.augmentedEdges,
		"total_edges", g.NumEdges(),
		"vertices_short_of_target", exhausted,
	)

	return g, nil
}

// buildSpanningTree attaches each vertex of a random permutation to a random
// vertex earlier in that permutation.
func (g *Graph) buildSpanningTree(rng *rand.Rand, edgeWeight resource.Range) {
	order := rng.Perm(g.NumVertices())
	for i := 1; i < len(order); i++ {
		u := order[i]
		v := order[rng.IntN(i)]
		if added, _ := g.AddEdge(u, v, edgeWeight.Draw(rng)); added {
			g.treeEdges++
		}
	}
}

// augmentDegrees raises each vertex toward a random target degree. It returns
// the number of vertices whose candidate pool ran dry before the target.
func (g *Graph) augmentDegrees(rng *rand.Rand, maxDegree int, edgeWeight resource.Range) int {
	n := g.NumVertices()
	exhausted := 0
	for u := 0; u < n; u++ {
		target := minTargetDegree + rng.IntN(maxDegree-minTargetDegree+1)
		candidates := g.candidatesFor(u)

		for g.Degree(u) < target && len(candidates) > 0 {
			idx := rng.IntN(len(candidates))
			v := candidates[idx]
			candidates[idx] = candidates[len(candidates)-1]
			candidates = candidates[:len(candidates)-1]

			weight := edgeWeight.Draw(rng)
			if added, _ := g.AddEdge(u, v, weight); added {
				g.augmentedEdges++
			}
		}
		if g.Degree(u) < target {
			exhausted++
		}
	}
	return exhausted
}

// candidatesFor lists every vertex that is neither u nor already adjacent to u.
func (g *Graph) candidatesFor(u int) []int {
	adjacent := make(map[int]struct{}, len(g.adjacency[u]))
	for _, nb := range g.adjacency[u] {
		adjacent[nb.Vertex] = struct{}{}
	}
	candidates := make([]int, 0, g.NumVertices()-1-len(adjacent))
	for v := 0; v < g.NumVertices(); v++ {
		if v == u {
			continue
		}
		if _, ok := adjacent[v]; ok {
			continue
		}
		candidates = append(candidates, v)
	}
	return candidates
}
