package graphgen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/partbench/internal/resource"
)

// ErrInvalidEdge is returned by AddEdge for self loops and unknown vertices.
var ErrInvalidEdge = errors.New("invalid edge")

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	Vertex int
	Weight int
}

// Edge is an undirected edge normalized so that U < V.
type Edge struct {
	U      int
	V      int
	Weight int
}

// pair is the dedup key for an undirected edge, always stored as (min, max).
type pair struct {
	lo, hi int
}

func newPair(u, v int) pair {
	if u > v {
		u, v = v, u
	}
	return pair{lo: u, hi: v}
}

// Graph is a vertex-weighted, edge-weighted undirected graph with symmetric
// adjacency lists. It is not safe for concurrent mutation.
type Graph struct {
	resources []resource.Vector
	adjacency [][]Neighbor
	edges     map[pair]int

	treeEdges      int
	augmentedEdges int
}

// New returns an edgeless graph over the given resource vectors. Vertex i owns
// vectors[i].
func New(vectors []resource.Vector) *Graph {
	return &Graph{
		resources: vectors,
		adjacency: make([][]Neighbor, len(vectors)),
		edges:     make(map[pair]int),
	}
}

// AddEdge connects u and v with the given weight. It returns false without
// modifying the graph if the pair is already connected.
func (g *Graph) AddEdge(u, v, weight int) (bool, error) {
	n := len(g.adjacency)
	if u < 0 || u >= n || v < 0 || v >= n {
		return false, fmt.Errorf("%w: (%d, %d) outside [0, %d)", ErrInvalidEdge, u, v, n)
	}
	if u == v {
		return false, fmt.Errorf("%w: self loop on vertex %d", ErrInvalidEdge, u)
	}

	key := newPair(u, v)
	if _, exists := g.edges[key]; exists {
		return false, nil
	}
	g.edges[key] = weight
	g.adjacency[u] = append(g.adjacency[u], Neighbor{Vertex: v, Weight: weight})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{Vertex: u, Weight: weight})
	return true, nil
}

// NumVertices returns the vertex count.
func (g *Graph) NumVertices() int { return len(g.adjacency) }

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// TreeEdges returns how many edges the spanning-tree phase produced.
func (g *Graph) TreeEdges() int { return g.treeEdges }

// AugmentedEdges returns how many edges the degree-augmentation phase produced.
func (g *Graph) AugmentedEdges() int { return g.augmentedEdges }

// Resources returns the per-vertex resource vectors, indexed by vertex.
func (g *Graph) Resources() []resource.Vector { return g.resources }

// Dims returns the number of resource dimensions, or 0 for an empty graph.
func (g *Graph) Dims() int {
	if len(g.resources) == 0 {
		return 0
	}
	return len(g.resources[0])
}

// Neighbors returns u's adjacency list in insertion order.
func (g *Graph) Neighbors(u int) []Neighbor { return g.adjacency[u] }

// Degree returns the number of neighbours of u.
func (g *Graph) Degree(u int) int { return len(g.adjacency[u]) }

// HasEdge reports whether u and v are connected.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edges[newPair(u, v)]
	return ok
}

// EdgeWeight returns the weight of the edge between u and v.
func (g *Graph) EdgeWeight(u, v int) (int, bool) {
	w, ok := g.edges[newPair(u, v)]
	return w, ok
}

// AverageDegree returns sum(degree) / N, or 0 for an empty graph.
func (g *Graph) AverageDegree() float64 {
	if len(g.adjacency) == 0 {
		return 0
	}
	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}
	return float64(total) / float64(len(g.adjacency))
}

// Edges returns every edge once, sorted by (U, V).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for key, w := range g.edges {
		edges = append(edges, Edge{U: key.lo, V: key.hi, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// IsConnected reports whether every vertex is reachable from vertex 0.
func (g *Graph) IsConnected() bool {
	n := len(g.adjacency)
	if n == 0 {
		return true
	}
	visited := make([]bool, n)
	visited[0] = true
	queue := []int{0}
	reached := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nb := range g.adjacency[u] {
			if !visited[nb.Vertex] {
				visited[nb.Vertex] = true
				reached++
				queue = append(queue, nb.Vertex)
			}
		}
	}
	return reached == n
}
