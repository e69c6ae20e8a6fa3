// Package render draws small benchmark graphs as SVG images for a quick
// visual check. It is purely cosmetic: the layout uses its own fixed seed and
// never touches the generator's random source.
package render

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/specialistvlad/partbench/internal/graphgen"
)

// MaxVertices is the largest graph worth rendering; bigger ones are skipped.
const MaxVertices = 19

const (
	layoutSeed  = 42
	iterations  = 200
	canvasSize  = 800.0
	margin      = 50.0
	nodeRadius  = 16.0
	initialTemp = 0.1
)

// Point is a vertex position.
type Point struct{ X, Y float64 }

// Layout places vertices with a Fruchterman-Reingold spring embedding in the
// unit square. The result only depends on the graph.
func Layout(g *graphgen.Graph) []Point {
	n := g.NumVertices()
	rng := rand.New(rand.NewPCG(layoutSeed, layoutSeed))
	pos := make([]Point, n)
	for i := range pos {
		pos[i] = Point{rng.Float64(), rng.Float64()}
	}
	if n < 2 {
		return pos
	}

	k := math.Sqrt(1.0 / float64(n))
	temp := initialTemp
	disp := make([]Point, n)
	for it := 0; it < iterations; it++ {
		for i := range disp {
			disp[i] = Point{}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := pos[i].X-pos[j].X, pos[i].Y-pos[j].Y
				d := math.Max(math.Hypot(dx, dy), 1e-6)
				f := k * k / d
				disp[i].X += dx / d * f
				disp[i].Y += dy / d * f
				disp[j].X -= dx / d * f
				disp[j].Y -= dy / d * f
			}
		}
		for _, e := range g.Edges() {
			dx, dy := pos[e.U].X-pos[e.V].X, pos[e.U].Y-pos[e.V].Y
			d := math.Max(math.Hypot(dx, dy), 1e-6)
			f := d * d / k
			disp[e.U].X -= dx / d * f
			disp[e.U].Y -= dy / d * f
			disp[e.V].X += dx / d * f
			disp[e.V].Y += dy / d * f
		}
		for i := range pos {
			d := math.Max(math.Hypot(disp[i].X, disp[i].Y), 1e-6)
			step := math.Min(d, temp)
			pos[i].X += disp[i].X / d * step
			pos[i].Y += disp[i].Y / d * step
		}
		temp -= initialTemp / iterations
	}
	return normalize(pos)
}

// normalize rescales positions into the unit square.
func normalize(pos []Point) []Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	for i, p := range pos {
		x, y := 0.5, 0.5
		if spanX > 0 {
			x = (p.X - minX) / spanX
		}
		if spanY > 0 {
			y = (p.Y - minY) / spanY
		}
		pos[i] = Point{x, y}
	}
	return pos
}

// WriteSVG draws g with vertex labels and edge weights.
func WriteSVG(w io.Writer, g *graphgen.Graph) error {
	pos := Layout(g)
	scale := func(p Point) (float64, float64) {
		return margin + p.X*(canvasSize-2*margin), margin + p.Y*(canvasSize-2*margin)
	}

	ew := &errWriter{w: w}
	ew.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		canvasSize, canvasSize, canvasSize, canvasSize)
	ew.printf(`<rect width="100%%" height="100%%" fill="white"/>` + "\n")
	ew.printf(`<text x="%.0f" y="24" font-family="sans-serif" font-size="16" text-anchor="middle">Graph Visualization</text>`+"\n", canvasSize/2)

	for _, e := range g.Edges() {
		x1, y1 := scale(pos[e.U])
		x2, y2 := scale(pos[e.V])
		ew.printf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#555" stroke-width="1.5"/>`+"\n", x1, y1, x2, y2)
		ew.printf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="10" fill="#b00">%d</text>`+"\n",
			(x1+x2)/2, (y1+y2)/2, e.Weight)
	}
	for u := range pos {
		x, y := scale(pos[u])
		ew.printf(`<circle cx="%.1f" cy="%.1f" r="%.0f" fill="skyblue" stroke="#333"/>`+"\n", x, y, nodeRadius)
		ew.printf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" text-anchor="middle" dominant-baseline="central">%d</text>`+"\n", x, y, u)
	}
	ew.printf("</svg>\n")
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
