package render

import (
	"bytes"
	"context"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/specialistvlad/partbench/internal/graphgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallGraph(t *testing.T, n int) *graphgen.Graph {
	t.Helper()
	opts := graphgen.DefaultOptions()
	opts.NumVertices = n
	g, err := graphgen.Generate(context.Background(), rand.New(rand.NewPCG(3, 3)), opts)
	require.NoError(t, err)
	return g
}

func TestLayout_StableAndInsideUnitSquare(t *testing.T) {
	g := smallGraph(t, 12)
	a := Layout(g)
	b := Layout(g)
	assert.Equal(t, a, b)

	for _, p := range a {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 1.0)
	}
}

func TestWriteSVG(t *testing.T) {
	g := smallGraph(t, 8)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, g))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 8, strings.Count(out, "<circle"))
	assert.Equal(t, g.NumEdges(), strings.Count(out, "<line"))
}

func TestWriteSVG_SingleVertex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, smallGraph(t, 1)))
	assert.Equal(t, 1, strings.Count(buf.String(), "<circle"))
}
