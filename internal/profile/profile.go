// Package profile loads benchmark profiles written in HCL. A profile captures
// the generator and capacity settings of a benchmark so that a suite of
// inputs can be regenerated without long command lines:
//
//	graph {
//	  vertices              = 12
//	  resources             = 2
//	  max_edges_per_vertex  = 6
//	  vertex_weight_range   = [1, 10]
//	}
//
//	partitions {
//	  count      = 3
//	  ratios     = [0.5, 0.3, 0.2]
//	  util_rates = [0.8, 0.7, 0.6]
//	}
//
//	output {
//	  path = "bench/graph.txt"
//	  seed = 7
//	}
//
// Every attribute is optional. When a directory is given, all .hcl files in it
// are loaded in lexical order and later files override earlier ones.
package profile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/partbench/internal/app"
	"github.com/specialistvlad/partbench/internal/ctxlog"
	"github.com/specialistvlad/partbench/internal/fsutil"
	"github.com/specialistvlad/partbench/internal/resource"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Graph is the `graph` block.
type Graph struct {
	Vertices            *int  `hcl:"vertices,optional"`
	Resources           *int  `hcl:"resources,optional"`
	MaxEdgesPerVertex   *int  `hcl:"max_edges_per_vertex,optional"`
	VertexWeightRange   []int `hcl:"vertex_weight_range,optional"`
	EdgeWeightRange     []int `hcl:"edge_weight_range,optional"`
	ResourceWeightRange []int `hcl:"resource_weight_range,optional"`
}

// Partitions is the `partitions` block. Capacities is a list with one list of
// per-partition capacities per resource dimension.
type Partitions struct {
	Count      *int           `hcl:"count,optional"`
	Ratios     []float64      `hcl:"ratios,optional"`
	UtilRates  []float64      `hcl:"util_rates,optional"`
	Capacities hcl.Expression `hcl:"capacities,optional"`
}

// Output is the `output` block.
type Output struct {
	Path          *string `hcl:"path,optional"`
	Render        *bool   `hcl:"render,optional"`
	Seed          *int64  `hcl:"seed,optional"`
	SummaryFormat *string `hcl:"summary_format,optional"`
}

type fileRoot struct {
	Graph      *Graph      `hcl:"graph,block"`
	Partitions *Partitions `hcl:"partitions,block"`
	Output     *Output     `hcl:"output,block"`
}

// Profile is the merged content of one or more profile files.
type Profile struct {
	Graph      Graph
	Count      *int
	Ratios     []float64
	UtilRates  []float64
	Capacities [][]int
	Output     Output
	Files      []string
}

// Load reads the profile at path, which may be a single .hcl file or a
// directory of them.
func Load(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl profile found at %s", path)
	}
	logger.Debug("Discovered profile files.", "count", len(files))

	parser := hclparse.NewParser()
	p := &Profile{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		if err := p.merge(&root); err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		p.Files = append(p.Files, file)
	}

	logger.Debug("Profile loading complete.", "files", p.Files)
	return p, nil
}

// merge copies every attribute set in root over p.
func (p *Profile) merge(root *fileRoot) error {
	if g := root.Graph; g != nil {
		overrideInt(&p.Graph.Vertices, g.Vertices)
		overrideInt(&p.Graph.Resources, g.Resources)
		overrideInt(&p.Graph.MaxEdgesPerVertex, g.MaxEdgesPerVertex)
		if g.VertexWeightRange != nil {
			p.Graph.VertexWeightRange = g.VertexWeightRange
		}
		if g.EdgeWeightRange != nil {
			p.Graph.EdgeWeightRange = g.EdgeWeightRange
		}
		if g.ResourceWeightRange != nil {
			p.Graph.ResourceWeightRange = g.ResourceWeightRange
		}
	}
	if parts := root.Partitions; parts != nil {
		overrideInt(&p.Count, parts.Count)
		if parts.Ratios != nil {
			p.Ratios = parts.Ratios
		}
		if parts.UtilRates != nil {
			p.UtilRates = parts.UtilRates
		}
		if isExprDefined(parts.Capacities) {
			caps, err := decodeCapacities(parts.Capacities)
			if err != nil {
				return err
			}
			if caps != nil {
				p.Capacities = caps
			}
		}
	}
	if out := root.Output; out != nil {
		if out.Path != nil {
			p.Output.Path = out.Path
		}
		if out.Render != nil {
			p.Output.Render = out.Render
		}
		if out.Seed != nil {
			p.Output.Seed = out.Seed
		}
		if out.SummaryFormat != nil {
			p.Output.SummaryFormat = out.SummaryFormat
		}
	}
	return nil
}

func overrideInt(dst **int, src *int) {
	if src != nil {
		*dst = src
	}
}

// isExprDefined reports whether an optional expression was present in the
// source. gohcl fills omitted optional expressions with zero-width
// placeholders, so a nil check is not enough.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	return rng.End.Byte > rng.Start.Byte
}

// capacitiesType is list(list(number)).
var capacitiesType = cty.List(cty.List(cty.Number))

func decodeCapacities(expr hcl.Expression) ([][]int, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid capacities: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	converted, err := convert.Convert(val, capacitiesType)
	if err != nil {
		return nil, fmt.Errorf("capacities must be a list of lists of numbers: %w", err)
	}
	var caps [][]int
	if err := gocty.FromCtyValue(converted, &caps); err != nil {
		return nil, fmt.Errorf("capacities must be whole numbers: %w", err)
	}
	return caps, nil
}

// ApplyTo copies the profile's settings into cfg.
func (p *Profile) ApplyTo(cfg *app.Config) error {
	if p.Graph.Vertices != nil {
		cfg.NumVertices = *p.Graph.Vertices
	}
	if p.Graph.Resources != nil {
		cfg.NumResources = *p.Graph.Resources
	}
	if p.Graph.MaxEdgesPerVertex != nil {
		cfg.MaxEdgesPerVertex = *p.Graph.MaxEdgesPerVertex
	}
	ranges := []struct {
		name string
		src  []int
		dst  *resource.Range
	}{
		{"vertex_weight_range", p.Graph.VertexWeightRange, &cfg.VertexWeight},
		{"edge_weight_range", p.Graph.EdgeWeightRange, &cfg.EdgeWeight},
		{"resource_weight_range", p.Graph.ResourceWeightRange, &cfg.ResourceWeight},
	}
	for _, r := range ranges {
		if r.src == nil {
			continue
		}
		if len(r.src) != 2 {
			return fmt.Errorf("%w: %s needs exactly 2 values, got %d", app.ErrConfig, r.name, len(r.src))
		}
		*r.dst = resource.Range{Min: r.src[0], Max: r.src[1]}
	}

	if p.Count != nil {
		cfg.Partitions = *p.Count
	}
	if p.Ratios != nil {
		cfg.Ratios = p.Ratios
	}
	if p.UtilRates != nil {
		cfg.UtilRates = p.UtilRates
	}
	if p.Capacities != nil {
		width := 0
		if len(p.Capacities) > 0 {
			width = len(p.Capacities[0])
		}
		// Non-nil even when empty: a present capacities attribute selects validate mode.
		flat := make([]int, 0, len(p.Capacities)*width)
		for r, row := range p.Capacities {
			if len(row) != width {
				return fmt.Errorf("%w: capacities row %d has %d values, want %d", app.ErrConfig, r, len(row), width)
			}
			flat = append(flat, row...)
		}
		cfg.Capacities = flat
	}

	if p.Output.Path != nil {
		cfg.OutputPath = *p.Output.Path
	}
	if p.Output.Render != nil {
		cfg.Render = *p.Output.Render
	}
	if p.Output.Seed != nil {
		if *p.Output.Seed < 0 {
			return fmt.Errorf("%w: seed must not be negative", app.ErrConfig)
		}
		cfg.Seed = uint64(*p.Output.Seed)
	}
	if p.Output.SummaryFormat != nil {
		cfg.SummaryFormat = *p.Output.SummaryFormat
	}
	return nil
}
