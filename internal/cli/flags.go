package cli

import (
	"flag"

	"github.com/specialistvlad/partbench/internal/app"
	"github.com/specialistvlad/partbench/internal/resource"
)

// flagValues mirrors app.Config for flag binding. Values are copied into the
// final configuration only for flags that were set explicitly, so a profile
// is never overridden by a flag default.
type flagValues struct {
	vertices   int
	resources  int
	partitions int
	maxDegree  int

	vertexWeight   resource.Range
	edgeWeight     resource.Range
	resourceWeight resource.Range

	ratios     floatList
	utilRates  floatList
	capacities intList

	output        string
	render        bool
	seed          uint64
	summaryFormat string
	profile       string

	logFormat string
	logLevel  string
}

func (c *flagValues) bind(fs *flag.FlagSet, defaults app.Config) {
	c.vertexWeight = defaults.VertexWeight
	c.edgeWeight = defaults.EdgeWeight
	c.resourceWeight = defaults.ResourceWeight

	fs.IntVar(&c.vertices, "vertices", defaults.NumVertices, "Number of vertices in the generated graph.")
	fs.IntVar(&c.resources, "resources", defaults.NumResources, "Number of auxiliary resource dimensions (vertex weight is always resource 0).")
	fs.IntVar(&c.partitions, "partitions", defaults.Partitions, "Number of partitions (k).")
	fs.IntVar(&c.maxDegree, "max-degree", defaults.MaxEdgesPerVertex, "Upper bound of the random target degree per vertex.")
	fs.Var(rangeValue{&c.vertexWeight}, "vertex-weight", "Vertex weight range as 'min,max'.")
	fs.Var(rangeValue{&c.edgeWeight}, "edge-weight", "Edge weight range as 'min,max'.")
	fs.Var(rangeValue{&c.resourceWeight}, "resource-weight", "Auxiliary resource range as 'min,max'.")
	fs.Var(&c.ratios, "ratios", "Share of total capacity per partition, e.g. '0.5,0.3,0.2'. Must sum to 1.")
	fs.Var(&c.utilRates, "util-rates", "Target utilization per resource including vertex weight, e.g. '0.8,0.7'.")
	fs.Var(&c.capacities, "capacities", "Explicit capacities, resource by resource, (resources+1)*partitions values. Selects validate mode.")
	fs.StringVar(&c.output, "output", defaults.OutputPath, "Graph file path; the partition file and image paths are derived from it.")
	fs.BoolVar(&c.render, "render", defaults.Render, "Write an SVG rendering when the graph has fewer than 20 vertices.")
	fs.Uint64Var(&c.seed, "seed", defaults.Seed, "Random seed. 0 picks one from the clock.")
	fs.StringVar(&c.summaryFormat, "summary-format", defaults.SummaryFormat, "Summary output format. Options: 'text' or 'yaml'.")
	fs.StringVar(&c.profile, "profile", "", "Path to an .hcl profile or a directory of profiles.")
	fs.StringVar(&c.logFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	fs.StringVar(&c.logLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
}

// overrideMode drops the capacity mode a profile selected when the command
// line selects the other one. Both modes given as flags still conflict.
func overrideMode(explicit map[string]bool, cfg *app.Config) {
	if explicit["capacities"] {
		cfg.Ratios = nil
		cfg.UtilRates = nil
	}
	if explicit["ratios"] || explicit["util-rates"] {
		cfg.Capacities = nil
	}
}

// apply copies the value of the named flag into cfg.
func (c *flagValues) apply(name string, cfg *app.Config) {
	switch name {
	case "vertices":
		cfg.NumVertices = c.vertices
	case "resources":
		cfg.NumResources = c.resources
	case "partitions":
		cfg.Partitions = c.partitions
	case "max-degree":
		cfg.MaxEdgesPerVertex = c.maxDegree
	case "vertex-weight":
		cfg.VertexWeight = c.vertexWeight
	case "edge-weight":
		cfg.EdgeWeight = c.edgeWeight
	case "resource-weight":
		cfg.ResourceWeight = c.resourceWeight
	case "ratios":
		cfg.Ratios = c.ratios.values
	case "util-rates":
		cfg.UtilRates = c.utilRates.values
	case "capacities":
		cfg.Capacities = c.capacities.values
	case "output":
		cfg.OutputPath = c.output
	case "render":
		cfg.Render = c.render
	case "seed":
		cfg.Seed = c.seed
	case "summary-format":
		cfg.SummaryFormat = c.summaryFormat
	case "log-format":
		cfg.LogFormat = c.logFormat
	case "log-level":
		cfg.LogLevel = c.logLevel
	}
}
