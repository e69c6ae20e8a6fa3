package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/partbench/internal/capacity"
	"github.com/specialistvlad/partbench/internal/ctxlog"
	"github.com/specialistvlad/partbench/internal/graphgen"
	"github.com/specialistvlad/partbench/internal/graphio"
	"github.com/specialistvlad/partbench/internal/render"
	"github.com/specialistvlad/partbench/internal/report"
	"github.com/specialistvlad/partbench/internal/resource"
)

// Result is everything a completed run produced.
type Result struct {
	Graph   *graphgen.Graph
	Plan    *capacity.Plan
	Summary *report.Summary
	Files   []string
}

// Run executes the generation pipeline: resource assignment, spanning tree,
// degree augmentation, capacity planning, then the graph file, the partition
// file, the optional image and finally the summary. Each step runs to
// completion before the next starts.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config
	a.logger.Debug("App.Run method started.")

	planner, err := cfg.Planner()
	if err != nil {
		return nil, err
	}
	if err := planner.CheckConfig(cfg.Dims()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	a.logger.Info("Generating graph.",
		"vertices", cfg.NumVertices,
		"resources", cfg.NumResources,
		"partitions", cfg.Partitions,
		"mode", planner.Mode(),
		"seed", a.seed,
	)
	g, err := graphgen.Generate(ctx, a.rng, cfg.GeneratorOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to generate graph: %w", err)
	}
	a.logger.Info("Graph generated.", "edges", g.NumEdges(), "average_degree", g.AverageDegree())

	usage := resource.TotalUsage(g.Resources(), cfg.Dims())
	plan, err := planner.Plan(usage)
	if err != nil {
		return nil, fmt.Errorf("failed to plan capacities: %w", err)
	}
	if plan.Validation != nil {
		for _, c := range plan.Validation.Violations() {
			a.logger.Warn("Resource usage exceeds capacity.", "resource", c.Resource, "usage", c.Usage, "capacity", c.Capacity)
		}
	}

	files, err := a.writeArtifacts(ctx, g, plan.Table)
	if err != nil {
		return nil, err
	}

	summary := report.Build(g, plan)
	summary.Files = files
	if err := summary.Write(a.outW, cfg.SummaryFormat); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return &Result{Graph: g, Plan: plan, Summary: summary, Files: files}, nil
}

// writeArtifacts writes the graph file, then the partition file, then the
// image when the graph is small enough. Each file is closed before the next
// one is opened.
func (a *App) writeArtifacts(ctx context.Context, g *graphgen.Graph, table capacity.Table) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	graphPath := a.config.OutputPath
	partPath := graphio.PartitionPath(graphPath)

	if err := graphio.SaveGraph(graphPath, g); err != nil {
		return nil, err
	}
	logger.Info("Graph file saved.", "path", graphPath)

	if err := graphio.SavePartitions(partPath, table); err != nil {
		return nil, err
	}
	logger.Info("Partition file saved.", "path", partPath)
	files := []string{graphPath, partPath}

	if !a.config.Render {
		return files, nil
	}
	if g.NumVertices() > render.MaxVertices {
		logger.Info("Graph is too large to render, skipping visualization.", "vertices", g.NumVertices(), "max", render.MaxVertices)
		return files, nil
	}

	imgPath := graphio.ImagePath(graphPath)
	err := graphio.SaveFile(imgPath, func(w io.Writer) error { return render.WriteSVG(w, g) })
	if err != nil {
		return nil, err
	}
	logger.Info("Graph image saved.", "path", imgPath)
	return append(files, imgPath), nil
}
