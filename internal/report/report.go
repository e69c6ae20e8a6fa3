// Package report turns a generated graph and its capacity plan into the
// human-readable run summary, as plain text or YAML.
package report

import (
	"fmt"
	"io"

	"github.com/specialistvlad/partbench/internal/capacity"
	"github.com/specialistvlad/partbench/internal/graphgen"
	"github.com/specialistvlad/partbench/internal/resource"
	"gopkg.in/yaml.v3"
)

// ResourceLine summarizes one resource dimension.
type ResourceLine struct {
	Index       int      `yaml:"index"`
	Used        int      `yaml:"used"`
	Capacity    int      `yaml:"capacity"`
	TargetRate  *float64 `yaml:"target_rate,omitempty"`
	Utilization float64  `yaml:"utilization"`
	Satisfied   *bool    `yaml:"satisfied,omitempty"`
}

// Summary is everything reported at the end of a run.
type Summary struct {
	Mode          capacity.Mode  `yaml:"mode"`
	Vertices      int            `yaml:"vertices"`
	Edges         int            `yaml:"edges"`
	AverageDegree float64        `yaml:"average_degree"`
	Partitions    int            `yaml:"partitions"`
	Resources     []ResourceLine `yaml:"resources"`
	Violated      bool           `yaml:"violated"`
	Files         []string       `yaml:"files,omitempty"`
}

// Build computes the summary for g under plan.
func Build(g *graphgen.Graph, plan *capacity.Plan) *Summary {
	degreeSum := 0
	for u := 0; u < g.NumVertices(); u++ {
		degreeSum += g.Degree(u)
	}

	s := &Summary{
		Mode:          plan.Mode,
		Vertices:      g.NumVertices(),
		Edges:         degreeSum / 2,
		AverageDegree: g.AverageDegree(),
		Partitions:    plan.Table.Partitions(),
	}

	usage := resource.TotalUsage(g.Resources(), plan.Table.Dims())
	for r, used := range usage {
		line := ResourceLine{
			Index:       r,
			Used:        used,
			Capacity:    plan.Table.Sum(r),
			Utilization: Utilization(used, plan.Table.Sum(r)),
		}
		if r < len(plan.Rates) {
			rate := plan.Rates[r]
			line.TargetRate = &rate
		}
		if plan.Validation != nil && r < len(plan.Validation.Checks) {
			ok := plan.Validation.Checks[r].Satisfied
			line.Satisfied = &ok
			if !ok {
				s.Violated = true
			}
		}
		s.Resources = append(s.Resources, line)
	}
	return s
}

// Utilization returns used/capacity, or 0 when capacity is 0.
func Utilization(used, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(used) / float64(capacity)
}

// WriteText writes the summary in its human-readable form.
func (s *Summary) WriteText(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("\nGraph Summary:\n")
	ew.printf("- Vertices: %d\n", s.Vertices)
	ew.printf("- Edges: %d\n", s.Edges)
	ew.printf("- Average vertex degree: %.2f\n", s.AverageDegree)
	ew.printf("- Partitions: %d\n", s.Partitions)
	for _, line := range s.Resources {
		ew.printf("  o Resource %d:\n", line.Index)
		ew.printf("    - Total used: %d\n", line.Used)
		ew.printf("    - Total capacity: %d\n", line.Capacity)
		if line.TargetRate != nil {
			ew.printf("    - Target utilization rate: %g\n", *line.TargetRate)
		}
		ew.printf("    - Actual utilization: %.2f%%\n", line.Utilization*100)
	}

	if s.Mode == capacity.ModeValidate {
		ew.printf("\nValidation Summary:\n")
		for _, line := range s.Resources {
			op := "<="
			if line.Satisfied != nil && !*line.Satisfied {
				op = ">"
			}
			ew.printf("Resource %d: usage %d %s capacity %d\n", line.Index, line.Used, op, line.Capacity)
		}
	}

	if len(s.Files) > 0 {
		ew.printf("\n")
		for _, f := range s.Files {
			ew.printf("Saved: %s\n", f)
		}
	}
	if s.Violated {
		ew.printf("Warning: Resource constraints violated.\n")
	}
	return ew.err
}

// WriteYAML writes the summary as a YAML document.
func (s *Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return enc.Close()
}

// Write dispatches on format, which is "text" or "yaml".
func (s *Summary) Write(w io.Writer, format string) error {
	switch format {
	case "yaml":
		return s.WriteYAML(w)
	case "text", "":
		return s.WriteText(w)
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}

// errWriter remembers the first write error so the printing code stays flat.
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
