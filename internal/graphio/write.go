package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/partbench/internal/capacity"
	"github.com/specialistvlad/partbench/internal/graphgen"
)

// WriteGraph writes g in graph-file format.
func WriteGraph(w io.Writer, g *graphgen.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NumVertices(), g.NumEdges()); err != nil {
		return err
	}
	fields := make([]string, 0, 16)
	for u, vec := range g.Resources() {
		fields = fields[:0]
		for _, v := range vec {
			fields = append(fields, strconv.Itoa(v))
		}
		for _, nb := range g.Neighbors(u) {
			fields = append(fields, strconv.Itoa(nb.Vertex+1), strconv.Itoa(nb.Weight))
		}
		if _, err := bw.WriteString(strings.Join(fields, " ") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePartitions writes t in partition-file format.
func WritePartitions(w io.Writer, t capacity.Table) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n%d\n", t.Partitions(), t.Dims()); err != nil {
		return err
	}
	for _, row := range t {
		fields := make([]string, len(row))
		for p, c := range row {
			fields[p] = strconv.Itoa(c)
		}
		if _, err := bw.WriteString(strings.Join(fields, " ") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveGraph creates path and writes g to it. The file is closed before returning.
func SaveGraph(path string, g *graphgen.Graph) error {
	return SaveFile(path, func(w io.Writer) error { return WriteGraph(w, g) })
}

// SavePartitions creates path and writes t to it. The file is closed before returning.
func SavePartitions(path string, t capacity.Table) error {
	return SaveFile(path, func(w io.Writer) error { return WritePartitions(w, t) })
}

// SaveFile creates path, hands it to write and closes it, reporting the first error.
func SaveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// PartitionPath derives the partition file path from the graph file path by
// replacing ".txt" with "_part.txt", or appending "_part.txt" if there is none.
func PartitionPath(graphPath string) string {
	return withSuffix(graphPath, "_part.txt")
}

// ImagePath derives the rendered image path from the graph file path.
func ImagePath(graphPath string) string {
	return withSuffix(graphPath, ".svg")
}

func withSuffix(graphPath, suffix string) string {
	if strings.Contains(graphPath, ".txt") {
		return strings.ReplaceAll(graphPath, ".txt", suffix)
	}
	return graphPath + suffix
}
