// Package graphfile reads and writes the benchmark graph text format:
// one metadata comment line, then one directed edge per line as
// "from to weight" with zero-based node ids. Lines starting with # are
// comments. Files may optionally be wrapped in a framed snappy stream.
package graphfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"

	"github.com/dd0wney/cluso-graphgen/pkg/generator"
)

// Header is the generation metadata recorded in the leading comment line.
type Header struct {
	Nodes     int
	Edges     int
	MaxWeight int64
	Seed      int64
}

func (h Header) comment() string {
	return fmt.Sprintf("# Random graph generated with nodes=%d, edges=%d, max_weight=%d, seed=%d\n",
		h.Nodes, h.Edges, h.MaxWeight, h.Seed)
}

// Writer emits the graph file format to an underlying stream.
type Writer struct {
	buf     *bufio.Writer
	closers []io.Closer
}

// NewWriter wraps w and writes the header comment immediately. With
// compress set, everything goes through a framed snappy stream. Close
// must be called to flush.
func NewWriter(w io.Writer, h Header, compress bool) (*Writer, error) {
	var closers []io.Closer
	if compress {
		sw := snappy.NewBufferedWriter(w)
		closers = append(closers, sw)
		w = sw
	}
	gw := &Writer{
		buf:     bufio.NewWriter(w),
		closers: closers,
	}
	if _, err := gw.buf.WriteString(h.comment()); err != nil {
		return nil, fmt.Errorf("failed to write graph header: %w", err)
	}
	return gw, nil
}

// Create opens path for writing, creating parent directories as needed,
// and returns a Writer whose Close also closes the file.
func Create(path string, h Header, compress bool) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	gw, err := NewWriter(file, h, compress)
	if err != nil {
		file.Close()
		return nil, err
	}
	gw.closers = append(gw.closers, file)
	return gw, nil
}

// WriteEdge appends one edge line.
func (w *Writer) WriteEdge(e generator.Edge) error {
	if _, err := fmt.Fprintf(w.buf, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
		return fmt.Errorf("failed to write edge: %w", err)
	}
	return nil
}

// Close flushes buffered output and closes the snappy stream and file,
// innermost first.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush graph file: %w", err)
	}
	for _, c := range w.closers {
		if err := c.Close(); err != nil {
			return fmt.Errorf("failed to close graph file: %w", err)
		}
	}
	return nil
}

// WriteFile writes a complete graph file at path in one call.
func WriteFile(path string, h Header, edges []generator.Edge, compress bool) error {
	w, err := Create(path, h, compress)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if err := w.WriteEdge(e); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
