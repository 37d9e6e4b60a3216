// Package report runs the optimizer on instance files and prints one
// fixed-width line per non-empty instance.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/vbp-optim/internal/instance"
	"github.com/eugenenazirov/vbp-optim/internal/solver"
)

const (
	nameWidth  = 50
	countWidth = 10
	indentUnit = "   "
)

// Flusher is implemented by buffered writers such as *bufio.Writer.
type Flusher interface {
	Flush() error
}

// Reporter parses instances, solves them and writes report lines to out.
type Reporter struct {
	optimizer solver.Optimizer
	opts      solver.Options
	out       io.Writer
	logger    *zap.Logger
}

// New creates a Reporter. opts is forwarded unchanged to every Optimize call.
func New(optimizer solver.Optimizer, opts solver.Options, out io.Writer, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{
		optimizer: optimizer,
		opts:      opts,
		out:       out,
		logger:    logger,
	}
}

// File optimizes the instance at path and prints its bin count.
// Empty instances print nothing.
func (r *Reporter) File(path string, depth int) error {
	inst, err := instance.ParseFile(path)
	if err != nil {
		return err
	}
	if inst.Empty() {
		r.logger.Debug("skipping empty instance", zap.String("file", path))
		return nil
	}

	res, err := r.optimizer.Optimize(inst.Items, inst.Bin, r.opts)
	if err != nil {
		return fmt.Errorf("optimize %s: %w", path, err)
	}
	r.logger.Debug("instance optimized",
		zap.String("file", path),
		zap.Int("items", len(inst.Items)),
		zap.Int("dimensions", inst.Bin.Dimensions()),
		zap.Int("bins", res.NumBins()),
	)

	return r.emit(FormatLine(path, depth, res.NumBins()))
}

// Directory prints the tree line of a visited directory.
func (r *Reporter) Directory(path string, depth int) error {
	return r.emit(FormatDirectory(path, depth))
}

func (r *Reporter) emit(line string) error {
	if _, err := io.WriteString(r.out, line); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if f, ok := r.out.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush report: %w", err)
		}
	}
	return nil
}

// FormatLine renders a report line: the (indented) base name left-justified
// in 50 columns followed by the bin count left-justified in 10.
func FormatLine(path string, depth int, bins int) string {
	name := baseName(path)
	if depth > 0 {
		name = strings.Repeat(indentUnit, depth) + "| " + name
	}
	return fmt.Sprintf("%-*s%-*s\n", nameWidth, name, countWidth, strconv.Itoa(bins))
}

// FormatDirectory renders the tree line of a directory.
func FormatDirectory(path string, depth int) string {
	return strings.Repeat(indentUnit, depth) + "|- " + baseName(path) + "\n"
}

func baseName(path string) string {
	return filepath.Base(filepath.Clean(path))
}
