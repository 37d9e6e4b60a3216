package solver

import "github.com/eugenenazirov/vbp-optim/internal/instance"

// Options carries the heuristic controls forwarded unchanged from the command line.
type Options struct {
	// UseDotProduct selects the bin-centric dot-product heuristic instead of
	// first-fit decreasing.
	UseDotProduct bool
	// Seed, when set, shuffles items before ordering so ties break
	// reproducibly. Nil keeps input order for ties.
	Seed *int64
}

// Bin is one opened bin: the indexes of the items it holds and its load.
type Bin struct {
	Items []int
	Load  []int
}

// Result summarises a packing. Callers that only need the bin count use NumBins.
type Result struct {
	Bins []Bin
}

// NumBins returns the number of bins used.
func (r Result) NumBins() int {
	return len(r.Bins)
}

// Optimizer describes the behaviour required from a vector bin packer.
type Optimizer interface {
	Optimize(items []instance.Item, bin instance.BinTemplate, opts Options) (Result, error)
}
