package solver

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/eugenenazirov/vbp-optim/internal/instance"
)

type heuristicSolver struct{}

// New creates an Optimizer running first-fit decreasing or, on request,
// the dot-product heuristic.
func New() Optimizer {
	return &heuristicSolver{}
}

func (s *heuristicSolver) Optimize(items []instance.Item, bin instance.BinTemplate, opts Options) (Result, error) {
	if err := validate(items, bin); err != nil {
		return Result{}, err
	}
	if len(items) == 0 {
		return Result{}, nil
	}

	sizes := normalizedSizes(items, bin)
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	if opts.Seed != nil {
		rng := rand.New(rand.NewSource(*opts.Seed))
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case sizes[a] > sizes[b]:
			return -1
		case sizes[a] < sizes[b]:
			return 1
		}
		return 0
	})

	if opts.UseDotProduct {
		return dotProduct(items, bin, order), nil
	}
	return firstFit(items, bin, order), nil
}

func validate(items []instance.Item, bin instance.BinTemplate) error {
	for i, item := range items {
		if len(item) != len(bin) {
			return fmt.Errorf("item %d has %d dimensions, bin has %d: %w", i, len(item), len(bin), ErrInvalidBin)
		}
		for k, w := range item {
			if w > bin[k] {
				return fmt.Errorf("item %d needs %d in dimension %d, capacity is %d: %w", i, w, k, bin[k], ErrItemTooLarge)
			}
		}
	}
	return nil
}

// firstFit places each item, largest first, into the first open bin with room.
func firstFit(items []instance.Item, bin instance.BinTemplate, order []int) Result {
	var bins []Bin
	for _, idx := range order {
		placed := false
		for b := range bins {
			if fits(items[idx], bins[b].Load, bin) {
				bins[b].add(idx, items[idx])
				placed = true
				break
			}
		}
		if !placed {
			bins = append(bins, newBin(len(bin)))
			bins[len(bins)-1].add(idx, items[idx])
		}
	}
	return Result{Bins: bins}
}

// dotProduct fills one bin at a time, always taking the fitting item whose
// normalized requirement has the largest dot product with the bin's
// normalized residual capacity.
func dotProduct(items []instance.Item, bin instance.BinTemplate, order []int) Result {
	remaining := slices.Clone(order)
	var bins []Bin
	for len(remaining) > 0 {
		current := newBin(len(bin))
		for {
			best, bestScore := -1, -1.0
			for pos, idx := range remaining {
				if !fits(items[idx], current.Load, bin) {
					continue
				}
				if score := alignment(items[idx], current.Load, bin); score > bestScore {
					best, bestScore = pos, score
				}
			}
			if best < 0 {
				break
			}
			current.add(remaining[best], items[remaining[best]])
			remaining = slices.Delete(remaining, best, best+1)
		}
		bins = append(bins, current)
	}
	return Result{Bins: bins}
}

func newBin(dim int) Bin {
	return Bin{Load: make([]int, dim)}
}

func (b *Bin) add(idx int, item instance.Item) {
	b.Items = append(b.Items, idx)
	for k, w := range item {
		b.Load[k] += w
	}
}

func fits(item instance.Item, load []int, bin instance.BinTemplate) bool {
	for k, w := range item {
		if load[k]+w > bin[k] {
			return false
		}
	}
	return true
}

func alignment(item instance.Item, load []int, bin instance.BinTemplate) float64 {
	var score float64
	for k, w := range item {
		if bin[k] == 0 {
			continue
		}
		c := float64(bin[k])
		score += (float64(w) / c) * (float64(bin[k]-load[k]) / c)
	}
	return score
}

// normalizedSizes sums each item's requirements relative to the bin capacity.
func normalizedSizes(items []instance.Item, bin instance.BinTemplate) []float64 {
	sizes := make([]float64, len(items))
	for i, item := range items {
		for k, w := range item {
			if bin[k] > 0 {
				sizes[i] += float64(w) / float64(bin[k])
			}
		}
	}
	return sizes
}
