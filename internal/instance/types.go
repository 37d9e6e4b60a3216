package instance

// Item is the resource requirement vector of a single unit of demand.
type Item []int

// BinTemplate holds the capacity of an empty bin in every dimension.
type BinTemplate []int

// Dimensions returns the number of resource axes of the bin.
func (b BinTemplate) Dimensions() int {
	return len(b)
}

// Instance is one parsed problem: the expanded items and the bin they go into.
type Instance struct {
	Items []Item
	Bin   BinTemplate
}

// Empty reports whether the instance has nothing to optimize.
func (i Instance) Empty() bool {
	return len(i.Items) == 0
}
