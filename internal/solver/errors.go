package solver

import "errors"

var (
	// ErrInvalidBin is returned when an item's dimension count differs from the bin's.
	ErrInvalidBin = errors.New("item and bin dimensions differ")
	// ErrItemTooLarge is returned when an item does not fit an empty bin.
	ErrItemTooLarge = errors.New("item exceeds bin capacity")
)
