// Package natsort orders names the way people read them: runs of digits
// compare as numbers, everything else compares case-insensitively.
package natsort

import (
	"slices"
	"strings"
)

// Chunk is one maximal run of digits or non-digits from a name.
type Chunk struct {
	Text    string
	Numeric bool
}

// Key is the sort key of a name. Keys always start with a text chunk
// (possibly empty) and alternate text/number from there.
type Key []Chunk

// KeyOf splits name into its alternating text and number chunks.
// Text chunks are lower-cased; number chunks keep their digits.
func KeyOf(name string) Key {
	key := make(Key, 0, 4)
	start := 0
	numeric := false
	flush := func(end int) {
		text := name[start:end]
		if !numeric {
			text = strings.ToLower(text)
		}
		key = append(key, Chunk{Text: text, Numeric: numeric})
		start = end
	}

	for i := 0; i < len(name); i++ {
		if isDigit(name[i]) != numeric {
			flush(i)
			numeric = !numeric
		}
	}
	flush(len(name))

	return key
}

// Compare returns -1, 0 or +1 as k sorts before, equal to or after other.
// A key that is a prefix of the other sorts first.
func (k Key) Compare(other Key) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		if c := compareChunk(k[i], other[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	}
	return 0
}

// Compare orders two names naturally.
func Compare(a, b string) int {
	return KeyOf(a).Compare(KeyOf(b))
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort orders names in place. Names with equal keys keep their input order.
func Sort(names []string) {
	keys := make(map[string]Key, len(names))
	for _, name := range names {
		if _, ok := keys[name]; !ok {
			keys[name] = KeyOf(name)
		}
	}
	slices.SortStableFunc(names, func(a, b string) int {
		return keys[a].Compare(keys[b])
	})
}

func compareChunk(a, b Chunk) int {
	if a.Numeric && b.Numeric {
		return compareDigits(a.Text, b.Text)
	}
	if a.Numeric != b.Numeric {
		// KeyOf output alternates from a text chunk, so kinds only differ
		// for hand-built keys.
		if a.Numeric {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Text, b.Text)
}

// compareDigits compares two digit strings by integer value without
// converting them, so arbitrarily long runs never overflow.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
