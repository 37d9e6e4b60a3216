package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MaxItems caps the total expanded demand of one instance. Larger
// instances fail with a FormatError instead of exhausting memory.
const MaxItems = 1 << 24

// Parse reads an instance from r. The reader is consumed but never closed.
// Lines may be of any length.
func Parse(r io.Reader) (Instance, error) {
	p := &lineReader{reader: bufio.NewReader(r)}

	dim, err := p.header("dimension count")
	if err != nil {
		return Instance{}, err
	}

	capLine, ok, err := p.next()
	if err != nil {
		return Instance{}, err
	}
	if !ok {
		return Instance{}, formatErrorf(p.line+1, "missing capacity line")
	}
	capacities, err := parseInts(capLine, p.line)
	if err != nil {
		return Instance{}, err
	}
	if len(capacities) != dim {
		return Instance{}, formatErrorf(p.line, "expected %d capacities, got %d", dim, len(capacities))
	}

	declared, err := p.header("item type count")
	if err != nil {
		return Instance{}, err
	}

	var items []Item
	types := 0
	for {
		line, ok, err := p.next()
		if err != nil {
			return Instance{}, err
		}
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		values, err := parseInts(line, p.line)
		if err != nil {
			return Instance{}, err
		}
		if len(values) == 0 {
			continue
		}
		demand := values[len(values)-1]
		req := values[:len(values)-1]
		if len(req) != dim {
			return Instance{}, formatErrorf(p.line, "expected %d requirements before the demand, got %d", dim, len(req))
		}

		if demand > MaxItems-len(items) {
			return Instance{}, formatErrorf(p.line, "demand %d exceeds the limit of %d items per instance", demand, MaxItems)
		}
		for j := 0; j < demand; j++ {
			item := make(Item, dim)
			copy(item, req)
			items = append(items, item)
		}
		types++
	}

	if types != declared {
		return Instance{}, formatErrorf(0, "declared %d item types, found %d", declared, types)
	}

	return Instance{Items: items, Bin: BinTemplate(capacities)}, nil
}

// ParseFile opens path, parses it and closes it on every exit path.
func ParseFile(path string) (inst Instance, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("open instance: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close instance: %w", closeErr)
		}
	}()

	inst, err = Parse(f)
	if err != nil {
		return Instance{}, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

type lineReader struct {
	reader *bufio.Reader
	line   int
}

func (p *lineReader) next() (string, bool, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("read instance: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}
	p.line++
	return strings.TrimRight(line, "\r\n"), true, nil
}

// header reads a line holding exactly one non-negative integer.
func (p *lineReader) header(what string) (int, error) {
	line, ok, err := p.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, formatErrorf(p.line+1, "missing %s", what)
	}
	values, err := parseInts(line, p.line)
	if err != nil {
		return 0, err
	}
	if len(values) != 1 {
		return 0, formatErrorf(p.line, "expected a single %s, got %d values", what, len(values))
	}
	return values[0], nil
}

func parseInts(line string, lineNo int) ([]int, error) {
	fields := strings.Fields(line)
	values := make([]int, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, formatErrorf(lineNo, "invalid integer %q", field)
		}
		if v < 0 {
			return nil, formatErrorf(lineNo, "negative value %d", v)
		}
		values = append(values, v)
	}
	return values, nil
}
