// Package tree lists instance directories and walks them depth-first,
// handing every file of every leaf directory to a Reporter.
package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eugenenazirov/vbp-optim/internal/natsort"
)

// ErrNotDirectory is wrapped by PathError when the path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Listing holds the immediate children of a directory, naturally ordered.
// Entries are full paths joined onto the listed directory.
type Listing struct {
	Dirs  []string
	Files []string
}

// Leaf reports whether the directory has no subdirectories.
func (l Listing) Leaf() bool {
	return len(l.Dirs) == 0
}

// Classify lists the subdirectories and regular files directly under dir.
// Symbolic links are followed; entries that are neither (sockets, broken
// links, devices) are left out.
func Classify(dir string) (Listing, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Listing{}, &PathError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return Listing{}, &PathError{Path: dir, Err: ErrNotDirectory}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var dirNames, fileNames []string
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		info, err := os.Stat(full)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Listing{}, fmt.Errorf("stat %s: %w", full, err)
		}
		switch {
		case info.IsDir():
			dirNames = append(dirNames, entry.Name())
		case info.Mode().IsRegular():
			fileNames = append(fileNames, entry.Name())
		}
	}

	return Listing{
		Dirs:  joinSorted(dir, dirNames),
		Files: joinSorted(dir, fileNames),
	}, nil
}

func joinSorted(dir string, names []string) []string {
	natsort.Sort(names)
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths
}
