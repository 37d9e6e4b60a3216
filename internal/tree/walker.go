package tree

import (
	"fmt"

	"go.uber.org/zap"
)

// Reporter receives the walk as it happens.
type Reporter interface {
	// Directory is called once per visited directory, before its children.
	Directory(path string, depth int) error
	// File is called for every file of a leaf directory, in natural order.
	File(path string, depth int) error
}

// Walker drives a Reporter over a directory tree.
type Walker struct {
	reporter Reporter
	logger   *zap.Logger
}

// NewWalker creates a Walker. A nil logger disables logging.
func NewWalker(reporter Reporter, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{reporter: reporter, logger: logger}
}

// WalkDir reports every file directly inside dir at depth 0, whether or not
// dir also has subdirectories.
func (w *Walker) WalkDir(dir string) error {
	listing, err := Classify(dir)
	if err != nil {
		return err
	}
	return w.reportFiles(listing.Files, 0)
}

// WalkTree visits dir and its descendants depth-first. Only leaf
// directories have their files reported; files sitting next to
// subdirectories are skipped.
func (w *Walker) WalkTree(dir string) error {
	return w.walk(dir, 0)
}

func (w *Walker) walk(dir string, depth int) error {
	listing, err := Classify(dir)
	if err != nil {
		return err
	}

	if err := w.reporter.Directory(dir, depth); err != nil {
		return fmt.Errorf("report directory %s: %w", dir, err)
	}

	if listing.Leaf() {
		return w.reportFiles(listing.Files, depth+1)
	}

	if len(listing.Files) > 0 {
		w.logger.Debug("skipping files of non-leaf directory",
			zap.String("dir", dir),
			zap.Int("files", len(listing.Files)),
		)
	}
	for _, sub := range listing.Dirs {
		if err := w.walk(sub, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) reportFiles(files []string, depth int) error {
	for _, file := range files {
		if err := w.reporter.File(file, depth); err != nil {
			return err
		}
	}
	return nil
}
