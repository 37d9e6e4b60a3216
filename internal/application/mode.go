package application

import "errors"

// Mode selects what a run optimizes.
type Mode int

const (
	// ModeFile optimizes a single instance file.
	ModeFile Mode = iota + 1
	// ModeDir optimizes every file directly inside a directory.
	ModeDir
	// ModeTree walks a directory tree and optimizes the files of its leaves.
	ModeTree
)

func (m Mode) String() string {
	switch m {
	case ModeFile:
		return "file"
	case ModeDir:
		return "dir"
	case ModeTree:
		return "tree"
	}
	return "unknown"
}

var (
	// ErrNoAction is returned when neither a file nor a directory was given.
	ErrNoAction = errors.New("no action requested, add -f or -d")
	// ErrTooManyActions is returned when both a file and a directory were given.
	ErrTooManyActions = errors.New("too many actions requested, add only -f or -d")
	// ErrRecursiveWithoutDir is returned when -r is given without -d.
	ErrRecursiveWithoutDir = errors.New("recursive argument requires a directory (-d)")
)

// Target is the user's request as given on the command line.
type Target struct {
	File      string
	Dir       string
	Recursive bool
}

// Resolve validates the flag combination and picks the run mode.
func (t Target) Resolve() (Mode, string, error) {
	switch {
	case t.File != "" && t.Dir != "":
		return 0, "", ErrTooManyActions
	case t.File == "" && t.Dir == "":
		return 0, "", ErrNoAction
	case t.Recursive && t.Dir == "":
		return 0, "", ErrRecursiveWithoutDir
	case t.File != "":
		return ModeFile, t.File, nil
	case t.Recursive:
		return ModeTree, t.Dir, nil
	}
	return ModeDir, t.Dir, nil
}
