package tree

// PathError reports a directory argument that is missing or not a directory.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return "invalid directory " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}
