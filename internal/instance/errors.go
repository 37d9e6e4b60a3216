package instance

import "fmt"

// FormatError reports a structural mismatch in an instance file.
// Line is 1-based; zero means the error concerns the file as a whole.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return "instance format: " + e.Reason
	}
	return fmt.Sprintf("instance format: line %d: %s", e.Line, e.Reason)
}

func formatErrorf(line int, format string, args ...any) error {
	return &FormatError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
