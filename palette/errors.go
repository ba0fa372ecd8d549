package palette

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownPalette is returned by ByName for names that are not built in.
	ErrUnknownPalette = errors.New("palette: unknown palette")

	// ErrUnknownFormat is returned for file extensions or format names
	// other than yaml, yml, toml and json.
	ErrUnknownFormat = errors.New("palette: unknown file format")
)

// FileError reports a palette file that could not be read, decoded or
// validated. Line is 1-based and zero when unknown.
type FileError struct {
	Path string
	Line int
	Err  error
}

func (e *FileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("palette: %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("palette: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *FileError) Unwrap() error { return e.Err }

// ValidationError reports the first field of a palette document that
// failed validation. Field uses the document's key names, e.g. "colors[2]".
type ValidationError struct {
	Field string
	Tag   string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("palette: %s failed validation for tag '%s'", e.Field, e.Tag)
}

// Unwrap exposes the underlying validator error.
func (e *ValidationError) Unwrap() error { return e.Err }
