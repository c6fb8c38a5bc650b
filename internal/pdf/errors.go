package pdf

import "errors"

// Sentinel errors for the two ways opening an input can fail. Callers match
// them with errors.Is to choose an exit message; the wrapped error carries
// the file path and underlying cause.
var (
	// ErrInputNotFound indicates the input path does not exist or is not a
	// readable regular file.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputFormat indicates the input exists but cannot be parsed as a PDF.
	ErrInputFormat = errors.New("invalid PDF file")
)
