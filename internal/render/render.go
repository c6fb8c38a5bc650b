// Package render converts collected page highlights into one of the
// supported output artifacts: Markdown, plain text, or a Word document.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/a3tai/pdf-highlights/internal/pdf"
)

// Format identifies an output serialization.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatText     Format = "txt"
	FormatDocx     Format = "docx"
)

// Sentinel errors for renderer failures, matched with errors.Is at the CLI
// boundary.
var (
	// ErrUnsupportedFormat indicates a format tag outside {md, txt, docx}.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrOutputWrite indicates the destination could not be created or written.
	ErrOutputWrite = errors.New("cannot write output file")
)

// ParseFormat resolves a format tag case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "md":
		return FormatMarkdown, nil
	case "txt":
		return FormatText, nil
	case "docx":
		return FormatDocx, nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of: md, txt, docx)", ErrUnsupportedFormat, s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// OutputPath resolves the destination path: the explicit path when given,
// otherwise the input's stem with a "_highlights" suffix and the format's
// extension, alongside the input file.
func OutputPath(inputPath, explicit string, f Format) string {
	if explicit != "" {
		return explicit
	}

	stem := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return stem + "_highlights." + f.Extension()
}

// Document is the renderer's input: the source document's display name and
// its highlighted passages grouped by page in ascending order.
type Document struct {
	SourceName string
	Pages      []pdf.PageHighlights
}

// Title returns the heading line shared by all output formats.
func (d Document) Title() string {
	return "Highlights from " + d.SourceName
}

// Renderer writes a Document to a file in a chosen format. The structural
// rules per format do not depend on passage content; an empty document
// produces a title-only artifact.
type Renderer struct{}

// NewRenderer creates a new output renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes exactly one file at outputPath, silently overwriting any
// existing file.
func (r *Renderer) Render(doc Document, format Format, outputPath string) error {
	switch format {
	case FormatMarkdown:
		return writeFile(outputPath, Markdown(doc))
	case FormatText:
		return writeFile(outputPath, PlainText(doc))
	case FormatDocx:
		return renderDocx(doc, outputPath)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}
