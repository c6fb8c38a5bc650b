package pdf

// Rect is an axis-aligned rectangle in PDF user space (bottom-up y axis),
// normalized so Min <= Max on both axes.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// PageHighlights holds the highlighted passages recovered from a single page.
// Passages appear in annotation and quad enumeration order.
type PageHighlights struct {
	Page     int      `json:"page"`
	Passages []string `json:"passages"`
}

// HighlightExtractRequest represents a request to collect highlighted text
// from a PDF file.
type HighlightExtractRequest struct {
	Path string `json:"path"`
}

// HighlightExtractResult represents the outcome of highlight collection.
// Pages is ordered by ascending page number and contains only pages that
// yielded at least one non-empty passage.
type HighlightExtractResult struct {
	Path            string           `json:"path"`
	PageCount       int              `json:"page_count"`
	AnnotationCount int              `json:"annotation_count"`
	PassageCount    int              `json:"passage_count"`
	Pages           []PageHighlights `json:"pages"`
}

// PDFValidateFileRequest represents a request to validate a PDF file
type PDFValidateFileRequest struct {
	Path string `json:"path"`
}

// PDFValidateFileResult represents the result of validating a PDF file
type PDFValidateFileResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}
