package pdf

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Collector recovers highlighted text from a PDF file. Annotation geometry
// comes from pdfcpu's object model; the text under each rectangle comes
// from ledongthuc's positioned glyph extraction. Both libraries report
// coordinates in bottom-up PDF user space, so no vertical flip is needed.
type Collector struct {
	maxFileSize int64
}

// NewCollector creates a new highlight collector with the specified constraints
func NewCollector(maxFileSize int64) *Collector {
	return &Collector{
		maxFileSize: maxFileSize,
	}
}

// ExtractHighlights collects every highlighted passage in the document,
// grouped by page in ascending order. Pages that yield no non-empty passage
// are omitted from the result. The source file is only ever read.
func (c *Collector) ExtractHighlights(req HighlightExtractRequest) (*HighlightExtractResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrInputNotFound)
	}

	regions, err := readHighlightRegions(req.Path)
	if err != nil {
		return nil, err
	}

	result := &HighlightExtractResult{
		Path:      req.Path,
		PageCount: len(regions),
	}

	annotated := 0
	for _, pr := range regions {
		result.AnnotationCount += pr.highlights
		if len(pr.rects) > 0 {
			annotated++
		}
	}
	if annotated == 0 {
		return result, nil
	}

	f, reader, err := pdf.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputFormat, req.Path, err)
	}
	defer f.Close()

	for _, pr := range regions {
		if len(pr.rects) == 0 {
			continue
		}

		passages := c.collectPagePassages(reader, pr)
		if len(passages) == 0 {
			continue
		}

		result.Pages = append(result.Pages, PageHighlights{
			Page:     pr.number,
			Passages: passages,
		})
		result.PassageCount += len(passages)
	}

	return result, nil
}

// collectPagePassages extracts, cleans, and filters the text under each
// highlight rectangle of one page, preserving rectangle order.
func (c *Collector) collectPagePassages(reader *pdf.Reader, pr pageRegions) []string {
	if pr.number < 1 || pr.number > reader.NumPage() {
		return nil
	}

	page := reader.Page(pr.number)
	if page.V.IsNull() {
		return nil
	}

	texts := pageTexts(page)
	if len(texts) == 0 {
		return nil
	}

	var passages []string
	for _, r := range pr.rects {
		passage := cleanPassage(textInRect(texts, r))
		if passage == "" || !isMeaningful(passage) {
			continue
		}
		passages = append(passages, passage)
	}
	return passages
}

// pageTexts returns the positioned glyphs of a page. Content parsing can
// panic on damaged pages, so recover and treat the page as empty.
func pageTexts(page pdf.Page) (texts []pdf.Text) {
	defer func() {
		if recover() != nil {
			texts = nil
		}
	}()

	return page.Content().Text
}
