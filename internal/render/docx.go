package render

import (
	"fmt"

	"github.com/gomutex/godocx"
)

// renderDocx builds a Word document with a title heading, a sub-heading per
// page, and a paragraph per passage, then serializes it to outputPath.
func renderDocx(doc Document, outputPath string) error {
	word, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, outputPath, err)
	}

	if _, err := word.AddHeading(doc.Title(), 0); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, outputPath, err)
	}

	for _, page := range doc.Pages {
		if _, err := word.AddHeading(fmt.Sprintf("Page %d", page.Page), 1); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOutputWrite, outputPath, err)
		}
		for _, passage := range page.Passages {
			word.AddParagraph(passage)
		}
	}

	if err := word.SaveTo(outputPath); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, outputPath, err)
	}
	return nil
}
