package render

import (
	"fmt"
	"strings"
)

// Markdown renders the document as UTF-8 Markdown: a top-level title, a
// level-2 heading per page, and a block quote per passage, with blank lines
// between all elements.
func Markdown(doc Document) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title())

	for _, page := range doc.Pages {
		fmt.Fprintf(&b, "## Page %d\n\n", page.Page)
		for _, passage := range page.Passages {
			fmt.Fprintf(&b, "> %s\n\n", passage)
		}
	}

	return []byte(b.String())
}
