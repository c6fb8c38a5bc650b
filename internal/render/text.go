package render

import (
	"fmt"
	"strings"
)

// PlainText renders the document as UTF-8 plain text: an underlined title,
// a "--- Page N ---" header per page, and a bulleted line per passage.
func PlainText(doc Document) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", doc.Title())
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	for _, page := range doc.Pages {
		fmt.Fprintf(&b, "--- Page %d ---\n\n", page.Page)
		for _, passage := range page.Passages {
			fmt.Fprintf(&b, "* %s\n\n", passage)
		}
	}

	return []byte(b.String())
}
