package pdf

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// Tolerances for deciding whether a glyph belongs to a highlight rectangle
// and whether a horizontal gap between glyphs is a word boundary. Values
// follow the defaults used for word grouping in pdfplumber-style extraction.
const (
	xTolerance = 1.0
	yTolerance = 2.0
	gapFactor  = 0.3
)

// textInRect returns the text spanned by r, assembled from the page's
// positioned glyphs in content-stream order. Glyph membership is tested on
// the glyph's horizontal center and baseline. A space is inserted where
// consecutive glyphs are separated by more than gapFactor of the font size,
// or where the baseline jumps to another line.
func textInRect(texts []pdf.Text, r Rect) string {
	var b strings.Builder
	var prev *pdf.Text

	for i := range texts {
		t := &texts[i]
		center := t.X + t.W/2
		if center < r.MinX-xTolerance || center > r.MaxX+xTolerance {
			continue
		}
		if t.Y < r.MinY-yTolerance || t.Y > r.MaxY+yTolerance {
			continue
		}

		if prev != nil && needsSpace(prev, t) {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		prev = t
	}

	return b.String()
}

// needsSpace reports whether a word boundary lies between two glyphs that
// were both captured by the same rectangle.
func needsSpace(prev, cur *pdf.Text) bool {
	if strings.HasSuffix(prev.S, " ") || strings.HasPrefix(cur.S, " ") {
		return false
	}

	// Baseline moved: different line fragment inside the same rectangle.
	if cur.Y != prev.Y {
		return true
	}

	size := cur.FontSize
	if size == 0 {
		size = 12.0
	}
	return cur.X-(prev.X+prev.W) > gapFactor*size
}
