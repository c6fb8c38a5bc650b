package pdf

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

// line lays out the characters of s as glyphs starting at (x, y), one glyph
// per rune, advancing by width.
func line(s string, x, y, width float64) []pdf.Text {
	var texts []pdf.Text
	for i, r := range []rune(s) {
		texts = append(texts, pdf.Text{
			S:        string(r),
			X:        x + float64(i)*width,
			Y:        y,
			W:        width,
			FontSize: 12,
		})
	}
	return texts
}

func TestTextInRect_CapturesOnlyGlyphsInside(t *testing.T) {
	texts := line("Alpha passage", 50, 700, 6)
	texts = append(texts, line("outside text", 300, 700, 6)...)

	got := textInRect(texts, Rect{MinX: 48, MinY: 695, MaxX: 130, MaxY: 712})
	if got != "Alpha passage" {
		t.Errorf("expected %q, got %q", "Alpha passage", got)
	}
}

func TestTextInRect_ExcludesOtherLines(t *testing.T) {
	texts := line("first line", 50, 700, 6)
	texts = append(texts, line("second line", 50, 680, 6)...)

	got := textInRect(texts, Rect{MinX: 40, MinY: 695, MaxX: 200, MaxY: 712})
	if got != "first line" {
		t.Errorf("expected %q, got %q", "first line", got)
	}
}

func TestTextInRect_EmptyWhenNothingInside(t *testing.T) {
	texts := line("far away", 400, 100, 6)

	if got := textInRect(texts, Rect{MinX: 0, MinY: 690, MaxX: 100, MaxY: 710}); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestTextInRect_InsertsSpaceAcrossWordGap(t *testing.T) {
	// Two words without explicit space glyphs, separated by a wide gap.
	texts := line("Alpha", 50, 700, 6)
	texts = append(texts, line("Beta", 120, 700, 6)...)

	got := textInRect(texts, Rect{MinX: 40, MinY: 695, MaxX: 200, MaxY: 712})
	if got != "Alpha Beta" {
		t.Errorf("expected %q, got %q", "Alpha Beta", got)
	}
}

func TestTextInRect_InsertsSpaceAcrossBaselineJump(t *testing.T) {
	// One tall rectangle covering two lines: fragments join with a space.
	texts := line("word-", 50, 700, 6)
	texts = append(texts, line("wrap", 50, 686, 6)...)

	got := textInRect(texts, Rect{MinX: 40, MinY: 680, MaxX: 200, MaxY: 712})
	if got != "word- wrap" {
		t.Errorf("expected %q, got %q", "word- wrap", got)
	}
}
