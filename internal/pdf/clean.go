package pdf

import (
	"regexp"
	"strings"
	"unicode"
)

// Common PDF ligature code points expanded to their letter sequences.
var ligatureReplacer = strings.NewReplacer(
	"ﬀ", "ff",
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
	"ﬅ", "st",
	"ﬆ", "st",
)

var (
	spaceRuns        = regexp.MustCompile(` +`)
	hyphenLineBreak  = regexp.MustCompile(`(\w)- +(\w)`)
	spaceBeforePunct = regexp.MustCompile(` +([,.:;!?)])`)
	spaceAfterParen  = regexp.MustCompile(`\( +`)
	repeatedPeriods  = regexp.MustCompile(`\.\.+`)
	letterRun        = regexp.MustCompile(`[a-zA-Z]{2,}`)
)

// cleanPassage normalizes text recovered from a highlight rectangle:
// ligatures expanded, control characters dropped, whitespace collapsed,
// hyphenation at line breaks repaired, and stray spacing around punctuation
// removed. Returns the trimmed passage, possibly empty.
func cleanPassage(text string) string {
	if text == "" {
		return ""
	}

	text = ligatureReplacer.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteByte(' ')
		case r < 32:
			// Drop other control characters.
		default:
			b.WriteRune(r)
		}
	}
	text = b.String()

	text = spaceRuns.ReplaceAllString(text, " ")
	text = hyphenLineBreak.ReplaceAllString(text, "$1$2")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = spaceAfterParen.ReplaceAllString(text, "(")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = repeatedPeriods.ReplaceAllString(text, ".")

	return strings.TrimSpace(text)
}

// isMeaningful reports whether a cleaned passage carries real text rather
// than extraction artifacts: at least 3 characters, a run of 2+ letters,
// and letters making up over 40% of its non-space characters.
func isMeaningful(text string) bool {
	if len(text) < 3 {
		return false
	}

	if !letterRun.MatchString(text) {
		return false
	}

	letters, nonSpace := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		nonSpace++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if nonSpace == 0 {
		return false
	}

	return float64(letters)/float64(nonSpace) > 0.4
}
