package locale

import (
	"strings"
	"unicode"
)

// CleanText trims the input and collapses runs of whitespace to single
// spaces. Speech transcripts routinely contain stray newlines and doubled
// spaces.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// ForceRomanization reduces input to printable ASCII, dropping any other
// runes. Used when the conversation language is English so stray script from
// the transcriber never reaches the form.
func ForceRomanization(text string) string {
	text = CleanText(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return CleanText(b.String())
}

// inKannadaBlock reports whether r is in the Unicode Kannada block.
func inKannadaBlock(r rune) bool {
	return r >= 0x0C80 && r <= 0x0CFF
}

// NormalizeText normalizes a transcript for the target language. English
// forces ASCII; Kannada keeps Kannada script, Latin letters for identifiers
// (emails, numbers) and common punctuation, dropping anything else.
func NormalizeText(text string, lang Language) string {
	if text == "" {
		return ""
	}
	if lang == English {
		return ForceRomanization(text)
	}
	if lang == Kannada {
		text = CleanText(text)
		var b strings.Builder
		b.Grow(len(text))
		for _, r := range text {
			switch {
			case inKannadaBlock(r), r < 128:
				b.WriteRune(r)
			case unicode.IsSpace(r):
				b.WriteRune(' ')
			}
		}
		return CleanText(b.String())
	}
	return CleanText(text)
}
