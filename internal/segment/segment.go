package segment

import (
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// DefaultMinLength is the sentence length threshold used for clause
// extraction and summarization. A trimmed sentence must be strictly
// longer than this to be kept.
const DefaultMinLength = 20

// RelaxedMinLength keeps short factual sentences reachable for
// question-answering context scans.
const RelaxedMinLength = 10

// Sentences splits raw text into sentence-like units on runs of
// sentence-terminal punctuation ('.', '!', '?'), discarding the
// terminators. A unit is retained only if its trimmed length exceeds
// minLen. Empty input yields an empty slice, never an error.
//
// This is intentionally naive: no abbreviation handling, no
// language-aware tokenization. Downstream scoring depends on exactly
// this splitting being reproducible.
func Sentences(text string, minLen int) []model.TextUnit {
	var units []model.TextUnit

	start := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c == '.' || c == '!' || c == '?' {
			appendUnit(&units, text, start, i, minLen)
			// Swallow the whole terminator run
			for i < len(text) && (text[i] == '.' || text[i] == '!' || text[i] == '?') {
				i++
			}
			start = i
			continue
		}
		i++
	}
	appendUnit(&units, text, start, len(text), minLen)

	return units
}

func appendUnit(units *[]model.TextUnit, text string, start, end, minLen int) {
	raw := text[start:end]
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) <= minLen {
		return
	}
	*units = append(*units, model.TextUnit{
		Text:  trimmed,
		Raw:   raw,
		Start: start,
		End:   end,
		Index: len(*units),
	})
}

// Texts returns just the trimmed sentence strings
func Texts(units []model.TextUnit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Text
	}
	return out
}
