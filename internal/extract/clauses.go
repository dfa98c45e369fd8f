package extract

import (
	"strconv"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/segment"
)

// clauseMarkers are structural phrases that open a new clause block.
// A sentence starting with any of these flushes the accumulating buffer.
var clauseMarkers = []string{
	"section", "article", "clause", "paragraph",
	"whereas", "therefore", "furthermore", "in addition",
	"notwithstanding", "subject to", "provided that",
	"it is agreed", "the parties agree", "each party", "either party",
	"upon termination", "in the event", "if any", "this agreement",
}

// ClauseExtractor groups segmented sentences into clause-like blocks
type ClauseExtractor struct {
	minSentenceLen int
	minClauseLen   int
	maxClauseLen   int
}

// NewClauseExtractor creates a clause extractor with the given thresholds.
// Zero values fall back to the reference defaults (20/30/300).
func NewClauseExtractor(cfg model.AnalysisConfig) *ClauseExtractor {
	e := &ClauseExtractor{
		minSentenceLen: cfg.MinSentenceLength,
		minClauseLen:   cfg.MinClauseLength,
		maxClauseLen:   cfg.MaxClauseLength,
	}
	if e.minSentenceLen <= 0 {
		e.minSentenceLen = segment.DefaultMinLength
	}
	if e.minClauseLen <= 0 {
		e.minClauseLen = 30
	}
	if e.maxClauseLen <= 0 {
		e.maxClauseLen = 300
	}
	return e
}

// Extract produces ordered clause-like blocks from full document text.
// Sentences accumulate into a buffer joined by ". "; the buffer is
// flushed when the next sentence starts with a structural marker, when
// it grows past the hard length cap, and at end of input. Blocks
// shorter than the minimum clause length are dropped.
func (e *ClauseExtractor) Extract(text string) []model.TextUnit {
	sentences := segment.Sentences(text, e.minSentenceLen)

	var blocks []model.TextUnit
	var buffer []string
	bufStart := 0
	bufEnd := 0
	bufLen := 0

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		joined := strings.Join(buffer, ". ")
		if len(joined) >= e.minClauseLen {
			blocks = append(blocks, model.TextUnit{
				Text:  joined,
				Raw:   joined,
				Start: bufStart,
				End:   bufEnd,
				Index: len(blocks),
			})
		}
		buffer = buffer[:0]
		bufLen = 0
	}

	for _, s := range sentences {
		if startsNewClause(s.Text) && len(buffer) > 0 {
			flush()
		}
		if len(buffer) == 0 {
			bufStart = s.Start
		}
		buffer = append(buffer, s.Text)
		bufEnd = s.End
		bufLen += len(s.Text)

		// Hard cap: prevents unbounded block growth on marker-free text
		if bufLen > e.maxClauseLen {
			flush()
		}
	}
	flush()

	return blocks
}

func startsNewClause(sentence string) bool {
	lower := strings.ToLower(strings.TrimSpace(sentence))
	for _, marker := range clauseMarkers {
		if strings.HasPrefix(lower, marker) {
			return true
		}
	}
	return false
}

// ClauseID returns the stable 1-based external reference for a clause
// at the given 0-based index ("clause_1", "clause_2", ...).
func ClauseID(index int) string {
	return "clause_" + strconv.Itoa(index+1)
}
