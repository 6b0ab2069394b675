package categorizer

import "strings"

// Extractor mines a candidate keyword phrase from a transaction narrative.
//
// Bank exports put the merchant name at a fixed offset in the narrative, so
// the phrase is the tokens in the half-open window [Start, End) of the
// whitespace-split narrative. The window is configuration, not a constant,
// since the offset differs between ledger formats.
type Extractor struct {
	Start int
	End   int
}

// NewExtractor returns an Extractor with the conventional window for bank
// ledger exports, tokens 3 to 6.
func NewExtractor() Extractor {
	return Extractor{Start: 3, End: 6}
}

// Phrase returns the candidate keyword phrase for a narrative. Narratives
// with fewer tokens than the window requires yield a truncated or empty
// phrase; callers have to expect an empty result.
func (e Extractor) Phrase(narrative string) string {
	tokens := strings.Fields(narrative)

	start, end := e.Start, e.End
	if start > len(tokens) {
		start = len(tokens)
	}
	if end > len(tokens) {
		end = len(tokens)
	}
	if start < 0 || end < start {
		return ""
	}

	return strings.Join(tokens[start:end], " ")
}
