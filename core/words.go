package core

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// stopWords are common English words that carry no signal in a commit
// message word cloud.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {}, "has": {},
	"have": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {},
	"so": {}, "some": {}, "such": {}, "than": {}, "that": {},
	"the": {}, "their": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "to": {}, "was": {}, "we": {}, "were": {},
	"when": {}, "which": {}, "will": {}, "with": {},
}

// tokenizeMessage splits a commit message into lowercase alphanumeric
// tokens.
func tokenizeMessage(message string) []string {
	return strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// isNumericToken reports whether a token contains no letters at all.
// Pure issue numbers and version fragments are noise in a word cloud.
func isNumericToken(token string) bool {
	return strings.IndexFunc(token, unicode.IsLetter) < 0
}

// ProcessCommitMessages tokenizes the messages, drops stop words, pure
// numbers and tokens shorter than cfg.MinWordLength, keeps the top
// cfg.MaxWords by frequency and linearly rescales the counts into the
// [cfg.MinWordSize, cfg.MaxWordSize] display range. An empty input is a
// caller error.
func ProcessCommitMessages(messages []string, cfg *contract.Config) ([]schema.WordFrequencyEntry, error) {
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}

	counts := make(map[string]int)
	var order []string
	for _, message := range messages {
		for _, token := range tokenizeMessage(message) {
			if len(token) < cfg.MinWordLength {
				continue
			}
			if _, stop := stopWords[token]; stop {
				continue
			}
			if isNumericToken(token) {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	entries := make([]schema.WordFrequencyEntry, 0, len(order))
	for _, word := range order {
		entries = append(entries, schema.WordFrequencyEntry{Word: word, Count: counts[word]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > cfg.MaxWords {
		entries = entries[:cfg.MaxWords]
	}
	if len(entries) == 0 {
		return entries, nil
	}

	// Linear rescale into the display range. When every retained word
	// shares the same count the range is zero and every word gets the
	// maximum size.
	maxCount, minCount := entries[0].Count, entries[len(entries)-1].Count
	for i := range entries {
		if maxCount == minCount {
			entries[i].Size = cfg.MaxWordSize
			continue
		}
		ratio := float64(entries[i].Count-minCount) / float64(maxCount-minCount)
		entries[i].Size = cfg.MinWordSize + int(ratio*float64(cfg.MaxWordSize-cfg.MinWordSize)+0.5)
	}
	return entries, nil
}
