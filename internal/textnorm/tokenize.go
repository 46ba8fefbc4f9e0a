package textnorm

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Tokenize splits an already-normalized query into search tokens:
// whitespace-separated, no empties, deduplicated preserving first
// occurrence order. Queries whose rune count without whitespace is
// below minChars produce no tokens at all.
func Tokenize(normalizedQuery string, minChars int) []string {
	fields := strings.Fields(normalizedQuery)
	if len(fields) == 0 {
		return nil
	}

	if utf8.RuneCountInString(strings.Join(fields, "")) < minChars {
		return nil
	}

	return lo.Uniq(fields)
}
