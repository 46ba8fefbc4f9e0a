// Package highlight reconstructs matched spans over the ORIGINAL,
// un-normalized field text. Concatenating the emitted segments always
// reproduces the original text exactly; only the segment boundaries
// depend on the normalized match.
package highlight

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"partscope/internal/textnorm"
)

// Segment is a run of original text, highlighted or plain
type Segment struct {
	Text        string
	Highlighted bool
}

// Render splits the original field text on whitespace runs (kept
// verbatim as plain segments) and checks every non-whitespace run with
// the token list, longest token first so a short token cannot shadow a
// longer overlapping one. A matching run is emitted as three slices of
// the original text: the leading-strip prefix, the highlighted span and
// the tail. Runs without a match pass through unchanged.
func Render(original string, tokens []string, opts textnorm.Options) []Segment {
	if original == "" {
		return nil
	}
	if len(tokens) == 0 {
		return []Segment{{Text: original}}
	}

	ordered := byLength(tokens)

	var segments []Segment
	for _, run := range splitRuns(original) {
		if isSpace(run) {
			segments = append(segments, Segment{Text: run})
			continue
		}
		segments = append(segments, renderRun(run, ordered, opts)...)
	}

	return segments
}

// Flatten concatenates segment text, dropping the markup. The result
// equals the original input to Render, character for character.
func Flatten(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func renderRun(run string, tokens []string, opts textnorm.Options) []Segment {
	normalized := textnorm.Normalize(run, opts)
	offset := textnorm.LeadingStripOffset(normalized)
	stripped := string([]rune(normalized)[offset:])

	for _, token := range tokens {
		if !strings.HasPrefix(stripped, token) {
			continue
		}

		// Slice the ORIGINAL run by rune counts. The normalized and
		// original text are assumed to diverge only in the leading
		// strip; interior shortening from mark removal is not
		// compensated for.
		runes := []rune(run)
		span := utf8.RuneCountInString(token)
		if max := len(runes) - offset; span > max {
			span = max
		}

		segments := make([]Segment, 0, 3)
		if offset > 0 {
			segments = append(segments, Segment{Text: string(runes[:offset])})
		}
		segments = append(segments, Segment{Text: string(runes[offset : offset+span]), Highlighted: true})
		if rest := string(runes[offset+span:]); rest != "" {
			segments = append(segments, Segment{Text: rest})
		}
		return segments
	}

	return []Segment{{Text: run}}
}

// splitRuns partitions text into alternating whitespace and
// non-whitespace runs, preserving every character.
func splitRuns(text string) []string {
	var runs []string
	start := 0
	var inSpace bool

	for i, r := range text {
		isSp := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSp
			continue
		}
		if isSp != inSpace {
			runs = append(runs, text[start:i])
			start = i
			inSpace = isSp
		}
	}
	if start < len(text) {
		runs = append(runs, text[start:])
	}

	return runs
}

func isSpace(run string) bool {
	r, _ := utf8.DecodeRuneInString(run)
	return unicode.IsSpace(r)
}

// byLength orders tokens longest first without mutating the input
func byLength(tokens []string) []string {
	ordered := make([]string, len(tokens))
	copy(ordered, tokens)
	sort.SliceStable(ordered, func(i, j int) bool {
		return utf8.RuneCountInString(ordered[i]) > utf8.RuneCountInString(ordered[j])
	})
	return ordered
}
