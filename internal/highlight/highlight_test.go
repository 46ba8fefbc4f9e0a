package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partscope/internal/textnorm"
)

var opts = textnorm.DefaultOptions()

func TestRenderReconstructsOriginalExactly(t *testing.T) {
	samples := []struct {
		original string
		tokens   []string
	}{
		{"12345-67890", []string{"12345"}},
		{"  سنسور   اکسیژن  ", []string{"سنسور"}},
		{"(کد ۱۲۳۴۵)", []string{"کد", "12345"}},
		{"مُحَمَّد رضا", []string{"محمد"}},
		{"لنت ترمز جلو", []string{"ندارد"}},
		{"", []string{"x"}},
		{"بدون توکن", nil},
	}

	for _, sample := range samples {
		segments := Render(sample.original, sample.tokens, opts)
		assert.Equal(t, sample.original, Flatten(segments), "original %q", sample.original)
	}
}

func TestRenderHighlightsPrefix(t *testing.T) {
	segments := Render("سنسور اکسیژن", []string{"سنس"}, opts)
	require.Len(t, segments, 4)

	assert.Equal(t, "سنس", segments[0].Text)
	assert.True(t, segments[0].Highlighted)
	assert.Equal(t, "ور", segments[1].Text)
	assert.False(t, segments[1].Highlighted)
	assert.Equal(t, " ", segments[2].Text)
	assert.Equal(t, "اکسیژن", segments[3].Text)
	assert.False(t, segments[3].Highlighted)
}

func TestRenderLeadingStripOffset(t *testing.T) {
	segments := Render("(12345)", []string{"123"}, opts)
	require.Len(t, segments, 3)

	assert.Equal(t, "(", segments[0].Text)
	assert.False(t, segments[0].Highlighted)
	assert.Equal(t, "123", segments[1].Text)
	assert.True(t, segments[1].Highlighted)
	assert.Equal(t, "45)", segments[2].Text)
	assert.False(t, segments[2].Highlighted)
}

func TestRenderLongestTokenWins(t *testing.T) {
	// The short token must not shadow the longer overlapping one
	segments := Render("12345", []string{"12", "1234"}, opts)
	require.Len(t, segments, 2)

	assert.Equal(t, "1234", segments[0].Text)
	assert.True(t, segments[0].Highlighted)
	assert.Equal(t, "5", segments[1].Text)
}

func TestRenderNormalizedMatching(t *testing.T) {
	// Persian-digit query token is normalized before probing, so it
	// matches the Latin-digit original and highlights original text
	segments := Render("12345-67890", []string{"12345"}, opts)
	require.NotEmpty(t, segments)
	assert.True(t, segments[0].Highlighted)
	assert.Equal(t, "12345", segments[0].Text)
}

func TestRenderSpanClampedToRun(t *testing.T) {
	// Token longer than the remaining run highlights the whole run
	segments := Render("abc", []string{"abc"}, opts)
	require.Len(t, segments, 1)
	assert.True(t, segments[0].Highlighted)
	assert.Equal(t, "abc", segments[0].Text)
}

func TestRenderWhitespacePreserved(t *testing.T) {
	segments := Render("a   b", []string{"zz"}, opts)
	assert.Equal(t, "a   b", Flatten(segments))

	// Whitespace runs are their own unhighlighted segments
	require.Len(t, segments, 3)
	assert.Equal(t, "   ", segments[1].Text)
	assert.False(t, segments[1].Highlighted)
}

func TestRenderNoTokensPassthrough(t *testing.T) {
	segments := Render("سنسور", nil, opts)
	require.Len(t, segments, 1)
	assert.False(t, segments[0].Highlighted)
}
