package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeSplitsAndDeduplicates(t *testing.T) {
	assert.Equal(t, []string{"12345", "sensor"}, Tokenize("12345 sensor 12345", 0))
	assert.Equal(t, []string{"b", "a"}, Tokenize("b a b a", 0))
}

func TestTokenizeEmptyQuery(t *testing.T) {
	assert.Empty(t, Tokenize("", 0))
	assert.Empty(t, Tokenize("   ", 0))
}

func TestTokenizeMinChars(t *testing.T) {
	// Whitespace does not count toward the minimum
	assert.Empty(t, Tokenize("ا ب", 3))
	assert.Equal(t, []string{"اب", "پ"}, Tokenize("اب پ", 3))
	assert.Empty(t, Tokenize("a", 2))
	assert.Equal(t, []string{"ab"}, Tokenize("ab", 2))
}
