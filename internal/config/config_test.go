package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partscope/internal/textnorm"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestFieldKeysOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.PrimaryField = "code"
	cfg.Search.SecondaryFields = []string{"name", "brand"}

	assert.Equal(t, []string{"code", "name", "brand"}, cfg.FieldKeys())
}

func TestSearchPolicyMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.Logic = "OR"
	cfg.Search.MatchFrom = []string{"startOfWord"}
	cfg.Search.EmptyQuery = "all"

	policy := cfg.SearchPolicy()
	assert.Equal(t, "OR", string(policy.Logic))
	assert.False(t, policy.From.StartOfString)
	assert.True(t, policy.From.StartOfWord)
	assert.True(t, policy.EmptyQueryAll)
	assert.Equal(t, textnorm.DigitsBoth, policy.Normalize.Digits)
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partscope.toml")
	svc := &configService{filePath: path}

	cfg := DefaultConfig()
	cfg.Search.MinChars = 4
	cfg.Search.Logic = "OR"
	cfg.Messages.NoResults = "هیچ"

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Search.MinChars)
	assert.Equal(t, "OR", loaded.Search.Logic)
	assert.Equal(t, "هیچ", loaded.Messages.NoResults)
	assert.Equal(t, cfg.Search.PrimaryField, loaded.Search.PrimaryField)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partscope.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
version = 1

[search]
primary_field = "code"
logic = "XOR"
match_from = ["startOfString"]
max_results = 10
`), 0644))

	svc := &configService{filePath: path}
	_, err := svc.LoadFromPath(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing primary field", func(c *Config) { c.Search.PrimaryField = "" }},
		{"bad logic", func(c *Config) { c.Search.Logic = "xor" }},
		{"bad empty query", func(c *Config) { c.Search.EmptyQuery = "some" }},
		{"no match strategies", func(c *Config) { c.Search.MatchFrom = nil }},
		{"unknown match strategy", func(c *Config) { c.Search.MatchFrom = []string{"middle"} }},
		{"negative min chars", func(c *Config) { c.Search.MinChars = -1 }},
		{"zero max results", func(c *Config) { c.Search.MaxResults = 0 }},
		{"negative debounce", func(c *Config) { c.Search.DebounceMs = -5 }},
		{"bad digit mode", func(c *Config) { c.Normalize.Digits = "roman" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	svc := &configService{filePath: filepath.Join(t.TempDir(), "nope.toml")}

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveToPathCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "partscope.toml")
	svc := &configService{filePath: path}

	require.NoError(t, svc.Save(DefaultConfig()))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Search.PrimaryField, loaded.Search.PrimaryField)
	assert.Equal(t, path, svc.DefaultPath())
}
