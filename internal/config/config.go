package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"partscope/internal/search"
	"partscope/internal/textnorm"
)

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version"`
	DataFile  string          `toml:"data_file"`
	Search    SearchSettings  `toml:"search"`
	Normalize NormalizeFlags  `toml:"normalize"`
	Highlight HighlightConfig `toml:"highlight"`
	Messages  Messages        `toml:"messages"`
}

// SearchSettings configures matching behavior
type SearchSettings struct {
	PrimaryField    string   `toml:"primary_field"`
	SecondaryFields []string `toml:"secondary_fields"`
	MinChars        int      `toml:"min_chars"`
	DebounceMs      int      `toml:"debounce_ms"`
	MaxResults      int      `toml:"max_results"`
	Logic           string   `toml:"logic"`       // "AND" or "OR"
	MatchFrom       []string `toml:"match_from"`  // "startOfString", "startOfWord"
	EmptyQuery      string   `toml:"empty_query"` // "all" or "none"
}

// NormalizeFlags configures the text canonicalization pipeline
type NormalizeFlags struct {
	Trim               bool   `toml:"trim"`
	CollapseWhitespace bool   `toml:"collapse_whitespace"`
	CaseInsensitive    bool   `toml:"case_insensitive"`
	UnifyScript        bool   `toml:"unify_script"`
	StripDiacritics    bool   `toml:"strip_diacritics"`
	Digits             string `toml:"digits"` // "none", "persian", "arabic", "both"
}

// HighlightConfig configures match styling in the result list
type HighlightConfig struct {
	Enabled    bool   `toml:"enabled"`
	Foreground string `toml:"foreground"` // ANSI color for matched spans
	Bold       bool   `toml:"bold"`
}

// Messages are the localized status texts shown instead of results
type Messages struct {
	Initial   string `toml:"initial"`
	NoData    string `toml:"no_data"`
	NoResults string `toml:"no_results"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	DefaultPath() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	// SaveToPath creates the directory when it first writes
	appDir := filepath.Join(configDir, "partscope")

	return &configService{
		filePath: filepath.Join(appDir, "partscope.toml"),
	}
}

// DefaultPath returns the config file location used by Load and Save
func (cs *configService) DefaultPath() string {
	return cs.filePath
}

// Load loads the configuration from the default location, falling back
// to defaults when no file exists yet
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default location
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the enum-valued settings
func (c *Config) Validate() error {
	if c.Search.PrimaryField == "" {
		return fmt.Errorf("search.primary_field must be set")
	}
	if c.Search.Logic != "AND" && c.Search.Logic != "OR" {
		return fmt.Errorf("search.logic must be AND or OR, got %q", c.Search.Logic)
	}
	if c.Search.EmptyQuery != "all" && c.Search.EmptyQuery != "none" {
		return fmt.Errorf("search.empty_query must be all or none, got %q", c.Search.EmptyQuery)
	}
	if len(c.Search.MatchFrom) == 0 {
		return fmt.Errorf("search.match_from must list at least one strategy")
	}
	for _, from := range c.Search.MatchFrom {
		if from != "startOfString" && from != "startOfWord" {
			return fmt.Errorf("unknown search.match_from entry %q", from)
		}
	}
	if c.Search.MinChars < 0 {
		return fmt.Errorf("search.min_chars must not be negative")
	}
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive")
	}
	if c.Search.DebounceMs < 0 {
		return fmt.Errorf("search.debounce_ms must not be negative")
	}
	switch textnorm.DigitMode(c.Normalize.Digits) {
	case textnorm.DigitsNone, textnorm.DigitsPersian, textnorm.DigitsArabic, textnorm.DigitsBoth:
	default:
		return fmt.Errorf("unknown normalize.digits mode %q", c.Normalize.Digits)
	}
	return nil
}

// FieldKeys returns the configured keys in [primary, secondary...] order
func (c *Config) FieldKeys() []string {
	keys := make([]string, 0, 1+len(c.Search.SecondaryFields))
	keys = append(keys, c.Search.PrimaryField)
	keys = append(keys, c.Search.SecondaryFields...)
	return keys
}

// NormalizeOptions converts the flags into the textnorm pipeline options
func (c *Config) NormalizeOptions() textnorm.Options {
	return textnorm.Options{
		Trim:               c.Normalize.Trim,
		CollapseWhitespace: c.Normalize.CollapseWhitespace,
		CaseInsensitive:    c.Normalize.CaseInsensitive,
		UnifyScript:        c.Normalize.UnifyScript,
		StripDiacritics:    c.Normalize.StripDiacritics,
		Digits:             textnorm.DigitMode(c.Normalize.Digits),
	}
}

// SearchPolicy converts the config into the search service settings
func (c *Config) SearchPolicy() search.Settings {
	from := search.MatchFrom{}
	for _, entry := range c.Search.MatchFrom {
		switch entry {
		case "startOfString":
			from.StartOfString = true
		case "startOfWord":
			from.StartOfWord = true
		}
	}

	return search.Settings{
		Keys:          c.FieldKeys(),
		MinChars:      c.Search.MinChars,
		MaxResults:    c.Search.MaxResults,
		Logic:         search.Logic(c.Search.Logic),
		From:          from,
		EmptyQueryAll: c.Search.EmptyQuery == "all",
		Normalize:     c.NormalizeOptions(),
	}
}

// DefaultConfig returns the configuration used by the inventory panel
// when no file overrides it
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		DataFile: "inventory.xlsx",
		Search: SearchSettings{
			PrimaryField:    "شماره قطعه",
			SecondaryFields: []string{"نام کالا", "برند"},
			MinChars:        2,
			DebounceMs:      150,
			MaxResults:      30,
			Logic:           "AND",
			MatchFrom:       []string{"startOfString", "startOfWord"},
			EmptyQuery:      "none",
		},
		Normalize: NormalizeFlags{
			Trim:               true,
			CollapseWhitespace: true,
			CaseInsensitive:    true,
			UnifyScript:        true,
			StripDiacritics:    true,
			Digits:             "both",
		},
		Highlight: HighlightConfig{
			Enabled:    true,
			Foreground: "226",
			Bold:       true,
		},
		Messages: Messages{
			Initial:   "برای جستجو تایپ کنید",
			NoData:    "داده‌ای بارگذاری نشده است",
			NoResults: "موردی یافت نشد",
		},
	}
}
