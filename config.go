package tagfield

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/tagfield/flow"
	"github.com/agiangrant/tagfield/tags"
)

// ErrInvalidConfig wraps every validation failure reported by Config.Validate.
var ErrInvalidConfig = errors.New("invalid tagfield config")

// DefaultConfigFile is the file name LoadConfig and SaveConfig use when given an empty path.
const DefaultConfigFile = "tagfield.toml"

// Config represents the tagfield.toml configuration file
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Input  InputConfig  `toml:"input"`
	Chip   ChipConfig   `toml:"chip"`
	Field  FieldConfig  `toml:"field"`
}

// LayoutConfig configures the flow layout of the chips.
type LayoutConfig struct {
	// leading, trailing or center
	Alignment flow.Alignment `toml:"alignment"`
	// Gap between chips and between rows
	Spacing float32 `toml:"spacing"`
	// Left margin for leading and center alignment
	LeadingInset float32 `toml:"leading_inset"`
}

// InputConfig configures how keystrokes become tags.
type InputConfig struct {
	// Character that ends a tag
	Delimiter string `toml:"delimiter"`
	// Hint shown in an empty chip
	Hint string `toml:"hint"`
	// Move the keyboard to the fresh placeholder after a split
	ContinueAfterSplit bool `toml:"continue_after_split"`
	// Maximum number of tags (0 = unlimited)
	MaxTags int `toml:"max_tags"`
	// Maximum characters per tag (0 = unlimited)
	MaxLength int `toml:"max_length"`
}

// ChipConfig sizes individual chips.
type ChipConfig struct {
	FontName     string  `toml:"font_name"`
	FontSize     float32 `toml:"font_size"`
	PaddingX     float32 `toml:"padding_x"`
	PaddingY     float32 `toml:"padding_y"`
	CornerRadius float32 `toml:"corner_radius"`
}

// FieldConfig sizes the box around all chips.
type FieldConfig struct {
	PaddingX     float32 `toml:"padding_x"`
	PaddingY     float32 `toml:"padding_y"`
	CornerRadius float32 `toml:"corner_radius"`
}

// DefaultConfig returns a leading-aligned field that splits on commas.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			Alignment:    flow.AlignLeading,
			Spacing:      flow.DefaultSpacing,
			LeadingInset: flow.DefaultLeadingInset,
		},
		Input: InputConfig{
			Delimiter:          tags.DefaultDelimiter,
			Hint:               "Tag",
			ContinueAfterSplit: true,
		},
		Chip: ChipConfig{
			FontName:     "system",
			FontSize:     17,
			PaddingX:     10,
			PaddingY:     10,
			CornerRadius: 5,
		},
		Field: FieldConfig{
			PaddingX:     15,
			PaddingY:     10,
			CornerRadius: 12,
		},
	}
}

// Validate reports every problem with the config, each wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Layout.Spacing >= 0, "layout.spacing must not be negative (got %v)", c.Layout.Spacing)
	check(c.Layout.LeadingInset >= 0, "layout.leading_inset must not be negative (got %v)", c.Layout.LeadingInset)
	check(c.Input.Delimiter != "", "input.delimiter must not be empty")
	check(c.Input.Delimiter != " ", "input.delimiter must not be a space; tags are trimmed")
	check(c.Input.MaxTags >= 0, "input.max_tags must not be negative (got %d)", c.Input.MaxTags)
	check(c.Input.MaxLength >= 0, "input.max_length must not be negative (got %d)", c.Input.MaxLength)
	check(c.Chip.FontSize > 0, "chip.font_size must be positive (got %v)", c.Chip.FontSize)
	check(c.Chip.PaddingX >= 0 && c.Chip.PaddingY >= 0, "chip padding must not be negative")
	check(c.Field.PaddingX >= 0 && c.Field.PaddingY >= 0, "field padding must not be negative")

	return errors.Join(errs...)
}

// Rules returns the reducer rules this config implies.
func (c Config) Rules() tags.Rules {
	return tags.Rules{Delimiter: c.Input.Delimiter, MaxTags: c.Input.MaxTags}
}

// FlowLayout returns the flow layout this config implies.
func (c Config) FlowLayout() flow.Layout {
	return flow.Layout{
		Alignment:    c.Layout.Alignment,
		Spacing:      c.Layout.Spacing,
		LeadingInset: c.Layout.LeadingInset,
	}
}

// LoadConfig loads the configuration from path (tagfield.toml when empty).
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	if config.Input.Delimiter == "" {
		config.Input.Delimiter = tags.DefaultDelimiter
	}
	if config.Chip.FontName == "" {
		config.Chip.FontName = "system"
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes the configuration to path (tagfield.toml when empty).
func SaveConfig(path string, config Config) error {
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
