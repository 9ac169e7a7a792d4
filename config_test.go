package tagfield

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tagfield/flow"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, flow.AlignLeading, cfg.Layout.Alignment)
	assert.Equal(t, ",", cfg.Input.Delimiter)
	assert.True(t, cfg.Input.ContinueAfterSplit)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)

	want := DefaultConfig()
	want.Layout.Alignment = flow.AlignTrailing
	want.Layout.Spacing = 6
	want.Input.Delimiter = ";"
	want.Input.MaxTags = 5
	want.Chip.FontName = "Menlo"

	require.NoError(t, SaveConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	data := `
[layout]
alignment = "center"

[input]
hint = "Label"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, flow.AlignCenter, cfg.Layout.Alignment)
	assert.Equal(t, "Label", cfg.Input.Hint)
	// Unset keys keep their defaults.
	assert.Equal(t, flow.DefaultSpacing, cfg.Layout.Spacing)
	assert.Equal(t, ",", cfg.Input.Delimiter)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{
			name: "syntax error",
			data: "[layout\n",
		},
		{
			name: "unknown alignment",
			data: "[layout]\nalignment = \"diagonal\"\n",
		},
		{
			name:    "negative spacing",
			data:    "[layout]\nspacing = -1.0\n",
			invalid: true,
		},
		{
			name:    "zero font size",
			data:    "[chip]\nfont_size = 0.0\n",
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.Delimiter = " "
	cfg.Input.MaxTags = -1
	cfg.Field.PaddingX = -4

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "input.delimiter")
	assert.Contains(t, err.Error(), "input.max_tags")
	assert.Contains(t, err.Error(), "field padding")
}

func TestConfigRulesAndLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.MaxTags = 3

	rules := cfg.Rules()
	assert.Equal(t, ",", rules.Delimiter)
	assert.Equal(t, 3, rules.MaxTags)

	layout := cfg.FlowLayout()
	assert.Equal(t, flow.AlignLeading, layout.Alignment)
	assert.Equal(t, flow.DefaultLeadingInset, layout.LeadingInset)
	assert.Nil(t, layout.Logger)
}
