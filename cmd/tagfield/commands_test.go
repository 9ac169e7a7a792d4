package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tagfield"
	"github.com/agiangrant/tagfield/flow"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    flow.Size
		wantErr bool
	}{
		{in: "40", want: flow.Size{Width: 40, Height: 20}},
		{in: "50x30", want: flow.Size{Width: 50, Height: 30}},
		{in: "12.5X8", want: flow.Size{Width: 12.5, Height: 8}},
		{in: "wide", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "10x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSize(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintLayout(t *testing.T) {
	items := []flow.Item{flow.Fixed{Width: 40, Height: 20}, flow.Fixed{Width: 40, Height: 20}, flow.Fixed{Width: 40, Height: 20}}
	l := flow.Layout{Alignment: flow.AlignLeading, Spacing: 10, LeadingInset: 30}

	var out bytes.Buffer
	printLayout(&out, l, 100, items)

	want := `size 100x50, 2 row(s), leading
row 0: items 0-1 width 90 height 20
  [0] x=30 y=0 w=40 h=20
  [1] x=80 y=0 w=40 h=20
row 1: items 2-2 width 40 height 20
  [2] x=30 y=30 w=40 h=20
`
	assert.Equal(t, want, out.String())
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagfield.toml")
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, runConfigInit(cmd, []string{path}))
	assert.Contains(t, out.String(), "Created")

	cfg, err := tagfield.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, tagfield.DefaultConfig(), cfg)

	err = runConfigInit(cmd, []string{path})
	assert.ErrorContains(t, err, "already exists")

	forceInit = true
	defer func() { forceInit = false }()
	require.NoError(t, os.WriteFile(path, []byte("junk"), 0644))
	require.NoError(t, runConfigInit(cmd, []string{path}))
}
