package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/tagfield"
	"github.com/agiangrant/tagfield/flow"
	"github.com/agiangrant/tagfield/internal/logging"
	"github.com/agiangrant/tagfield/internal/tui"
)

// Command flags
var (
	configPath string
	logLevel   string
	logFile    string
	seedTags   []string

	layoutWidth   float32
	layoutSpacing float32
	layoutInset   float32
	layoutAlign   string

	forceInit bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default tagfield.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default $TAGFIELD_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "tagfield.log", "Log file; the demo owns the terminal")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

// demoCmd runs the interactive terminal demo
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Edit tags interactively in the terminal",
	Long: `Run a tag field in the terminal.

Tab focuses the trailing chip, typing edits it and the delimiter (comma by
default) turns it into a tag. Backspace in an empty chip goes back to the
previous tag. Esc leaves the field; ctrl+c quits and prints the tags.`,
	Example: `  # Start empty
  tagfield demo

  # Start with tags and debug logging
  tagfield demo --tag go --tag rust --log-level debug`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringSliceVar(&seedTags, "tag", nil, "Initial tag (repeatable)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel, logFile); err != nil {
		return err
	}
	defer logging.Sync()

	cfg, err := tagfield.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logging.Info("starting demo", zap.String("config", configPath), zap.Strings("tags", seedTags))

	p := tea.NewProgram(tui.New(cfg, seedTags...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		for _, t := range m.Tags() {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
	}
	return nil
}

// layoutCmd prints a flow layout
var layoutCmd = &cobra.Command{
	Use:   "layout SIZE...",
	Short: "Print the flow layout of items",
	Long: `Place items of the given sizes into rows and print the result.

Each SIZE is WIDTH or WIDTHxHEIGHT; the height defaults to 20.`,
	Example: `  # Three 40 wide items in a 100 wide box
  tagfield layout --width 100 40 40 40

  # Trailing alignment, mixed heights
  tagfield layout --width 200 --align trailing 50x20 50x30`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().Float32Var(&layoutWidth, "width", 320, "Container width")
	layoutCmd.Flags().Float32Var(&layoutSpacing, "spacing", flow.DefaultSpacing, "Spacing between items and rows")
	layoutCmd.Flags().Float32Var(&layoutInset, "inset", flow.DefaultLeadingInset, "Leading inset")
	layoutCmd.Flags().StringVar(&layoutAlign, "align", "center", "Alignment: leading, trailing, center")
}

func runLayout(cmd *cobra.Command, args []string) error {
	align, err := flow.ParseAlignment(layoutAlign)
	if err != nil {
		return err
	}
	if layoutWidth < 0 || layoutSpacing < 0 {
		return errors.New("width and spacing must not be negative")
	}

	items := make([]flow.Item, len(args))
	for i, arg := range args {
		size, err := parseSize(arg)
		if err != nil {
			return err
		}
		items[i] = flow.Fixed(size)
	}

	l := flow.Layout{Alignment: align, Spacing: layoutSpacing, LeadingInset: layoutInset}
	printLayout(cmd.OutOrStdout(), l, layoutWidth, items)
	return nil
}

func printLayout(w io.Writer, l flow.Layout, width float32, items []flow.Item) {
	p := flow.Proposal{Width: width}
	rows := l.Rows(width, p, items)
	size := l.Measure(p, items)
	placements := l.Place(flow.Rect{Width: width, Height: size.Height}, p, items)

	fmt.Fprintf(w, "size %gx%g, %d row(s), %s\n", size.Width, size.Height, len(rows), l.Alignment)
	for i, row := range rows {
		fmt.Fprintf(w, "row %d: items %d-%d width %g height %g\n", i, row.Start, row.End-1, row.Width, row.Height)
		for _, pl := range placements[row.Start:row.End] {
			fmt.Fprintf(w, "  [%d] x=%g y=%g w=%g h=%g\n", pl.Index, pl.Origin.X, pl.Origin.Y, pl.Size.Width, pl.Size.Height)
		}
	}
}

// parseSize reads "W" or "WxH".
func parseSize(s string) (flow.Size, error) {
	size := flow.Size{Height: 20}
	ws, hs, hasHeight := strings.Cut(strings.ToLower(s), "x")

	w, err := strconv.ParseFloat(ws, 32)
	if err != nil || w < 0 {
		return size, fmt.Errorf("invalid size %q: width must be a non-negative number", s)
	}
	size.Width = float32(w)

	if hasHeight {
		h, err := strconv.ParseFloat(hs, 32)
		if err != nil || h < 0 {
			return size, fmt.Errorf("invalid size %q: height must be a non-negative number", s)
		}
		size.Height = float32(h)
	}
	return size, nil
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tagfield.toml configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write the default configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := tagfield.DefaultConfigFile
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := tagfield.SaveConfig(path, tagfield.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
