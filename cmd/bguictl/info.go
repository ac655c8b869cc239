package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/bgui"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Validate a BGUI file and report basic metadata",
		Long: `The info command parses a BGUI file and displays its container label,
magic, sprite binding, block layout and element/register counts.

Example:
  bguictl info HUDLayout.bgui
  bguictl info HUDLayout.bgui --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
}

func runInfo(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	f, err := bgui.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":            path,
			"size":            f.Size,
			"magic":           fmt.Sprintf("% X", f.Header.MagicRaw),
			"standardMagic":   f.Header.StandardMagic,
			"containerLabel":  f.Header.ContainerLabel,
			"spritePath":      f.Header.SpritePath,
			"headBytes":       f.Header.Span.Length,
			"bodyBytes":       f.BodySpan.Length,
			"registerBytes":   f.RegisterSpan.Length,
			"elements":        len(f.Elements),
			"registerEntries": len(f.Register),
			"manifestStrings": len(f.Manifest),
			"diagnostics":     f.Diagnostics(),
		})
	}

	printInfo("File:            %s (%d bytes)\n", path, f.Size)
	printInfo("Magic:           % X\n", f.Header.MagicRaw)
	if !f.Header.StandardMagic {
		printInfo("                 (non-standard)\n")
	}
	printInfo("Container label: %s\n", f.Header.ContainerLabel)
	if f.Header.SpritePresent {
		printInfo("Sprite path:     %s\n", f.Header.SpritePath)
	}
	printInfo("Head block:      %d bytes\n", f.Header.Span.Length)
	printInfo("Element body:    %d bytes at 0x%X\n", f.BodySpan.Length, f.BodySpan.Offset)
	printInfo("Register block:  %d bytes at 0x%X\n", f.RegisterSpan.Length, f.RegisterSpan.Offset)
	printInfo("Elements:        %d scanned, %d register entries\n", len(f.Elements), len(f.Register))
	if len(f.Manifest) > 0 {
		printInfo("Manifest:        %d strings\n", len(f.Manifest))
	}
	for _, d := range f.Diagnostics() {
		printInfo("%s\n", d.String())
	}
	return nil
}
