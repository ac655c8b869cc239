package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/bgui"
)

func init() {
	rootCmd.AddCommand(newManifestCmd())
}

func newManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <file>",
		Short: "List the manifest string table",
		Long: `The manifest command lists the asset strings (fonts, sprite sheets,
shared textures) carried by the file's manifest record, when one exists.

Example:
  bguictl manifest HUDLayout.bgui`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(args)
		},
	}
}

func runManifest(args []string) error {
	path := args[0]
	printVerbose("Opening file: %s\n", path)

	f, err := bgui.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(f.Manifest)
	}
	if len(f.Manifest) == 0 {
		printInfo("no manifest record\n")
		return nil
	}
	for _, m := range f.Manifest {
		printInfo("0x%-8X %s\n", m.Span.Offset, m.Value)
	}
	return nil
}
