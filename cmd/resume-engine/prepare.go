// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-engine/internal/build"
	"github.com/pdiddy/resume-engine/internal/document"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare <resume.yaml>",
	Short: "Print the sanitized document that templates receive",
	Long: `Prepare runs the same derive and sanitize steps as render but prints the
resulting document instead of rendering a template. Use it to check how a
field will appear in the LaTeX output.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().String("format", "yaml", "output format: yaml or spew")
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := buildConfig(args[0])
	cfg.History.Enabled = false
	b, err := build.New(cfg, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	doc, _, err := b.Prepare()
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		out, err := document.Encode(doc)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	case "spew":
		spew.Fdump(os.Stdout, doc.Interface())
		return nil
	default:
		return fmt.Errorf("unknown format %q: use yaml or spew", format)
	}
}
