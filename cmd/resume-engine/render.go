// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-engine/internal/build"
)

var renderCmd = &cobra.Command{
	Use:   "render <resume.yaml>",
	Short: "Render a résumé into a LaTeX document",
	Long: `Render loads a résumé document, derives display fields for LinkedIn and
GitHub profile URLs, escapes every string for LaTeX, formats record dates,
and substitutes the result into a template.

The output goes to --output, or to stdout when no output path is given.
With --watch the document is rebuilt whenever the input or template file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringP("template", "t", "", "built-in template: basic or two_column")
	f.String("template-path", "", "template file on disk (overrides --template)")
	f.StringP("output", "o", "", "output .tex file (default: stdout)")
	f.Bool("history", false, "record the build in the history database")
	f.Bool("watch", false, "rebuild when the input or template changes")
	f.Duration("debounce", build.DefaultDebounce, "quiet period before a rebuild in watch mode")

	_ = viper.BindPFlag("template", f.Lookup("template"))
	_ = viper.BindPFlag("template_path", f.Lookup("template-path"))
	_ = viper.BindPFlag("output", f.Lookup("output"))
	_ = viper.BindPFlag("history.enabled", f.Lookup("history"))

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	b, err := build.New(buildConfig(args[0]), logger)
	if err != nil {
		return err
	}
	defer b.Close()

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		_, err := b.Build(cmd.Context(), os.Stdout)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	debounce, _ := cmd.Flags().GetDuration("debounce")
	logger.Info().Str("input", args[0]).Msg("watching for changes, press Ctrl-C to stop")
	return b.Watch(ctx, os.Stdout, debounce, nil)
}
