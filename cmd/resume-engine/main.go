// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the resume-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-engine/internal/render"
	"github.com/pdiddy/resume-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRunE from --log-level.
var logger = zerolog.Nop()

// rootCmd is the base command for the resume-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "resume-engine",
	Short: "Render a YAML résumé into a LaTeX document",
	Long: `resume-engine turns a structured résumé (YAML or JSON) into a LaTeX
document. Text is escaped for LaTeX, **bold** spans become \textbf{...},
and YYYY-MM dates in experience and education become "Month YYYY".

Compile the resulting .tex file with pdflatex or any other LaTeX engine.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug().Str("file", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./resume-engine.yaml or ~/.config/resume-engine/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("template", render.DefaultTemplate)
	viper.SetDefault("history.dir", ".resume-engine")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("resume-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "resume-engine"))
		}
	}

	viper.SetEnvPrefix("RESUME_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

// buildConfig assembles the pipeline configuration for input from viper,
// which already merges flags, environment, and the config file.
func buildConfig(input string) types.BuildConfig {
	return types.BuildConfig{
		InputPath:  input,
		OutputPath: viper.GetString("output"),
		Render: types.RenderConfig{
			Template:     viper.GetString("template"),
			TemplatePath: viper.GetString("template_path"),
			Delims: types.Delims{
				Left:  viper.GetString("delims.left"),
				Right: viper.GetString("delims.right"),
			},
		},
		Sanitize: types.SanitizeConfig{
			RecordFields: viper.GetStringSlice("sanitize.record_fields"),
			DateFields:   viper.GetStringSlice("sanitize.date_fields"),
		},
		History: types.HistoryConfig{
			Enabled: viper.GetBool("history.enabled"),
			Dir:     viper.GetString("history.dir"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
