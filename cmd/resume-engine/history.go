// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-engine/internal/history"
	"github.com/pdiddy/resume-engine/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded builds, most recent first",
	Long: `History lists builds recorded by "render --history" (or history.enabled
in the config file), with the input digest so that an output can be traced
back to the exact input that produced it.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of builds to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(types.HistoryConfig{Enabled: true, Dir: viper.GetString("history.dir")})
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no builds recorded")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBUILT\tINPUT\tDIGEST\tTEMPLATE\tOUTPUT\tBYTES")
	for _, e := range entries {
		output := e.OutputPath
		if output == "" {
			output = "(stdout)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.12s\t%s\t%s\t%d\n",
			e.ID, e.BuiltAt.Local().Format(time.DateTime), e.InputPath, e.InputDigest, e.Template, output, e.Bytes)
	}
	return tw.Flush()
}
