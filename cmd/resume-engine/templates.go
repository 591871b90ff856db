// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-engine/internal/render"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range render.Templates() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
