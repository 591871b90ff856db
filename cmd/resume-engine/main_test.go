// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestBuildConfig(t *testing.T) {
	viper.Set("output", "out/cv.tex")
	viper.Set("delims.left", "[[")
	viper.Set("sanitize.record_fields", []string{"experience", "projects"})
	viper.Set("history.enabled", true)
	t.Cleanup(func() {
		viper.Set("output", "")
		viper.Set("delims.left", "")
		viper.Set("sanitize.record_fields", nil)
		viper.Set("history.enabled", false)
	})

	cfg := buildConfig("cv.yaml")
	assert.Equal(t, "cv.yaml", cfg.InputPath)
	assert.Equal(t, "out/cv.tex", cfg.OutputPath)
	assert.Equal(t, "basic", cfg.Render.Template)
	assert.Equal(t, "[[", cfg.Render.Delims.Left)
	assert.Equal(t, []string{"experience", "projects"}, cfg.Sanitize.RecordFields)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, ".resume-engine", cfg.History.Dir)
}
