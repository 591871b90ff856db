// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last file event before a
// rebuild starts. Editors commonly emit several events per save.
const DefaultDebounce = 200 * time.Millisecond

// Watch builds once, then rebuilds whenever the input document or an
// on-disk template changes, until ctx is cancelled. Build failures are
// logged and do not stop the watch. onBuild, when non-nil, is called after
// every successful build.
func (b *Builder) Watch(ctx context.Context, stdout io.Writer, debounce time.Duration, onBuild func(Result)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	// Directories are watched instead of files because editors often
	// replace a file by renaming a new one over it.
	targets := make(map[string]bool)
	for _, p := range b.watchedFiles() {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		targets[abs] = true
	}
	dirs := make(map[string]bool)
	for p := range targets {
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	rebuild := func() {
		res, err := b.Build(ctx, stdout)
		if err != nil {
			if ctx.Err() == nil {
				b.log.Error().Err(err).Msg("build failed")
			}
			return
		}
		if onBuild != nil {
			onBuild(res)
		}
	}

	rebuild()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !targets[abs] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			b.log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("change detected")
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			b.log.Warn().Err(err).Msg("watch error")
		case <-timer.C:
			rebuild()
		}
	}
}

func (b *Builder) watchedFiles() []string {
	files := []string{b.cfg.InputPath}
	if b.cfg.Render.TemplatePath != "" {
		files = append(files, b.cfg.Render.TemplatePath)
	}
	return files
}
