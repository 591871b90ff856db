// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build runs the résumé pipeline: load the input document, derive
// display fields, sanitize, render the LaTeX template, and write the output.
package build

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/resume-engine/internal/derive"
	"github.com/pdiddy/resume-engine/internal/document"
	"github.com/pdiddy/resume-engine/internal/history"
	"github.com/pdiddy/resume-engine/internal/render"
	"github.com/pdiddy/resume-engine/internal/sanitize"
	"github.com/pdiddy/resume-engine/pkg/types"
)

// Result summarizes one build.
type Result struct {
	InputPath   string
	InputDigest string
	Template    string
	OutputPath  string
	Bytes       int64
	Duration    time.Duration
	HistoryID   int64
}

// Builder holds the configured pipeline stages. The derive and sanitize
// stages are shared; the template is parsed on every build so that edits
// are picked up in watch mode.
type Builder struct {
	cfg       types.BuildConfig
	deriver   *derive.Deriver
	sanitizer *sanitize.Sanitizer
	history   *history.Store
	log       zerolog.Logger
}

// New returns a Builder for cfg. When history is enabled the database is
// opened here; call Close to release it.
func New(cfg types.BuildConfig, log zerolog.Logger) (*Builder, error) {
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("no input document given")
	}

	records := cfg.Sanitize.RecordFields
	if len(records) == 0 {
		records = sanitize.DefaultRecordFields
	}
	dates := cfg.Sanitize.DateFields
	if len(dates) == 0 {
		dates = sanitize.DefaultDateFields
	}

	b := &Builder{
		cfg:       cfg,
		deriver:   derive.New(nil),
		sanitizer: sanitize.New(sanitize.RecordRules(records, dates)),
		log:       log,
	}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History)
		if err != nil {
			return nil, err
		}
		b.history = store
	}
	return b, nil
}

// Close releases the history database, if any.
func (b *Builder) Close() error {
	if b.history == nil {
		return nil
	}
	return b.history.Close()
}

// Prepare loads the input document and returns it derived and sanitized,
// together with the SHA-256 digest of the input file.
func (b *Builder) Prepare() (*types.Mapping, string, error) {
	data, err := os.ReadFile(b.cfg.InputPath)
	if err != nil {
		return nil, "", fmt.Errorf("reading input: %w", err)
	}
	doc, err := document.Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", b.cfg.InputPath, err)
	}
	sum := sha256.Sum256(data)
	return b.sanitizer.Document(b.deriver.Fields(doc)), hex.EncodeToString(sum[:]), nil
}

// Build runs the full pipeline once. Output goes to the configured path, or
// to stdout when no output path is set.
func (b *Builder) Build(ctx context.Context, stdout io.Writer) (Result, error) {
	start := time.Now()

	doc, digest, err := b.Prepare()
	if err != nil {
		return Result{}, err
	}

	r, err := render.New(b.cfg.Render)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, doc); err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{
		InputPath:   b.cfg.InputPath,
		InputDigest: digest,
		Template:    r.Name(),
		OutputPath:  b.cfg.OutputPath,
		Bytes:       int64(buf.Len()),
	}

	if b.cfg.OutputPath == "" {
		if _, err := buf.WriteTo(stdout); err != nil {
			return Result{}, fmt.Errorf("writing output: %w", err)
		}
	} else if err := writeFile(b.cfg.OutputPath, buf.Bytes()); err != nil {
		return Result{}, err
	}

	if b.history != nil {
		id, err := b.history.Record(ctx, history.Entry{
			InputPath:   res.InputPath,
			InputDigest: res.InputDigest,
			Template:    res.Template,
			OutputPath:  res.OutputPath,
			Bytes:       res.Bytes,
			BuiltAt:     start,
		})
		if err != nil {
			b.log.Warn().Err(err).Msg("build not recorded in history")
		}
		res.HistoryID = id
	}

	res.Duration = time.Since(start)
	b.log.Info().
		Str("input", res.InputPath).
		Str("template", res.Template).
		Str("output", res.OutputPath).
		Int64("bytes", res.Bytes).
		Dur("took", res.Duration).
		Msg("rendered")
	return res, nil
}

// History returns up to limit recorded builds, most recent first.
func (b *Builder) History(ctx context.Context, limit int) ([]history.Entry, error) {
	if b.history == nil {
		return nil, fmt.Errorf("history is disabled")
	}
	return b.history.List(ctx, limit)
}

// writeFile writes data to a temporary file next to path and renames it
// into place, so readers never see a partial document.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
