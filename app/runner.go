// Package app runs the fixed application sequence: a banner, one
// "Processing" line per artifact, and a completion footer.
package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const (
	Banner = "=== Python to C++ Converted Application ==="
	Footer = "Application completed successfully!"
)

// Artifact is a source file the run announces. It is never opened.
type Artifact struct {
	Path string
}

// Manifest is the ordered list of artifacts announced by a run.
type Manifest []Artifact

// DefaultManifest returns the artifacts announced by the application.
func DefaultManifest() Manifest {
	return Manifest{
		{Path: "FinancialMetricsAnalyzer/.streamlit/config.toml"},
		{Path: "FinancialMetricsAnalyzer/app.py"},
		{Path: "FinancialMetricsAnalyzer/components/calculator.py"},
	}
}

// Runner writes the run sequence for a manifest.
type Runner struct {
	manifest Manifest
	logger   *zap.Logger
}

// NewRunner creates a runner. A nil logger discards diagnostics.
func NewRunner(manifest Manifest, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{manifest: manifest, logger: logger}
}

// Run writes the banner, the artifact lines and the footer to w.
// Diagnostics go to the logger only.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	r.logger.Debug("run starting", zap.Int("artifacts", len(r.manifest)))

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Banner); err != nil {
		return fmt.Errorf("writing banner: %w", err)
	}

	for _, a := range r.manifest {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.logger.Debug("processing artifact", zap.String("path", a.Path))
		if _, err := fmt.Fprintf(w, "Processing %s...\n", a.Path); err != nil {
			return fmt.Errorf("processing %s: %w", a.Path, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Footer); err != nil {
		return fmt.Errorf("writing footer: %w", err)
	}

	r.logger.Debug("run complete")
	return nil
}
