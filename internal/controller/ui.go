// Package controller provides output adapters for displaying demo reports.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "jdemo.dev/pkg/jdemo/internal/model"
)

// UI defines how reports and the demo catalog are written.
// Implementations can use different output methods (plain text, tables, YAML).
type UI interface {
	DisplayReports(ctx context.Context, reports []m.Report, format m.Format) error
	DisplayCatalog(ctx context.Context, demos []m.DemoInfo) error
}

// BrowseEntry is one demo offered by a Browser, with its precomputed report.
type BrowseEntry struct {
	Info   m.DemoInfo
	Report m.Report
}

// Browser lets the user pick demos and read their reports interactively.
type Browser interface {
	Browse(ctx context.Context, entries []BrowseEntry) error
}

// NewUI returns the UI used by the command line.
func NewUI(cmd *cobra.Command) UI {
	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
