// Package domain runs the demos and hands their reports to the UI.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"jdemo.dev/pkg/jdemo/internal/controller"
	"jdemo.dev/pkg/jdemo/internal/domain/conversion"
	m "jdemo.dev/pkg/jdemo/internal/model"
)

// RunArgs contains the arguments for running demos.
type RunArgs struct {
	Names  []string
	Format m.Format
}

// ConvertArgs contains the arguments for a single conversion.
type ConvertArgs struct {
	From   string
	To     string
	Value  string
	Format m.Format
}

// Workflow defines the operations behind the command line.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context) error
	Convert(ctx context.Context, args ConvertArgs) error
	Browse(ctx context.Context) error
}

type workflow struct {
	controller.UI
	controller.Browser
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(ui controller.UI, browser controller.Browser) Workflow {
	return &workflow{
		UI:      ui,
		Browser: browser,
	}
}

// Run executes the named demos and displays their reports in request order.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	demos, err := Lookup(args.Names)
	if err != nil {
		return err
	}

	slog.Debug("Running demos", "count", len(demos), "format", args.Format)

	reports, err := runDemos(ctx, demos)
	if err != nil {
		return fmt.Errorf("run demos: %w", err)
	}

	return w.DisplayReports(ctx, reports, args.Format)
}

// List displays the demo catalog.
func (w *workflow) List(ctx context.Context) error {
	return w.DisplayCatalog(ctx, catalogInfo())
}

// Convert casts a single literal and displays the result.
func (w *workflow) Convert(ctx context.Context, args ConvertArgs) error {
	from, err := conversion.ParseKind(args.From)
	if err != nil {
		return fmt.Errorf("source kind: %w", err)
	}

	to, err := conversion.ParseKind(args.To)
	if err != nil {
		return fmt.Errorf("target kind: %w", err)
	}

	source, err := conversion.ParseValue(from, args.Value)
	if err != nil {
		return err
	}

	slog.Debug("Converting value", "from", from, "to", to, "value", args.Value)

	report := m.Report{
		Name:     "convert",
		Sections: []m.Section{conversion.Section(source, to)},
	}

	return w.DisplayReports(ctx, []m.Report{report}, args.Format)
}

// Browse opens the interactive browser over the whole catalog.
func (w *workflow) Browse(ctx context.Context) error {
	demos := Catalog()

	reports, err := runDemos(ctx, demos)
	if err != nil {
		return fmt.Errorf("run demos: %w", err)
	}

	entries := make([]controller.BrowseEntry, 0, len(demos))
	for i, demo := range demos {
		entries = append(entries, controller.BrowseEntry{Info: demo.Info(), Report: reports[i]})
	}

	return w.Browser.Browse(ctx, entries)
}

// runDemos runs every demo on its own goroutine. Each demo builds its own
// report, so results only meet in the indexed slice.
func runDemos(ctx context.Context, demos []Demo) ([]m.Report, error) {
	reports := make([]m.Report, len(demos))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, demo := range demos {
		i, demo := i, demo
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			reports[i] = demo.Run()
			slog.Debug("Demo finished", "name", demo.Name, "sections", len(reports[i].Sections))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func catalogInfo() []m.DemoInfo {
	demos := Catalog()

	infos := make([]m.DemoInfo, 0, len(demos))
	for _, demo := range demos {
		infos = append(infos, demo.Info())
	}

	return infos
}
