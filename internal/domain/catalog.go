package domain

import (
	"errors"
	"fmt"

	"jdemo.dev/pkg/jdemo/internal/domain/controlflow"
	"jdemo.dev/pkg/jdemo/internal/domain/conversion"
	m "jdemo.dev/pkg/jdemo/internal/model"
)

// ErrUnknownDemo is returned when a demo name is not in the catalog.
var ErrUnknownDemo = errors.New("unknown demo")

// Demo is a runnable demonstration.
type Demo struct {
	Name        string
	Title       string
	Description string
	Run         func() m.Report
}

// Info describes the demo without running it.
func (d Demo) Info() m.DemoInfo {
	return m.DemoInfo{
		Name:        d.Name,
		Title:       d.Title,
		Description: d.Description,
		Sections:    len(d.Run().Sections),
	}
}

// Catalog returns every demo in display order.
func Catalog() []Demo {
	return []Demo{
		{
			Name:        conversion.DemoName,
			Title:       "Numeric type conversions",
			Description: "casts between int, long, float, double, byte, char and short",
			Run:         conversion.Demo,
		},
		{
			Name:        controlflow.DemoName,
			Title:       "Control flow",
			Description: "counting loops, a subroutine with cleanup and a multi-way branch",
			Run:         controlflow.Demo,
		},
	}
}

// Lookup resolves demo names against the catalog, keeping the requested
// order. No names selects the whole catalog.
func Lookup(names []string) ([]Demo, error) {
	catalog := Catalog()
	if len(names) == 0 {
		return catalog, nil
	}

	byName := make(map[string]Demo, len(catalog))
	for _, demo := range catalog {
		byName[demo.Name] = demo
	}

	demos := make([]Demo, 0, len(names))

	for _, name := range names {
		demo, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
		}

		demos = append(demos, demo)
	}

	return demos, nil
}
