package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned when an output format name is not recognized.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how reports are written.
type Format string

const (
	// FormatText prints the reports exactly as the demo programs do.
	FormatText Format = "text"
	// FormatTable prints one table per section.
	FormatTable Format = "table"
	// FormatYAML prints the reports as a YAML document.
	FormatYAML Format = "yaml"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatYAML}
}

// ParseFormat resolves a format name. An empty name selects FormatText.
func ParseFormat(value string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return FormatText, nil
	}

	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
}

// DemoInfo describes a runnable demo.
type DemoInfo struct {
	Name        string
	Title       string
	Description string
	Sections    int
}
