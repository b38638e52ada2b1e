// Package model defines the data structures shared by the demos and their outputs.
package model

import "strings"

// SectionPrefix is printed in front of every section heading.
const SectionPrefix = "======= "

const (
	labelSeparator = ": "
	pairSeparator  = " "
)

// Line is a single printed line of a demo.
//
// Plain lines carry only a Value. Labeled lines render as "Label: Value",
// pair lines as "Label Value".
type Line struct {
	Label string `yaml:"label,omitempty"`
	Value string `yaml:"value"`
	sep   string
}

// Entry builds a "Label: Value" line.
func Entry(label, value string) Line {
	return Line{Label: label, Value: value, sep: labelSeparator}
}

// Pair builds a "Label Value" line.
func Pair(label, value string) Line {
	return Line{Label: label, Value: value, sep: pairSeparator}
}

// Plain builds an unlabeled line.
func Plain(value string) Line {
	return Line{Value: value}
}

// Text returns the line exactly as it is printed.
func (l Line) Text() string {
	if l.Label == "" {
		return l.Value
	}

	sep := l.sep
	if sep == "" {
		sep = labelSeparator
	}

	return l.Label + sep + l.Value
}

// Section is a headed group of lines.
type Section struct {
	Title string `yaml:"title"`
	Lines []Line `yaml:"lines"`
}

// Heading returns the printed section heading.
func (s Section) Heading() string {
	return SectionPrefix + s.Title
}

// Println appends a plain line, so a Section can act as an ordered console.
func (s *Section) Println(text string) {
	s.Lines = append(s.Lines, Plain(text))
}

// Add appends already built lines.
func (s *Section) Add(lines ...Line) {
	s.Lines = append(s.Lines, lines...)
}

// Report is the complete output of one demo run.
type Report struct {
	Name     string    `yaml:"name"`
	Sections []Section `yaml:"sections"`
}

// Text renders the report as console output. Sections after the first are
// preceded by an empty line.
func (r Report) Text() string {
	var b strings.Builder

	for i, section := range r.Sections {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(section.Heading())
		b.WriteString("\n")

		for _, line := range section.Lines {
			b.WriteString(line.Text())
			b.WriteString("\n")
		}
	}

	return b.String()
}
