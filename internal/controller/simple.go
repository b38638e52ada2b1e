package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "jdemo.dev/pkg/jdemo/internal/model"
)

const yamlIndent = 2

// SimpleUI implements UI by writing to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReports writes the reports in the requested format. Text output is
// exactly what the demo programs print, with one empty line between reports.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report, format m.Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case m.FormatText, "":
		return s.writeText(reports)
	case m.FormatTable:
		return s.writeTables(reports)
	case m.FormatYAML:
		return s.writeYAML(reports)
	}

	return fmt.Errorf("%w: %q", m.ErrUnknownFormat, format)
}

// DisplayCatalog prints the available demos as a table.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, demos []m.DemoInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(renderCatalogTable(demos))
}

func (s *SimpleUI) writeText(reports []m.Report) error {
	var b bytes.Buffer

	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(report.Text())
	}

	return s.write(b.String())
}

func (s *SimpleUI) writeTables(reports []m.Report) error {
	var b bytes.Buffer

	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		for j, section := range report.Sections {
			if j > 0 {
				b.WriteString("\n")
			}

			b.WriteString(section.Heading())
			b.WriteString("\n")
			b.WriteString(renderSectionTable(section))
		}
	}

	return s.write(b.String())
}

func (s *SimpleUI) writeYAML(reports []m.Report) error {
	var b bytes.Buffer

	encoder := yaml.NewEncoder(&b)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}

	return s.write(b.String())
}

func (s *SimpleUI) write(text string) error {
	_, err := io.WriteString(s.cmd.OutOrStdout(), text)
	return err
}

func renderSectionTable(section m.Section) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Label", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, line := range section.Lines {
		table.Append([]string{line.Label, line.Value})
	}

	table.Render()

	return tableBuffer.String()
}

func renderCatalogTable(demos []m.DemoInfo) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Name", "Title", "Sections", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, demo := range demos {
		table.Append([]string{demo.Name, demo.Title, strconv.Itoa(demo.Sections), demo.Description})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Demos %d", len(demos)), "", "", ""})

	table.Render()

	return tableBuffer.String()
}
