package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// chromeHeight is the number of lines used by the title and help footer.
	chromeHeight = 4
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// TUI implements Browser using Bubble Tea.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI reading keys from input and drawing to output.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// Browse runs the interactive browser until the user quits or ctx ends.
func (t *TUI) Browse(ctx context.Context, entries []BrowseEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(t.output, "No demos available.")
		return err
	}

	program := tea.NewProgram(
		newBrowserModel(entries),
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}

		return fmt.Errorf("browser: %w", err)
	}

	return nil
}

// browserModel is the Bubble Tea model behind TUI.
type browserModel struct {
	entries  []BrowseEntry
	cursor   int
	viewing  bool
	viewport viewport.Model
	width    int
	height   int
	quitting bool
}

func newBrowserModel(entries []BrowseEntry) browserModel {
	return browserModel{
		entries:  entries,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (bm browserModel) Init() tea.Cmd {
	return nil
}

func (bm browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.viewport.Width = msg.Width
		bm.viewport.Height = max(msg.Height-chromeHeight, 1)

		return bm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			bm.quitting = true
			return bm, tea.Quit
		}

		if bm.viewing {
			return bm.handleReportKey(msg)
		}

		return bm.handleListKey(msg)
	}

	return bm, nil
}

func (bm browserModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		bm.quitting = true
		return bm, tea.Quit

	case "down", "j":
		if bm.cursor < len(bm.entries)-1 {
			bm.cursor++
		}

	case "up", "k":
		if bm.cursor > 0 {
			bm.cursor--
		}

	case "enter", " ":
		bm.viewing = true
		bm.viewport.SetContent(bm.entries[bm.cursor].Report.Text())
		bm.viewport.GotoTop()
	}

	return bm, nil
}

func (bm browserModel) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		bm.quitting = true
		return bm, tea.Quit

	case "esc", "backspace", "left", "h":
		bm.viewing = false
		return bm, nil
	}

	var cmd tea.Cmd
	bm.viewport, cmd = bm.viewport.Update(msg)

	return bm, cmd
}

func (bm browserModel) View() string {
	if bm.quitting {
		return ""
	}

	if bm.viewing {
		return bm.reportView()
	}

	return bm.listView()
}

func (bm browserModel) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("jdemo"))
	b.WriteString("\n\n")

	for i, entry := range bm.entries {
		line := fmt.Sprintf("%-12s %s", entry.Info.Name, entry.Info.Title)
		if i == bm.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ select • enter open • q quit"))
	b.WriteString("\n")

	return b.String()
}

func (bm browserModel) reportView() string {
	var b strings.Builder

	entry := bm.entries[bm.cursor]

	b.WriteString(titleStyle.Render(entry.Info.Title))
	b.WriteString("\n\n")
	b.WriteString(bm.viewport.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%3.f%% • esc back • q quit", bm.viewport.ScrollPercent()*100)))
	b.WriteString("\n")

	return b.String()
}
