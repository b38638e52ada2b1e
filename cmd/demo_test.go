package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"jdemo.dev/pkg/jdemo/internal/controller"
	"jdemo.dev/pkg/jdemo/internal/domain"
	domainmocks "jdemo.dev/pkg/jdemo/internal/domain/mocks"
	m "jdemo.dev/pkg/jdemo/internal/model"
)

type stubBrowser struct {
	called bool
}

func (s *stubBrowser) Browse(_ context.Context, _ []controller.BrowseEntry) error {
	s.called = true
	return nil
}

// newTestRoot builds a fresh root with the given subcommands and a real
// workflow writing into the returned buffer.
func newTestRoot(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	for _, sub := range subcommands {
		cmd.AddCommand(sub)
	}

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(controller.NewUI(cmd), &stubBrowser{})
	t.Cleanup(func() { workflow = originalWorkflow })

	return cmd, out
}

func demoByName(t *testing.T, name string) domain.Demo {
	t.Helper()

	demos, err := domain.Lookup([]string{name})
	require.NoError(t, err)

	return demos[0]
}

func TestConversionCmd_PrintsProgramOutput(t *testing.T) {
	cmd, out := newTestRoot(t, newDemoCmd(demoByName(t, "conversion")))

	cmd.SetArgs([]string{"conversion"})
	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "======= Int - Valor Inicial: 1\nLong: 1\nDouble: 1.0\n"))
	assert.Contains(t, output, "\n======= Float - Valor Inicial: 1.1\nInt: 1\nLong: 1\nDouble: 1.100000023841858\n")
	assert.True(t, strings.HasSuffix(output, "======= Double - Valor Inicial: 1.1\nInt: 1\nLong: 1\nFloat: 1.1\n"))
}

func TestJumpCmd_PrintsProgramOutput(t *testing.T) {
	cmd, out := newTestRoot(t, newDemoCmd(demoByName(t, "jump")))

	cmd.SetArgs([]string{"jump"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")

	require.Len(t, lines, 29)
	assert.Equal(t, "======= Teste GOTO", lines[0])
	assert.Equal(t, "0", lines[1])
	assert.Equal(t, "9", lines[10])
	assert.Equal(t, "0", lines[11])
	assert.Equal(t, "9", lines[20])
	assert.Equal(t, "Goto funcionando", lines[21])
	assert.Equal(t, "", lines[22])
	assert.Equal(t, "======= Teste jsr e ret", lines[23])
	assert.Equal(t, "Retorno correto", lines[24])
	assert.Equal(t, "Jsr e ret funcionando", lines[25])
	assert.Equal(t, "", lines[26])
	assert.Equal(t, "======= Teste Tabbleswitch", lines[27])
	assert.Equal(t, "2 2", lines[28])
}

func TestJumpCmd_EndsWithSelectedCase(t *testing.T) {
	cmd, out := newTestRoot(t, newDemoCmd(demoByName(t, "jump")))

	cmd.SetArgs([]string{"jump"})
	require.NoError(t, cmd.Execute())

	assert.True(t, strings.HasSuffix(out.String(), "======= Teste Tabbleswitch\n2 2\n"))
}

func TestDemoCmd_RejectsArguments(t *testing.T) {
	cmd, _ := newTestRoot(t, newDemoCmd(demoByName(t, "jump")))

	cmd.SetArgs([]string{"jump", "extra"})
	require.Error(t, cmd.Execute())
}

func TestDemoCmd_YAMLFormat(t *testing.T) {
	cmd, out := newTestRoot(t, newDemoCmd(demoByName(t, "conversion")))

	cmd.SetArgs([]string{"conversion", "--format", "yaml"})
	require.NoError(t, cmd.Execute())

	var reports []m.Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "conversion", reports[0].Name)
	assert.Len(t, reports[0].Sections, 4)
}

func TestDemoCmd_TableFormat(t *testing.T) {
	cmd, out := newTestRoot(t, newDemoCmd(demoByName(t, "jump")))

	cmd.SetArgs([]string{"jump", "-f", "table"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "======= Teste jsr e ret")
	assert.Contains(t, out.String(), "Jsr e ret funcionando")
}

func TestDemoCmd_UnknownFormat(t *testing.T) {
	cmd, out := newTestRoot(t, newDemoCmd(demoByName(t, "jump")))

	cmd.SetArgs([]string{"jump", "--format", "xml"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, m.ErrUnknownFormat))
	assert.NotContains(t, out.String(), "=======")
}

func TestDemoCmd_PassesNameAndFormat(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newDemoCmd(demoByName(t, "conversion")))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Names) == 1 && args.Names[0] == "conversion" && args.Format == m.FormatTable
	})).Return(nil)

	cmd.SetArgs([]string{"conversion", "--format", "table"})
	require.NoError(t, cmd.Execute())
}

func TestAllCmd_RunsNamedDemosInOrder(t *testing.T) {
	cmd, out := newTestRoot(t, newAllCmd())

	cmd.SetArgs([]string{"all", "jump", "conversion"})
	require.NoError(t, cmd.Execute())

	output := out.String()
	jumpAt := strings.Index(output, "======= Teste GOTO")
	conversionAt := strings.Index(output, "======= Int - Valor Inicial: 1")

	require.GreaterOrEqual(t, jumpAt, 0)
	require.GreaterOrEqual(t, conversionAt, 0)
	assert.Less(t, jumpAt, conversionAt)
	assert.Contains(t, output, "2 2\n\n======= Int - Valor Inicial: 1\n")
}

func TestAllCmd_DefaultsToEveryDemo(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newAllCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Names) == 0 && args.Format == m.FormatText
	})).Return(nil)

	cmd.SetArgs([]string{"all"})
	require.NoError(t, cmd.Execute())
}

func TestAllCmd_UnknownDemo(t *testing.T) {
	cmd, _ := newTestRoot(t, newAllCmd())

	cmd.SetArgs([]string{"all", "nope"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownDemo))
}
