package tui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cybrconsole/workflow"
)

var _ workflow.Reporter = (*Console)(nil)

func TestConsoleMessages(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.PhaseStarted("Initialization")
	c.Success("Environment setup complete")
	c.Failure("Disk full")
	c.Banner("Welcome to CybrConsole")

	out := buf.String()
	assert.Contains(t, out, "Running phase: Initialization")
	assert.Contains(t, out, "✔ Environment setup complete")
	assert.Contains(t, out, "✖ Disk full")
	assert.Contains(t, out, "Welcome to CybrConsole")
}

func TestProgressZeroTotalReturnsImmediately(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	require.NoError(t, c.Progress(context.Background(), "nothing", 0))
	assert.Empty(t, buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Progress(ctx, "nothing", 0), context.Canceled)
}

func TestPlainProgress(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, WithPlainProgress(true))

	require.NoError(t, c.Progress(context.Background(), "Generating report...", 75))
	assert.Contains(t, buf.String(), "Generating report... 100%")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	buf.Reset()
	assert.ErrorIs(t, c.Progress(ctx, "Cancelled", 10), context.Canceled)
	assert.Empty(t, buf.String())
}

func fixedStep(step float64) func(float64) float64 {
	return func(float64) float64 { return step }
}

func TestProgressModelAdvancesToTotal(t *testing.T) {
	m := newProgressModel("Working", 10, 0, 5, fixedStep(4))
	var model tea.Model = m

	model, cmd := model.Update(advanceMsg{})
	require.NotNil(t, cmd)
	assert.InDelta(t, 0.4, model.(progressModel).percent(), 1e-9)
	assert.False(t, model.(progressModel).finished)

	model, _ = model.Update(advanceMsg{})
	model, cmd = model.Update(advanceMsg{})
	pm := model.(progressModel)
	assert.True(t, pm.finished)
	assert.InDelta(t, 1.0, pm.percent(), 1e-9, "progress must be clamped to total")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, pm.View(), "100%")
	assert.Contains(t, pm.View(), "Working")
}

func TestProgressModelCtrlC(t *testing.T) {
	m := newProgressModel("Working", 10, 0, 5, fixedStep(1))

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, model.(progressModel).aborted)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestProgressModelResizesBar(t *testing.T) {
	m := newProgressModel("Working", 10, 0, 5, fixedStep(1))

	model, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxBarWidth, model.(progressModel).bar.Width)

	model, _ = m.Update(tea.WindowSizeMsg{Width: 15, Height: 40})
	assert.Equal(t, 10, model.(progressModel).bar.Width)
}

func TestSelectWithoutChoices(t *testing.T) {
	c := NewConsole(&bytes.Buffer{})

	_, err := c.Select(context.Background(), "Pick", nil)
	assert.ErrorIs(t, err, ErrNoChoices)

	_, err = c.MultiSelect(context.Background(), "Pick", []string{})
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestRenderTable(t *testing.T) {
	out := RenderTable("Sample Data", []string{"Name", "Age", "City"}, [][]string{
		{"Alice", "30", "New York"},
		{"Bob", "25", "Los Angeles"},
	})

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Sample Data")
	for _, want := range []string{"Name", "Age", "City", "Alice", "Los Angeles"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Alice"), strings.Index(out, "Bob"))
}

func TestRenderTableEmpty(t *testing.T) {
	out := RenderTable("Nothing", []string{"A"}, nil)
	assert.Contains(t, out, "No data to display")
	assert.NotContains(t, out, "Nothing")
}

func TestRowsFromMaps(t *testing.T) {
	header, rows := RowsFromMaps([]map[string]any{
		{"name": "Alice", "age": 30},
		{"name": "Bob", "extra": true},
	})

	assert.Equal(t, []string{"age", "name"}, header)
	assert.Equal(t, [][]string{{"30", "Alice"}, {"", "Bob"}}, rows)

	header, rows = RowsFromMaps(nil)
	assert.Nil(t, header)
	assert.Nil(t, rows)
}

func TestRenderTreeFromMaps(t *testing.T) {
	out := RenderTree("Project Structure", map[string]any{
		"src": map[string]any{
			"main.go": nil,
			"utils":   []string{"helper.go", "config.go"},
		},
		"docs": []any{"README.md"},
	})

	assert.Contains(t, out, "Project Structure")
	for _, want := range []string{"src", "main.go", "utils", "helper.go", "config.go", "docs", "README.md"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "docs"), strings.Index(out, "src"), "map keys are sorted")
	assert.Less(t, strings.Index(out, "utils"), strings.Index(out, "helper.go"))
}

func TestRenderTreeNilValues(t *testing.T) {
	out := RenderTree("Root", map[string]any{"main.go": nil})
	assert.Less(t, strings.Index(out, "main.go"), strings.Index(out, "null"))

	out = RenderTree("Root", nil)
	assert.Contains(t, out, "null")
}

func TestRenderTreeScalar(t *testing.T) {
	out := RenderTree("Root", 42)
	assert.Contains(t, out, "Root")
	assert.Contains(t, out, "42")
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestRenderTreeFromDocumentKeepsOrder(t *testing.T) {
	path := writeFile(t, "tree.yaml", `src:
  main.py: null
  utils: [helper.py, config.py]
tests: [test_main.py]
docs: [README.md, CONTRIBUTING.md]
`)
	doc, err := LoadDocument(path)
	require.NoError(t, err)

	out := RenderTree("Project Structure", doc)
	assert.Less(t, strings.Index(out, "src"), strings.Index(out, "tests"))
	assert.Less(t, strings.Index(out, "tests"), strings.Index(out, "docs"))
	assert.Contains(t, out, "main.py")
	assert.Contains(t, out, "CONTRIBUTING.md")
	assert.Less(t, strings.Index(out, "main.py"), strings.Index(out, "null"), "null value renders as a leaf under its key")
	assert.Equal(t, 1, strings.Count(out, "null"))
}

func TestRowsFromDocument(t *testing.T) {
	path := writeFile(t, "rows.yaml", `- {Name: Alice, Age: 30, City: New York}
- {Name: Bob, Age: 25, City: Los Angeles}
- {Name: Charlie, City: Chicago}
`)
	doc, err := LoadDocument(path)
	require.NoError(t, err)

	header, rows, err := RowsFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "City"}, header)
	assert.Equal(t, [][]string{
		{"Alice", "30", "New York"},
		{"Bob", "25", "Los Angeles"},
		{"Charlie", "", "Chicago"},
	}, rows)
}

func TestRowsFromDocumentRejectsMapping(t *testing.T) {
	doc, err := LoadDocument(writeFile(t, "bad.yaml", "name: Alice\n"))
	require.NoError(t, err)

	_, _, err = RowsFromDocument(doc)
	assert.Error(t, err)
}

func TestLoadDocumentErrors(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadDocument(writeFile(t, "broken.yaml", "a: [unterminated\n"))
	assert.Error(t, err)
}
