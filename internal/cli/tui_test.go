package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphinsight/pkg/graph"
	"github.com/matzehuels/graphinsight/pkg/io"
	"github.com/matzehuels/graphinsight/pkg/samples"
)

func loadSample(t *testing.T, name string) *graph.Document {
	t.Helper()
	data, err := samples.Get(name)
	require.NoError(t, err)
	doc, err := io.Parse(data, io.Options{})
	require.NoError(t, err)
	return doc
}

func press(m tea.Model, key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up":
		return m.Update(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		return m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func TestExploreModelTree(t *testing.T) {
	m := NewExploreModel("taxonomy", loadSample(t, "taxonomy"))
	require.Len(t, m.Items, 11)
	assert.Equal(t, "Animalia", m.Items[0].title)
	assert.Equal(t, 2, m.Items[2].depth, "Mammalia sits two levels below the root")

	view := m.View()
	assert.Contains(t, view, "Animalia")
	assert.Contains(t, view, "3 dims")
	assert.Contains(t, view, `"kingdom"`)
}

func TestExploreModelFlat(t *testing.T) {
	m := NewExploreModel("network", loadSample(t, "network"))
	require.Len(t, m.Items, 10)
	assert.Equal(t, "#0 User submits a graph document", m.Items[0].title)

	// node 1 fans out to 2, 3 and 4
	assert.Contains(t, m.Items[1].details, []string{"out", "2, 3, 4"})
	assert.Contains(t, m.Items[1].details, []string{"in", "0"})
	assert.Contains(t, m.Items[9].details, []string{"out", "—"})
}

func TestExploreModelNavigation(t *testing.T) {
	var model tea.Model = NewExploreModel("minimal", loadSample(t, "minimal"))

	model, _ = press(model, "up")
	assert.Equal(t, 0, model.(ExploreModel).Cursor, "cursor stays at the top")

	model, _ = press(model, "down")
	assert.Equal(t, 1, model.(ExploreModel).Cursor)
	assert.Contains(t, model.View(), "[2/2]")

	model, _ = press(model, "down")
	assert.Equal(t, 1, model.(ExploreModel).Cursor, "cursor stays at the bottom")

	model, _ = press(model, "g")
	assert.Equal(t, 0, model.(ExploreModel).Cursor)

	_, cmd := press(model, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestExploreModelScrolling(t *testing.T) {
	var model tea.Model = NewExploreModel("taxonomy", loadSample(t, "taxonomy"))
	model, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 4})

	m := model.(ExploreModel)
	assert.Equal(t, 5, m.Height, "height has a floor")

	model, _ = press(model, "G")
	m = model.(ExploreModel)
	assert.Equal(t, 10, m.Cursor)
	assert.Equal(t, 6, m.Offset)
}

func TestExploreModelEmpty(t *testing.T) {
	m := NewExploreModel("empty", &graph.Document{})
	assert.Contains(t, m.View(), "(no nodes)")
	m.move(1)
	assert.Equal(t, 0, m.Cursor)
}
