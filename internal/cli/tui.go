package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/graphinsight/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	panelStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1).
				MarginLeft(2)
)

const maxValueWidth = 48

// =============================================================================
// ExploreModel - Interactive node browser
// =============================================================================

// exploreItem is one selectable row: a tree node or a flat graph node.
type exploreItem struct {
	title   string
	depth   int
	details [][]string // label, value
}

// ExploreModel is the bubbletea model for browsing a document's nodes.
type ExploreModel struct {
	Title  string
	Items  []exploreItem
	Cursor int
	Height int
	Offset int
}

// NewExploreModel creates an explore model listing the nodes of doc.
// Tree nodes appear in pre-order, indented by depth; flat graph nodes appear
// in input order with their neighbors in the details panel.
func NewExploreModel(title string, doc *graph.Document) ExploreModel {
	var items []exploreItem
	switch {
	case doc.IsTree():
		items = treeItems(doc.Tree)
	case doc.IsFlat():
		items = flatItems(doc.Flat)
	}
	return ExploreModel{Title: title, Items: items, Height: 15}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown", " ":
			m.move(m.Height)
		case "home", "g":
			m.move(-len(m.Items))
		case "end", "G":
			m.move(len(m.Items))
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the list, and scrolls the
// window so the cursor stays visible.
func (m *ExploreModel) move(delta int) {
	if len(m.Items) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Items)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  pgup/pgdn page  g/G ends  q quit"))
	b.WriteString("\n\n")

	if len(m.Items) == 0 {
		b.WriteString(listDimStyle.Render("  (no nodes)"))
		b.WriteString("\n")
		return b.String()
	}

	var list strings.Builder
	end := min(m.Offset+m.Height, len(m.Items))
	for i := m.Offset; i < end; i++ {
		it := m.Items[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		list.WriteString(style.Render(cursor + strings.Repeat("  ", it.depth) + it.title))
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), m.detailsView()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))))
	return b.String()
}

func (m ExploreModel) detailsView() string {
	it := m.Items[m.Cursor]
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Rows(it.details...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleLabel.PaddingRight(1)
			}
			return StyleValue
		})
	return panelStyle.Render(StyleHighlight.Render(it.title) + "\n" + t.Render())
}

// =============================================================================
// Item Builders
// =============================================================================

func treeItems(root *graph.TreeNode) []exploreItem {
	var items []exploreItem
	root.Walk(func(n *graph.TreeNode, depth int) bool {
		details := [][]string{
			{"depth", strconv.Itoa(depth)},
			{"children", strconv.Itoa(len(n.Children))},
			{"embedding", embeddingSummary(n.Embedding)},
		}
		details = append(details, metadataRows(n.Metadata)...)
		items = append(items, exploreItem{title: n.Name, depth: depth, details: details})
		return true
	})
	return items
}

func flatItems(g *graph.Graph) []exploreItem {
	out := make(map[int64][]string)
	in := make(map[int64][]string)
	for _, e := range g.Edges {
		out[e.SourceID] = append(out[e.SourceID], strconv.FormatInt(e.TargetID, 10))
		in[e.TargetID] = append(in[e.TargetID], strconv.FormatInt(e.SourceID, 10))
	}

	items := make([]exploreItem, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		details := [][]string{
			{"id", strconv.FormatInt(n.ID, 10)},
			{"out", idList(out[n.ID])},
			{"in", idList(in[n.ID])},
		}
		details = append(details, metadataRows(n.Extra)...)
		items = append(items, exploreItem{
			title:   fmt.Sprintf("#%d %s", n.ID, n.SemanticSummary),
			details: details,
		})
	}
	return items
}

func embeddingSummary(e []float64) string {
	if e == nil {
		return "none"
	}
	return fmt.Sprintf("%d dims", len(e))
}

func idList(ids []string) string {
	if len(ids) == 0 {
		return "—"
	}
	return truncate(strings.Join(ids, ", "))
}

// metadataRows renders each metadata entry as compact JSON, sorted by key.
func metadataRows(meta map[string]any) [][]string {
	rows := make([][]string, 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		data, err := json.Marshal(meta[k])
		v := string(data)
		if err != nil {
			v = fmt.Sprint(meta[k])
		}
		rows = append(rows, []string{k, truncate(v)})
	}
	return rows
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxValueWidth {
		return s
	}
	return string(r[:maxValueWidth-1]) + "…"
}
