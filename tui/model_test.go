package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/lexcodex/lenscope/lens"
)

func testItems() []Item {
	return []Item{
		{
			Lens:   &lens.Lens{Anchor: lens.Anchor{File: "shape.ts", Range: lens.Range{Start: lens.Position{Line: 1, Character: 10}}}, Symbol: "Shape", Kind: lens.KindInterface},
			Result: lens.LensResult{Label: "2 implementations", Command: lens.CommandShowLocations, Targets: []lens.JumpTarget{{File: "circle.ts"}, {File: "square.ts"}}},
		},
		{
			Lens:    &lens.Lens{Anchor: lens.Anchor{File: "shape.ts", Range: lens.Range{Start: lens.Position{Line: 7, Character: 11}}}, Symbol: "Base", Kind: lens.KindClass},
			Result:  lens.LensResult{Label: lens.FailureLabel},
			Outcome: lens.OutcomeQueryFailed,
		},
	}
}

func TestModelScanAndNavigate(t *testing.T) {
	scan := func(ctx context.Context) ([]Item, error) { return testItems(), nil }
	m := NewModel("shape.ts", scan)
	require.True(t, m.scanning)

	updated, _ := m.Update(scanDoneMsg{items: testItems()})
	model := updated.(Model)
	require.False(t, model.scanning)
	require.Len(t, model.items, 2)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(Model)
	require.Equal(t, 1, model.cursor)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(Model)
	require.True(t, model.expanded[1])

	view := model.View()
	require.Contains(t, view, "Shape")
	require.Contains(t, view, "2 implementations")
	require.Contains(t, view, lens.FailureLabel)
	require.Contains(t, view, "nothing to jump to")
}
