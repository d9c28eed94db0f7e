package lens

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func rangePtr(r Range) *Range { return &r }

func TestCollectAnchorsWalksTree(t *testing.T) {
	root := &SymbolNode{
		Name: "mod.ts",
		Children: []*SymbolNode{
			{
				Name: "Shape",
				Kind: KindInterface,
				Span: Range{Start: Position{Line: 1}, End: Position{Line: 5}},
				NameSpan: rangePtr(Range{
					Start: Position{Line: 1, Character: 10},
					End:   Position{Line: 1, Character: 15},
				}),
			},
			{
				Name:      "Base",
				Kind:      KindClass,
				Modifiers: "abstract,export",
				Span:      Range{Start: Position{Line: 7}, End: Position{Line: 20}},
				Children: []*SymbolNode{
					{
						Name:      "area",
						Kind:      KindMemberFunction,
						Modifiers: "abstract",
						Span:      Range{Start: Position{Line: 8}, End: Position{Line: 8, Character: 30}},
					},
					{
						Name: "describe",
						Kind: KindMemberFunction,
						Span: Range{Start: Position{Line: 10}, End: Position{Line: 14}},
					},
				},
			},
			{
				Name: "Circle",
				Kind: KindClass,
				Span: Range{Start: Position{Line: 22}, End: Position{Line: 30}},
			},
		},
	}

	lenses := CollectAnchors("mod.ts", root, NameSpanRanger{})
	require.Len(t, lenses, 3)

	require.Equal(t, "Shape", lenses[0].Symbol)
	require.Equal(t, *root.Children[0].NameSpan, lenses[0].Anchor.Range, "name span wins when present")

	require.Equal(t, "Base", lenses[1].Symbol)
	require.Equal(t, root.Children[1].Span, lenses[1].Anchor.Range, "falls back to the declaration span")

	require.Equal(t, "area", lenses[2].Symbol)
	for _, l := range lenses {
		require.Equal(t, "mod.ts", l.Anchor.File)
		require.Equal(t, StateUnresolved, l.State())
	}
}

func TestCollectAnchorsNilTree(t *testing.T) {
	require.Nil(t, CollectAnchors("mod.ts", nil, NameSpanRanger{}))
}

func TestLensStateTransitions(t *testing.T) {
	l := &Lens{Anchor: Anchor{File: "a.ts"}, Symbol: "Shape", Kind: KindInterface}

	ok := NewResolver(&stubService{spans: []FileSpan{span("b.ts", 3, 1, 3, 9)}}, quietLogger())
	result := l.Resolve(context.Background(), ok)
	require.Equal(t, StateResolved, l.State())
	require.Equal(t, "1 implementation", result.Label)

	stored, outcome := l.Result()
	require.Equal(t, result, stored)
	require.Equal(t, OutcomeResolved, outcome)

	// A later re-resolution is a fresh attempt and may fail independently.
	failing := NewResolver(&stubService{err: errors.New("gone")}, quietLogger())
	result = l.Resolve(context.Background(), failing)
	require.Equal(t, StateFailed, l.State())
	require.Equal(t, FailureLabel, result.Label)

	_, outcome = l.Result()
	require.Equal(t, OutcomeQueryFailed, outcome)
}
