package lsp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/lexcodex/lenscope/lens"
)

func TestSymbolKindMapping(t *testing.T) {
	cases := map[protocol.SymbolKind]lens.SymbolKind{
		protocol.SymbolKindInterface:   lens.KindInterface,
		protocol.SymbolKindClass:       lens.KindClass,
		protocol.SymbolKindStruct:      lens.KindClass,
		protocol.SymbolKindMethod:      lens.KindMemberFunction,
		protocol.SymbolKindConstructor: lens.KindMemberFunction,
		protocol.SymbolKindProperty:    lens.KindMemberVariable,
		protocol.SymbolKindField:       lens.KindMemberVariable,
		protocol.SymbolKindVariable:    lens.KindUnknown,
		protocol.SymbolKindNamespace:   lens.KindUnknown,
	}
	for in, want := range cases {
		require.Equal(t, want, symbolKind(in), "kind=%v", in)
	}
}

func TestModifiersFromDetail(t *testing.T) {
	require.Equal(t, "export,abstract", modifiersFromDetail("export abstract class Base"))
	require.Equal(t, "abstract", modifiersFromDetail("(abstract) area(): number"))
	require.Empty(t, modifiersFromDetail("class AbstractFactory"))
	require.Empty(t, modifiersFromDetail(""))
}

func TestLocationSpanOneBased(t *testing.T) {
	loc := protocol.Location{
		URI: uri.File("/src/shape.ts"),
		Range: protocol.Range{
			Start: protocol.Position{Line: 4, Character: 2},
			End:   protocol.Position{Line: 7, Character: 0},
		},
	}
	span := locationSpan(loc)
	require.Equal(t, "/src/shape.ts", span.File)
	require.Equal(t, lens.ServicePosition{Line: 5, Offset: 3}, span.Start)
	require.Equal(t, lens.ServicePosition{Line: 8, Offset: 1}, span.End)
}

func TestWirePositionRoundTrip(t *testing.T) {
	pos := lens.ServicePosition{Line: 5, Offset: 3}
	wire := wirePosition(pos)
	require.Equal(t, uint32(4), wire.Line)
	require.Equal(t, uint32(2), wire.Character)
}

func TestSymbolNodeTree(t *testing.T) {
	sym := protocol.DocumentSymbol{
		Name:   "Base",
		Detail: "export abstract class Base",
		Kind:   protocol.SymbolKindClass,
		Range: protocol.Range{
			Start: protocol.Position{Line: 2},
			End:   protocol.Position{Line: 12},
		},
		SelectionRange: protocol.Range{
			Start: protocol.Position{Line: 2, Character: 22},
			End:   protocol.Position{Line: 2, Character: 26},
		},
		Children: []protocol.DocumentSymbol{
			{
				Name: "area",
				Kind: protocol.SymbolKindMethod,
				Range: protocol.Range{
					Start: protocol.Position{Line: 3, Character: 2},
					End:   protocol.Position{Line: 3, Character: 30},
				},
				SelectionRange: protocol.Range{
					Start: protocol.Position{Line: 3, Character: 11},
					End:   protocol.Position{Line: 3, Character: 15},
				},
			},
		},
	}

	node := symbolNode(&sym)
	require.Equal(t, lens.KindClass, node.Kind)
	require.Equal(t, "export,abstract", node.Modifiers)
	require.NotNil(t, node.NameSpan)
	require.Equal(t, lens.Position{Line: 2, Character: 22}, node.NameSpan.Start)
	require.Len(t, node.Children, 1)
	require.Equal(t, lens.KindMemberFunction, node.Children[0].Kind)

	// The classifier sees the converted tree directly.
	require.Equal(t, lens.AnchorNameRange, lens.Classify(node, nil))
	require.Equal(t, lens.AnchorNone, lens.Classify(node.Children[0], node))
}

func TestInferLanguage(t *testing.T) {
	require.Equal(t, "go", InferLanguage("/repo/main.go"))
	require.Equal(t, "ts", InferLanguage("shape.TS"))
	require.Equal(t, "clangd", InferLanguage("lib.hpp"))
	require.Empty(t, InferLanguage("README.md"))
	require.Empty(t, InferLanguage("Makefile"))
}

func TestLookupAliases(t *testing.T) {
	direct, ok := Lookup("go")
	require.True(t, ok)
	alias, ok := Lookup("gopls")
	require.True(t, ok)
	require.Equal(t, direct.Command, alias.Command)

	_, ok = Lookup("cobol")
	require.False(t, ok)
}
