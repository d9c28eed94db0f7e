package lsp

import (
	"strings"
	"unicode"

	"go.lsp.dev/protocol"

	"github.com/lexcodex/lenscope/lens"
)

// symbolKind maps the LSP symbol vocabulary onto the classifier's.
func symbolKind(kind protocol.SymbolKind) lens.SymbolKind {
	switch kind {
	case protocol.SymbolKindClass, protocol.SymbolKindStruct:
		return lens.KindClass
	case protocol.SymbolKindInterface:
		return lens.KindInterface
	case protocol.SymbolKindMethod, protocol.SymbolKindConstructor, protocol.SymbolKindFunction:
		return lens.KindMemberFunction
	case protocol.SymbolKindProperty, protocol.SymbolKindField:
		return lens.KindMemberVariable
	default:
		return lens.KindUnknown
	}
}

// Modifier keywords recognized in a symbol's detail string. LSP has no
// kindModifiers field, so the free-form detail is the closest signal most
// servers expose; servers that put nothing there yield lenses only on
// interfaces, which is the correct degradation.
var modifierTokens = map[string]bool{
	"abstract":  true,
	"static":    true,
	"export":    true,
	"declare":   true,
	"public":    true,
	"private":   true,
	"protected": true,
	"readonly":  true,
}

func modifiersFromDetail(detail string) string {
	if detail == "" {
		return ""
	}
	var mods []string
	tokens := strings.FieldsFunc(detail, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		if modifierTokens[tok] {
			mods = append(mods, tok)
		}
	}
	return strings.Join(mods, ",")
}

func symbolNode(sym *protocol.DocumentSymbol) *lens.SymbolNode {
	nameSpan := displayRange(sym.SelectionRange)
	node := &lens.SymbolNode{
		Name:      sym.Name,
		Kind:      symbolKind(sym.Kind),
		Modifiers: modifiersFromDetail(sym.Detail),
		Span:      displayRange(sym.Range),
		NameSpan:  &nameSpan,
	}
	for i := range sym.Children {
		node.Children = append(node.Children, symbolNode(&sym.Children[i]))
	}
	return node
}

// displayRange carries an LSP range (already zero-based) into the lens
// coordinate type unchanged.
func displayRange(rng protocol.Range) lens.Range {
	return lens.Range{
		Start: lens.Position{Line: int(rng.Start.Line), Character: int(rng.Start.Character)},
		End:   lens.Position{Line: int(rng.End.Line), Character: int(rng.End.Character)},
	}
}

// locationSpan converts a zero-based LSP location to the one-based span
// form the resolver expects from the service boundary.
func locationSpan(loc protocol.Location) lens.FileSpan {
	return lens.FileSpan{
		File: loc.URI.Filename(),
		Start: lens.ServicePosition{
			Line:   int(loc.Range.Start.Line) + 1,
			Offset: int(loc.Range.Start.Character) + 1,
		},
		End: lens.ServicePosition{
			Line:   int(loc.Range.End.Line) + 1,
			Offset: int(loc.Range.End.Character) + 1,
		},
	}
}

// wirePosition converts a one-based service position to the zero-based
// protocol form.
func wirePosition(pos lens.ServicePosition) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Offset - 1),
	}
}
