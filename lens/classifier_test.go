package lens

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyInterfaceAlwaysEligible(t *testing.T) {
	for _, mods := range []string{"", "export", "abstract", "declare,export"} {
		node := &SymbolNode{Name: "Shape", Kind: KindInterface, Modifiers: mods}
		require.Equal(t, AnchorNameRange, Classify(node, nil), "modifiers=%q", mods)
	}
}

func TestClassifyAbstractMembers(t *testing.T) {
	kinds := []SymbolKind{
		KindClass,
		KindMemberFunction,
		KindMemberVariable,
		KindMemberGetAccessor,
		KindMemberSetAccessor,
	}
	parent := &SymbolNode{Name: "Base", Kind: KindClass, Modifiers: "abstract"}
	for _, kind := range kinds {
		abstract := &SymbolNode{Name: "m", Kind: kind, Modifiers: "abstract"}
		require.Equal(t, AnchorNameRange, Classify(abstract, parent), "kind=%s", kind)

		concrete := &SymbolNode{Name: "m", Kind: kind, Modifiers: "export,static"}
		require.Equal(t, AnchorNone, Classify(concrete, parent), "kind=%s", kind)
	}
}

func TestClassifyAbstractIsWholeWord(t *testing.T) {
	cases := map[string]AnchorPolicy{
		"abstract":          AnchorNameRange,
		"export,abstract":   AnchorNameRange,
		"abstract static":   AnchorNameRange,
		"abstractfoo":       AnchorNone,
		"fooabstract":       AnchorNone,
		"semiabstract,pure": AnchorNone,
		"Abstract":          AnchorNone, // case-sensitive
		"":                  AnchorNone,
	}
	for mods, want := range cases {
		node := &SymbolNode{Name: "Base", Kind: KindClass, Modifiers: mods}
		require.Equal(t, want, Classify(node, nil), "modifiers=%q", mods)
	}
}

func TestClassifyOtherKindsIneligible(t *testing.T) {
	for _, kind := range []SymbolKind{KindUnknown, "variable", "function", "enum"} {
		node := &SymbolNode{Name: "x", Kind: kind, Modifiers: "abstract"}
		require.Equal(t, AnchorNone, Classify(node, nil), "kind=%s", kind)
	}
	require.Equal(t, AnchorNone, Classify(nil, nil))
}
