package lens

import "regexp"

// AnchorPolicy says where an eligible symbol's lens attaches.
type AnchorPolicy int

const (
	// AnchorNone marks the symbol ineligible.
	AnchorNone AnchorPolicy = iota
	// AnchorFullRange attaches to the whole declaration.
	AnchorFullRange
	// AnchorNameRange attaches to the identifier span only.
	AnchorNameRange
)

// abstract must appear as a standalone token: "abstractfoo" does not count.
var abstractModifier = regexp.MustCompile(`\babstract\b`)

// Classify decides whether a symbol gets an implementations lens and which
// range it anchors to. Interfaces always qualify. Classes and members
// qualify only when declared abstract: a concrete member cannot be
// implemented, so the affordance would be noise. parent is part of the
// tree-walk contract; no current rule consults it.
func Classify(node, parent *SymbolNode) AnchorPolicy {
	if node == nil {
		return AnchorNone
	}
	switch node.Kind {
	case KindInterface:
		return AnchorNameRange
	case KindClass, KindMemberFunction, KindMemberVariable, KindMemberGetAccessor, KindMemberSetAccessor:
		if abstractModifier.MatchString(node.Modifiers) {
			return AnchorNameRange
		}
	}
	return AnchorNone
}
