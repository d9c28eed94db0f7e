package lens

// Position is a zero-based line/character pair, the coordinate form used for
// display output and jump commands.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// ServicePosition is the one-based line/offset form spoken by the language
// analysis service.
type ServicePosition struct {
	Line   int `json:"line"`
	Offset int `json:"offset"`
}

// Display converts a service coordinate to display form.
func (p ServicePosition) Display() Position {
	return Position{Line: p.Line - 1, Character: p.Offset - 1}
}

// Service converts a display position to the service form.
func (p Position) Service() ServicePosition {
	return ServicePosition{Line: p.Line + 1, Offset: p.Character + 1}
}

// Range is a half-open text span in display coordinates.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// FileSpan is one raw hit from the service: a file plus a one-based span.
type FileSpan struct {
	File  string
	Start ServicePosition
	End   ServicePosition
}

// SymbolKind enumerates the declaration kinds the classifier understands.
// Providers map their own vocabulary onto these; anything they cannot map
// becomes KindUnknown and is never annotated.
type SymbolKind string

const (
	KindClass             SymbolKind = "class"
	KindInterface         SymbolKind = "interface"
	KindMemberFunction    SymbolKind = "memberFunction"
	KindMemberVariable    SymbolKind = "memberVariable"
	KindMemberGetAccessor SymbolKind = "memberGetAccessor"
	KindMemberSetAccessor SymbolKind = "memberSetAccessor"
	KindUnknown           SymbolKind = ""
)

// SymbolNode is an immutable snapshot of one declared symbol as reported by
// the navigation-tree provider. Modifiers carries the provider's raw
// modifier string (comma or space separated tokens). NameSpan is the
// identifier span when the provider reports one.
type SymbolNode struct {
	Name      string
	Kind      SymbolKind
	Modifiers string
	Span      Range
	NameSpan  *Range
	Children  []*SymbolNode
}
