package lens

import (
	"context"
	"sync"
)

// State tracks where a lens is in its lifecycle.
type State int

const (
	StateUnresolved State = iota
	StateResolving
	StateResolved
	StateFailed
)

// Lens is one placed annotation. A lens never retries on its own; the
// driver owns re-triggering, and a repeated Resolve starts a fresh attempt
// against the service rather than replaying a cached result.
type Lens struct {
	Anchor Anchor
	Symbol string
	Kind   SymbolKind

	mu      sync.Mutex
	state   State
	result  LensResult
	outcome Outcome
}

// State returns the lens's current lifecycle state.
func (l *Lens) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Result returns the last resolution's result and outcome. Meaningful only
// once State is StateResolved or StateFailed.
func (l *Lens) Result() (LensResult, Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.result, l.outcome
}

// Resolve runs one resolution through r and records the outcome.
func (l *Lens) Resolve(ctx context.Context, r *Resolver) LensResult {
	l.mu.Lock()
	l.state = StateResolving
	l.mu.Unlock()

	result, outcome := r.Resolve(ctx, l.Anchor)

	l.mu.Lock()
	l.result = result
	l.outcome = outcome
	if outcome == OutcomeResolved {
		l.state = StateResolved
	} else {
		l.state = StateFailed
	}
	l.mu.Unlock()
	return result
}

// SymbolRanger narrows a declaration to the span its lens should anchor to.
// Anchoring falls back to the full declaration range when the ranger
// reports no narrower span.
type SymbolRanger interface {
	SymbolRange(file string, node *SymbolNode) (Range, bool)
}

// NameSpanRanger anchors to the identifier span reported by the symbol
// provider.
type NameSpanRanger struct{}

func (NameSpanRanger) SymbolRange(file string, node *SymbolNode) (Range, bool) {
	if node != nil && node.NameSpan != nil {
		return *node.NameSpan, true
	}
	return Range{}, false
}

// CollectAnchors walks the symbol tree and places a lens on every eligible
// declaration. The anchor range is fixed here, by classifier policy alone;
// query results never move it.
func CollectAnchors(file string, root *SymbolNode, ranger SymbolRanger) []*Lens {
	if root == nil {
		return nil
	}
	var lenses []*Lens
	var walk func(node, parent *SymbolNode)
	walk = func(node, parent *SymbolNode) {
		if policy := Classify(node, parent); policy != AnchorNone {
			lenses = append(lenses, &Lens{
				Anchor: Anchor{File: file, Range: anchorRange(file, node, policy, ranger)},
				Symbol: node.Name,
				Kind:   node.Kind,
			})
		}
		for _, child := range node.Children {
			walk(child, node)
		}
	}
	walk(root, nil)
	return lenses
}

func anchorRange(file string, node *SymbolNode, policy AnchorPolicy, ranger SymbolRanger) Range {
	if policy == AnchorNameRange && ranger != nil {
		if rng, ok := ranger.SymbolRange(file, node); ok {
			return rng
		}
	}
	return node.Span
}
