package lens

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// FailureLabel is rendered when the implementation count could not be
// determined, whatever the cause.
const FailureLabel = "Could not determine implementations"

// CommandShowLocations is bound to lenses with at least one jump target.
// A lens with an empty Command is a no-op.
const CommandShowLocations = "lenscope.showLocations"

// Outcome classifies how one resolution ended. Every outcome except
// OutcomeResolved renders as FailureLabel; the distinction exists for
// logging and the audit trail, never for the rendering layer.
type Outcome int

const (
	OutcomeResolved Outcome = iota
	OutcomeCancelled
	OutcomeQueryFailed
	OutcomeNoData
)

func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeQueryFailed:
		return "query_failed"
	case OutcomeNoData:
		return "no_data"
	default:
		return "unknown"
	}
}

// Anchor ties a lens to a document position. Range is the span the lens
// visually attaches to, in display coordinates; its start is what gets
// forwarded to the service.
type Anchor struct {
	File  string
	Range Range
}

// JumpTarget is one display-ready implementation location.
type JumpTarget struct {
	File  string
	Range Range
}

// LensResult is the display-ready outcome of one resolution. It is
// recomputed on every call and never persisted for reuse.
type LensResult struct {
	Label   string
	Command string
	Targets []JumpTarget
}

// ImplementationService is the outbound boundary: a single read-only query
// type against an externally owned language service. Concurrent queries are
// expected; implementations must not assume exclusive callers. A nil error
// with an empty slice means the service answered but the body was absent.
type ImplementationService interface {
	Implementations(ctx context.Context, file string, pos ServicePosition) ([]FileSpan, error)
}

// Resolver turns anchors into LensResults. It holds no per-lens state, so
// one Resolver serves any number of concurrent resolutions.
type Resolver struct {
	service ImplementationService
	logger  *log.Logger
}

// NewResolver wires a resolver to the given service. A nil logger falls
// back to log.Default.
func NewResolver(service ImplementationService, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{service: service, logger: logger}
}

// Resolve issues exactly one implementations query for the anchor. The
// returned result is always renderable: cancellation, transport errors and
// empty response bodies all collapse to FailureLabel with a no-op command.
// The outcome reports which path was taken.
func (r *Resolver) Resolve(ctx context.Context, anchor Anchor) (LensResult, Outcome) {
	spans, err := r.service.Implementations(ctx, anchor.File, anchor.Range.Start.Service())
	if err != nil {
		outcome := OutcomeQueryFailed
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			outcome = OutcomeCancelled
		}
		r.logger.Printf("lens %s:%d %s: %v", anchor.File, anchor.Range.Start.Line, outcome, err)
		return failureResult(), outcome
	}
	if len(spans) == 0 {
		// An absent body is "could not determine", not zero implementations.
		r.logger.Printf("lens %s:%d empty response body", anchor.File, anchor.Range.Start.Line)
		return failureResult(), OutcomeNoData
	}
	targets := reduceSpans(anchor, spans)
	result := LensResult{Label: countLabel(len(targets)), Targets: targets}
	if len(targets) > 0 {
		result.Command = CommandShowLocations
	}
	return result, OutcomeResolved
}

func failureResult() LensResult {
	return LensResult{Label: FailureLabel}
}

func countLabel(n int) string {
	if n == 1 {
		return "1 implementation"
	}
	return fmt.Sprintf("%d implementations", n)
}

// reduceSpans normalizes raw hits to display ranges and drops the anchor's
// own location, matched by file plus start position. Nothing else is
// filtered; duplicate spans from the service pass through.
func reduceSpans(anchor Anchor, spans []FileSpan) []JumpTarget {
	targets := make([]JumpTarget, 0, len(spans))
	for _, span := range spans {
		rng := displayRange(span)
		if span.File == anchor.File && rng.Start == anchor.Range.Start {
			continue
		}
		targets = append(targets, JumpTarget{File: span.File, Range: rng})
	}
	return targets
}

// displayRange converts one one-based hit span to display coordinates. A
// span crossing lines usually covers the whole declaration body; only its
// first physical line is worth jumping to, so the range collapses to
// [start, next line col 0).
func displayRange(span FileSpan) Range {
	start := span.Start.Display()
	if span.Start.Line == span.End.Line {
		return Range{Start: start, End: span.End.Display()}
	}
	return Range{Start: start, End: Position{Line: start.Line + 1}}
}
