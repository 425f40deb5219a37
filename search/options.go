package search

import (
	"io"
	"log/slog"

	"github.com/jyuhuan/Solid/frontier"
)

// discardLogger is the default logger: it drops every record.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures a search run via functional arguments.
// Options built with a nil argument are no-ops.
type Option[S comparable, A, C any] func(*Options[S, A, C])

// Options holds the hooks and overrides of a search run.
type Options[S comparable, A, C any] struct {
	// OnExpand is called for a node right before its successors are generated.
	OnExpand func(n *Node[S, A, C])

	// OnInsert is called after a successor node has been inserted into the frontier.
	OnInsert func(n *Node[S, A, C])

	// OnSkip is called when a successor state is discarded because it was
	// already expanded.
	OnSkip func(from *Node[S, A, C], state S)

	// Logger receives debug records describing the run.
	Logger *slog.Logger

	// Frontier, if set, replaces the default container of a preset or Searcher.
	// It is called once per run.
	Frontier func() frontier.Frontier[*Node[S, A, C]]

	// WrapFrontier, if set, decorates the frontier of every run after it has
	// been built, without changing how it is built.
	WrapFrontier func(frontier.Frontier[*Node[S, A, C]]) frontier.Frontier[*Node[S, A, C]]

	// Stats, if set, receives the counters of every run, including runs that
	// find no solution.
	Stats *Stats
}

// DefaultOptions returns Options with no-op hooks, a discarding logger, the
// preset's own frontier and no stats destination.
func DefaultOptions[S comparable, A, C any]() Options[S, A, C] {
	return Options[S, A, C]{
		OnExpand: func(*Node[S, A, C]) {},
		OnInsert: func(*Node[S, A, C]) {},
		OnSkip:   func(*Node[S, A, C], S) {},
		Logger:   discardLogger,
	}
}

// WithOnExpand registers a callback run before each expansion.
func WithOnExpand[S comparable, A, C any](fn func(n *Node[S, A, C])) Option[S, A, C] {
	return func(o *Options[S, A, C]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnInsert registers a callback run after each successor insertion.
func WithOnInsert[S comparable, A, C any](fn func(n *Node[S, A, C])) Option[S, A, C] {
	return func(o *Options[S, A, C]) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}

// WithOnSkip registers a callback run when a successor is discarded as visited.
func WithOnSkip[S comparable, A, C any](fn func(from *Node[S, A, C], state S)) Option[S, A, C] {
	return func(o *Options[S, A, C]) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger[S comparable, A, C any](l *slog.Logger) Option[S, A, C] {
	return func(o *Options[S, A, C]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithFrontier overrides the frontier a preset would build, e.g. to change
// tie-breaking. To observe the preset's own frontier use WithFrontierWrapper.
func WithFrontier[S comparable, A, C any](factory func() frontier.Frontier[*Node[S, A, C]]) Option[S, A, C] {
	return func(o *Options[S, A, C]) {
		if factory != nil {
			o.Frontier = factory
		}
	}
}

// WithFrontierWrapper decorates the frontier of each run, e.g. with
// frontier.Instrumented. Repeated wrappers nest: the last one is outermost.
// wrap must return a frontier that keeps the elements it is given.
func WithFrontierWrapper[S comparable, A, C any](
	wrap func(frontier.Frontier[*Node[S, A, C]]) frontier.Frontier[*Node[S, A, C]],
) Option[S, A, C] {
	return func(o *Options[S, A, C]) {
		if wrap == nil {
			return
		}
		if inner := o.WrapFrontier; inner != nil {
			o.WrapFrontier = func(f frontier.Frontier[*Node[S, A, C]]) frontier.Frontier[*Node[S, A, C]] {
				return wrap(inner(f))
			}
			return
		}
		o.WrapFrontier = wrap
	}
}

// WithStats copies the counters of each run into dst.
func WithStats[S comparable, A, C any](dst *Stats) Option[S, A, C] {
	return func(o *Options[S, A, C]) {
		if dst != nil {
			o.Stats = dst
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions[S comparable, A, C any](opts []Option[S, A, C]) Options[S, A, C] {
	o := DefaultOptions[S, A, C]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
