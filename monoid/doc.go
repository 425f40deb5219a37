// Package monoid describes how the cost of a search path is accumulated.
//
// What:
//
//   - Monoid[T] pairs an identity element with an associative binary operation.
//   - New builds a monoid from any identity/operation pair.
//   - Sum, Product, Max and Min cover the common numeric accumulation rules.
//   - Fold reduces a slice of values with a monoid.
//
// Why:
//
//	The search engine never assumes that costs are numbers or that they add up.
//	A path cost is the fold of its per-action costs under the problem's monoid,
//	so shortest paths (Sum), bottleneck paths (Max), most reliable paths over
//	probabilities (Product) and widest paths (Min) all share one algorithm.
//
// Contract:
//
//	Combine must be associative and Identity must be a two-sided identity for
//	Combine. Neither property is checked at runtime; a monoid that violates them
//	silently corrupts accumulated costs.
//
//	For Dijkstra and A* the accumulated cost must also never decrease along a
//	path (non-negative Sum, Max, Product over values ≥ 1, ...).
package monoid
