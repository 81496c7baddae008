// Package prominence exposes the single entry point that ties the core
// modules together: grid adaptation, peak detection, sort index
// construction, the disjoint-set sweep, and top-K collection.
//
// ComputeProminence is the only algorithmic wiring this package performs —
// a thin dispatcher with no algorithmic content of its own; every
// component's behavior is unchanged from how it behaves standalone.
package prominence
