// Package sweep drives the descending-elevation pass that is the heart of
// the prominence engine. For each cell in sortindex order it activates
// the cell, unions it with any already-active 8-neighbor, and — on every
// qualifying merge — emits a prominence record via the emission rule: a
// record is produced iff the merge's absorbed highest cell is a peak
// distinct from the surviving highest cell.
//
// After the descending pass, a post-pass scans every peak; any peak that
// still names itself as its own component's highest cell was never
// absorbed and is sea-level bound — its prominence equals its own
// elevation and it has no col.
//
// The cell state machine (Inactive → Active → Merged) is enforced by
// construction: a cell is activated exactly once (its own sweep step) and
// may be merged any number of times afterward by later unions; there is no
// path back to Inactive.
package sweep
