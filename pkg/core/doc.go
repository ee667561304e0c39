// Package core holds the pieces of a rendering framework that consume
// props envelopes and props equivalence.
//
// Memo skips rebuilding when the new props are equivalent to the last
// ones:
//
//	row := core.NewMemo(func(p RowProps) Node { return renderRow(p) })
//	node := row.Build(p) // rebuilds only if p changed
//
// CanReuse and MatchChildren decide which previous instances survive a
// new render, using the envelope's reconciliation key the way the host
// runtime does: a missing key and a key of 0 are different keys.
package core
