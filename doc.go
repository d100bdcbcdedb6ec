// Package ruler implements composable grammars with precise mismatch
// reporting.
//
// A grammar is a tree of small matching rules: regular-expression leaves,
// ordered sequences, priority-ordered alternations and optional
// sub-sequences. Rules of interest are given names; matching an input
// returns either a structured Match exposing the named submatches, or a
// Mismatch pointing at the furthest position reached before matching
// failed, with a human-readable reason.
//
// Rule trees are immutable once assembled. Every call to Match allocates
// fresh Match/Mismatch values and never writes to the tree, so a single
// Grammar serves any number of sequential or concurrent matches without
// cloning or locking.
//
// A small example:
//
//	who := ruler.OneOf("John", "Peter", "Ann").Named("who")
//	what := ruler.OneOf(
//		ruler.Seq("juice").Named("juice"),
//		ruler.Seq("tea", ruler.Opt(" with milk").Named("milk")).Named("tea"),
//	).Named("what")
//	g, err := ruler.New(ruler.Seq(who, " likes to drink ", what, `\.`))
//
//	m, mm := g.Match("Ann likes to drink tea with milk.")
//
// On success m.Get("who") returns the "Ann" submatch and mm is nil; on
// failure m is nil and mm.Render(input) produces a caret-marked
// diagnostic.
package ruler
