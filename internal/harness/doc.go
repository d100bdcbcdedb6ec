// Package harness runs grammar conformance scenarios.
//
// A scenario bundles a grammar with a list of inputs and the outcome each
// input must produce: a match with specific consumed text and named
// tokens, or a mismatch at a specific position. Scenarios drive the CLI
// test command and double as golden-file fixtures, so a grammar author
// can pin both the accepting behavior and the exact rendered diagnostics
// of the rejecting one.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: morning
//	description: "Morning drink grammar end to end"
//	grammar:
//	  tokens:
//	    - name: who
//	      rule:
//	        one_of: [John, Peter, Ann]
//	  root:
//	    seq:
//	      - ref: who
//	      - " likes tea"
//	cases:
//	  - name: happy path
//	    input: "Ann likes tea"
//	    want: match
//	    tokens:
//	      who: Ann
//	  - name: unknown person
//	    input: "Bob likes tea"
//	    want: mismatch
//	    position: 0
//
// The grammar is either inline (grammar:) or a path to a separate
// grammar file (grammar_file:, resolved relative to the scenario file).
// Token expectations address nested submatches with dotted paths, e.g.
// "what.tea.milk".
package harness
