package ruler

import (
	"sort"
	"strings"
)

// oneOfRule tries its sub-rules in declaration order and adopts the first
// success. Selection is strictly priority-ordered, never longest-match.
type oneOfRule struct {
	ruleName
	rules []Rule
}

// OneOf returns a rule that matches when any one of its parts matches.
// Parts are tried in the order given and the first success wins, even if
// a later part would have consumed more input.
func OneOf(parts ...any) Rule {
	return &oneOfRule{rules: coerceRules(parts)}
}

func (r *oneOfRule) Named(name string) Rule {
	r.setName(name)
	return r
}

func (r *oneOfRule) Match(text string) (*Match, *Mismatch) {
	mismatches := make([]*Mismatch, 0, len(r.rules))
	for _, sub := range r.rules {
		m, mm := sub.Match(text)
		if mm == nil {
			// Adopt the winning branch. Routing it through buildMatch
			// keeps the naming behavior identical to a sequence with a
			// single sub-rule: a named branch registers under its name,
			// an anonymous one dissolves into this rule's tokens.
			return buildMatch(m.text, []subMatch{{rule: sub, match: m}}), nil
		}
		mismatches = append(mismatches, mm)
	}
	return nil, mergeMismatches(mismatches)
}

func (r *oneOfRule) subRules() []Rule        { return r.rules }
func (r *oneOfRule) exclusiveSubRules() bool { return true }

// mergeMismatches synthesizes the alternation failure: the reported
// position is the furthest any branch reached, and the description joins
// the distinct descriptions of every branch that got exactly that far.
// The furthest branch best explains how far a reader would get before
// becoming confused, regardless of declaration order.
func mergeMismatches(mismatches []*Mismatch) *Mismatch {
	if len(mismatches) == 0 {
		return newMismatch(0, "no alternatives declared")
	}

	furthest := 0
	for _, mm := range mismatches {
		if mm.position > furthest {
			furthest = mm.position
		}
	}

	seen := make(map[string]bool)
	descriptions := make([]string, 0, len(mismatches))
	for _, mm := range mismatches {
		if mm.position != furthest || seen[mm.description] {
			continue
		}
		seen[mm.description] = true
		descriptions = append(descriptions, mm.description)
	}
	// The contract leaves the tie order unspecified; sorting just keeps
	// the output stable across runs.
	sort.Strings(descriptions)

	return newMismatch(furthest, strings.Join(descriptions, "\n"))
}
