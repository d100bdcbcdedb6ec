package ruler

import "sort"

// Match is the immutable result of a successful match attempt: the exact
// text that was consumed plus the named submatches collected while
// matching. A Match is created fresh on every call and owned by the
// caller; it holds no reference back into the rule tree.
type Match struct {
	text   string
	tokens map[string]*Match
}

func newMatch(text string, tokens map[string]*Match) *Match {
	return &Match{text: text, tokens: tokens}
}

// Text returns the consumed text.
func (m *Match) Text() string {
	return m.text
}

// String returns the consumed text, so a Match compares to strings
// through fmt the way the consumed text itself would.
func (m *Match) String() string {
	return m.text
}

// Len returns the number of bytes consumed.
func (m *Match) Len() int {
	return len(m.text)
}

// Get returns the submatch registered under name. The second result is
// false when no rule with that name contributed to this match: the name
// is unknown, it lives inside an optional part that succeeded vacuously,
// or it belongs to an alternation branch that did not fire. A named
// optional rule itself always registers, with empty text when vacuous.
func (m *Match) Get(name string) (*Match, bool) {
	sub, ok := m.tokens[name]
	return sub, ok
}

// Names returns the names of the direct submatches, sorted.
func (m *Match) Names() []string {
	if len(m.tokens) == 0 {
		return nil
	}
	names := make([]string, 0, len(m.tokens))
	for name := range m.tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
