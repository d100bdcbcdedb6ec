package ruler

import (
	"errors"
	"sort"
)

// Grammar is the public entry point for matching: a validated, fully
// named rule tree plus the name index built over it.
//
// A Grammar is stateless across calls. Rule nodes are immutable after New
// and every match outcome lives in freshly allocated Match/Mismatch
// values, so one Grammar may serve unlimited sequential or concurrent
// Match calls without rebuilding or cloning the tree.
type Grammar struct {
	root   Rule
	tokens map[string][]Rule
}

// New validates the rule tree and builds the name index over it. It
// returns a *TokenRedefinitionError if two named sibling rules that are
// not mutually exclusive would collide, anywhere in the tree.
func New(root Rule) (*Grammar, error) {
	if root == nil {
		return nil, errors.New("ruler: grammar requires a root rule")
	}

	tokens, err := collectTokens(root)
	if err != nil {
		return nil, err
	}
	if name := root.Name(); name != "" {
		if _, dup := tokens[name]; dup {
			return nil, &TokenRedefinitionError{Token: name}
		}
		tokens[name] = []Rule{root}
	}

	return &Grammar{root: root, tokens: tokens}, nil
}

// Root returns the rule tree the grammar was built from.
func (g *Grammar) Root() Rule {
	return g.root
}

// Match matches text against the grammar. Exactly one of the results is
// non-nil: the Match on success, the Mismatch on failure. The Mismatch
// position is a byte offset into text.
func (g *Grammar) Match(text string) (*Match, *Mismatch) {
	return g.root.Match(text)
}

// Find returns the rules registered under name, in declaration order.
// The slice has more than one element only when the name is shared by
// mutually exclusive alternation branches. Find returns nil for an
// unknown name.
func (g *Grammar) Find(name string) []Rule {
	rules := g.tokens[name]
	if rules == nil {
		return nil
	}
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// TokenNames returns every registered name, sorted.
func (g *Grammar) TokenNames() []string {
	names := make([]string, 0, len(g.tokens))
	for name := range g.tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
