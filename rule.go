package ruler

import "fmt"

// Rule is one node of a composed grammar tree.
//
// A Rule matches a prefix of its input and reports either a Match or a
// Mismatch; exactly one of the two is non-nil. Rules are assembled once,
// at grammar-definition time, and are never mutated by matching, so the
// same node may safely be referenced from several places in a tree and
// matched concurrently.
//
// The set of implementations is closed: Regex, Seq, OneOf and Opt are the
// only constructors.
type Rule interface {
	// Match attempts to match a prefix of text. Positions in the returned
	// Mismatch are relative to text; enclosing rules rebase them so that a
	// top-level Mismatch always points into the original input.
	Match(text string) (*Match, *Mismatch)

	// Name returns the rule's name, or "" for an anonymous rule.
	Name() string

	// Named assigns the rule's name and returns the rule for chaining.
	// A rule is named at most once; assigning a second, different name
	// panics with *RuleNamingError. Re-assigning the same name is a no-op.
	Named(name string) Rule

	// subRules returns the direct children, nil for leaves.
	subRules() []Rule

	// exclusiveSubRules reports whether the direct children are mutually
	// exclusive at match time. Only alternation children are; the name
	// registry lets exclusive siblings share a name.
	exclusiveSubRules() bool
}

// ruleName holds the write-once name shared by all rule kinds.
type ruleName struct {
	name string
}

func (n *ruleName) Name() string {
	return n.name
}

func (n *ruleName) setName(name string) {
	if n.name != "" && n.name != name {
		panic(&RuleNamingError{Current: n.name, Attempted: name})
	}
	n.name = name
}

// coerceRules converts the mixed parts accepted by the compound
// constructors into rules. Plain strings become anonymous Regex leaves.
func coerceRules(parts []any) []Rule {
	rules := make([]Rule, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case Rule:
			rules = append(rules, v)
		case string:
			rules = append(rules, Regex(v))
		default:
			panic(fmt.Sprintf("ruler: rule part must be a Rule or a string, got %T", part))
		}
	}
	return rules
}
