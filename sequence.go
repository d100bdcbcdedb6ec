package ruler

// seqRule matches its sub-rules back to back against successive
// remainders of the input.
type seqRule struct {
	ruleName
	rules []Rule
}

// Seq returns a rule that matches when all of its parts match in order.
// Parts are rules or plain strings; a string becomes an anonymous Regex
// leaf.
func Seq(parts ...any) Rule {
	return &seqRule{rules: coerceRules(parts)}
}

func (r *seqRule) Named(name string) Rule {
	r.setName(name)
	return r
}

func (r *seqRule) Match(text string) (*Match, *Mismatch) {
	return r.matchSeq(text)
}

// matchSeq carries the cursor through the sub-rules. Split out so that
// Opt can reuse it without going through the embedding dance.
func (r *seqRule) matchSeq(text string) (*Match, *Mismatch) {
	rest := text
	subs := make([]subMatch, 0, len(r.rules))
	for _, sub := range r.rules {
		m, mm := sub.Match(rest)
		if mm != nil {
			// Rebase the local position onto the input this sequence
			// received. Outer sequences rebase again, so a top-level
			// position is always absolute.
			return nil, newMismatch(len(text)-len(rest)+mm.position, mm.description)
		}
		rest = rest[len(m.text):]
		subs = append(subs, subMatch{rule: sub, match: m})
	}
	// The consumed text is a prefix of the received input, never a
	// concatenation of sub-texts, so zero-width leaves cost nothing.
	return buildMatch(text[:len(text)-len(rest)], subs), nil
}

func (r *seqRule) subRules() []Rule        { return r.rules }
func (r *seqRule) exclusiveSubRules() bool { return false }

// subMatch pairs a sub-rule with its match for token registration.
type subMatch struct {
	rule  Rule
	match *Match
}

// buildMatch assembles a compound match: named sub-rules register their
// match under their own name, anonymous sub-rules dissolve and hand their
// named submatches to the parent. A name collision here means the grammar
// itself is malformed, not the input; buildMatch panics with
// *TokenRedefinitionError. New detects the same collision up front and
// returns it as an error, so a validated Grammar never trips this.
func buildMatch(text string, subs []subMatch) *Match {
	var tokens map[string]*Match
	register := func(name string, m *Match) {
		if tokens == nil {
			tokens = make(map[string]*Match)
		}
		if _, dup := tokens[name]; dup {
			panic(&TokenRedefinitionError{Token: name})
		}
		tokens[name] = m
	}

	for _, s := range subs {
		if name := s.rule.Name(); name != "" {
			register(name, s.match)
			continue
		}
		for name, m := range s.match.tokens {
			register(name, m)
		}
	}
	return newMatch(text, tokens)
}
