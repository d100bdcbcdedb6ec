package ruler

// collectTokens walks a rule tree and produces the flat name index for
// every named rule reachable through r, applying the flattening rule: a
// named sub-rule registers itself and hides its interior, an anonymous
// sub-rule dissolves and hands its own named descendants upward.
//
// Sibling collisions are an error unless the siblings are mutually
// exclusive (alternation branches), in which case the name maps to the
// branches in declaration order. Interiors of named sub-rules are still
// walked so that a collision buried inside a named rule is caught here
// rather than at match time.
func collectTokens(r Rule) (map[string][]Rule, error) {
	tokens := make(map[string][]Rule)
	exclusive := r.exclusiveSubRules()

	for _, sub := range r.subRules() {
		subTokens, err := collectTokens(sub)
		if err != nil {
			return nil, err
		}

		if name := sub.Name(); name != "" {
			if _, dup := tokens[name]; dup && !exclusive {
				return nil, &TokenRedefinitionError{Token: name}
			}
			tokens[name] = append(tokens[name], sub)
			continue
		}

		for name, rules := range subTokens {
			if _, dup := tokens[name]; dup && !exclusive {
				return nil, &TokenRedefinitionError{Token: name}
			}
			tokens[name] = append(tokens[name], rules...)
		}
	}
	return tokens, nil
}
