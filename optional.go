package ruler

// optRule wraps a sequence whose failure is converted into a vacuous
// success.
type optRule struct {
	seq seqRule
}

// Opt returns an optional rule wrapping the given parts as a sequence.
// Opt never fails: if the wrapped sequence matches, its match is passed
// through unchanged, named submatches included; if it does not, Opt
// succeeds with empty consumption and no submatches at all.
//
// Note that once the wrapped sequence starts matching it must complete.
// Opt(" with ", "milk") applied to " with lemon" succeeds vacuously, it
// does not stop halfway after " with ".
func Opt(parts ...any) Rule {
	return &optRule{seq: seqRule{rules: coerceRules(parts)}}
}

func (r *optRule) Name() string {
	return r.seq.Name()
}

func (r *optRule) Named(name string) Rule {
	r.seq.setName(name)
	return r
}

func (r *optRule) Match(text string) (*Match, *Mismatch) {
	m, mm := r.seq.matchSeq(text)
	if mm != nil {
		return newMatch("", nil), nil
	}
	return m, nil
}

func (r *optRule) subRules() []Rule        { return r.seq.rules }
func (r *optRule) exclusiveSubRules() bool { return false }
