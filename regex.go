package ruler

import (
	"fmt"
	"regexp"
)

// regexRule is the leaf of every grammar: a regular expression matched
// against the start of the input.
type regexRule struct {
	ruleName
	pattern string
	re      *regexp.Regexp
}

// Regex returns a leaf rule matching pattern anchored at the start of the
// input. The pattern uses the stdlib regexp syntax. Regex panics if the
// pattern does not compile, like regexp.MustCompile; grammars are built
// once, at definition time, and a malformed pattern is an authoring bug.
func Regex(pattern string) Rule {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		panic(fmt.Errorf("ruler: invalid pattern %q: %w", pattern, err))
	}
	return &regexRule{pattern: pattern, re: re}
}

func (r *regexRule) Named(name string) Rule {
	r.setName(name)
	return r
}

func (r *regexRule) Match(text string) (*Match, *Mismatch) {
	loc := r.re.FindStringIndex(text)
	if loc == nil {
		if text == "" {
			return nil, newMismatch(0, fmt.Sprintf("reached end of input but expected \"%s\"", r.pattern))
		}
		return nil, newMismatch(0, fmt.Sprintf("\"%s\" does not match \"%s\"", text, r.pattern))
	}
	return newMatch(text[:loc[1]], nil), nil
}

func (r *regexRule) subRules() []Rule        { return nil }
func (r *regexRule) exclusiveSubRules() bool { return false }
