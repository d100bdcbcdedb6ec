package ruler

import (
	"errors"
	"fmt"
)

// TokenRedefinitionError reports that two sibling rules which are not
// mutually exclusive would register a submatch under the same name. It
// signals a malformed grammar, never a malformed input: New returns it
// when validating a rule tree, and matching an unvalidated tree panics
// with it at the point the collision would mis-group tokens.
type TokenRedefinitionError struct {
	// Token is the colliding name.
	Token string
}

func (e *TokenRedefinitionError) Error() string {
	return fmt.Sprintf("token %q is defined by more than one sibling rule", e.Token)
}

// IsTokenRedefinition reports whether err is a TokenRedefinitionError.
// Uses errors.As to handle wrapped errors.
func IsTokenRedefinition(err error) bool {
	var e *TokenRedefinitionError
	return errors.As(err, &e)
}

// RuleNamingError reports an attempt to assign a second, different name
// to an already named rule. Named panics with it immediately: names are
// write-once and a rename is always an authoring bug.
type RuleNamingError struct {
	// Current is the name the rule already carries.
	Current string

	// Attempted is the rejected new name.
	Attempted string
}

func (e *RuleNamingError) Error() string {
	return fmt.Sprintf("rule is already named %q, cannot rename to %q", e.Current, e.Attempted)
}

// IsRuleNaming reports whether err is a RuleNamingError.
// Uses errors.As to handle wrapped errors.
func IsRuleNaming(err error) bool {
	var e *RuleNamingError
	return errors.As(err, &e)
}
