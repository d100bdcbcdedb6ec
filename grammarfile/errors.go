package grammarfile

import (
	"errors"
	"fmt"
)

// Error codes for grammar file loading and building.
const (
	ErrCodeNotFound   = "G001" // Grammar file not found or unreadable
	ErrCodeParse      = "G002" // YAML decode error
	ErrCodeNoRoot     = "G003" // Document has no root expression
	ErrCodeBadBinding = "G004" // Unnamed, duplicate or bare-ref binding
	ErrCodeBadExpr    = "G005" // Empty, ambiguous or invalid expression
	ErrCodeUnknownRef = "G006" // Reference to a name that is not bound
	ErrCodeBadGrammar = "G007" // Rule tree rejected by grammar validation
)

// LoadError describes a failure to load or build a grammar file.
type LoadError struct {
	Code    string
	Message string
	Path    string // file path if the document came from disk
	Err     error  // underlying cause, if any
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func asLoadError(err error, target **LoadError) bool {
	return errors.As(err, target)
}
