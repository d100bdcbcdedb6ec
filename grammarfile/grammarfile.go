// Package grammarfile loads declarative YAML grammar definitions and
// builds ruler grammars from them.
//
// A grammar file is an ordered list of named rule bindings plus one root
// expression:
//
//	tokens:
//	  - name: who
//	    rule:
//	      one_of: [John, Peter, Ann]
//	  - name: tea
//	    rule:
//	      seq:
//	        - tea
//	        - optional: [" with milk"]
//	root:
//	  seq:
//	    - ref: who
//	    - " likes to drink tea"
//
// Rule expressions are one of: a bare string (a regex leaf), regex,
// seq, one_of, optional, or ref. A ref reuses a previously bound rule by
// name, sharing the rule node rather than copying it. The shared name
// still obeys the token rules: references from mutually exclusive
// alternation branches or under distinct named parents are fine, but
// referencing one binding twice as siblings of a single sequence
// redefines the token and is rejected when the grammar is built.
package grammarfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the parsed form of a grammar file.
type Document struct {
	// Tokens binds names to rules, in order. Later bindings and the root
	// may reference earlier ones by name.
	Tokens []Binding `yaml:"tokens,omitempty"`

	// Root is the expression the grammar matches from.
	Root *Expr `yaml:"root"`
}

// Binding attaches a name to a rule expression.
type Binding struct {
	Name string `yaml:"name"`
	Rule Expr   `yaml:"rule"`
}

// Expr is one rule expression. Exactly one of the fields is set; a bare
// YAML string is shorthand for the regex form.
type Expr struct {
	Regex    *string `yaml:"regex,omitempty"`
	Seq      []Expr  `yaml:"seq,omitempty"`
	OneOf    []Expr  `yaml:"one_of,omitempty"`
	Optional []Expr  `yaml:"optional,omitempty"`
	Ref      string  `yaml:"ref,omitempty"`
}

// UnmarshalYAML accepts either a scalar (regex shorthand) or the mapping
// form.
func (e *Expr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var pattern string
		if err := node.Decode(&pattern); err != nil {
			return err
		}
		e.Regex = &pattern
		return nil
	}

	type exprAlias Expr // drop the method to avoid recursion
	var raw exprAlias
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*e = Expr(raw)
	return nil
}

// ParseDocument decodes a grammar file without building the grammar.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("decoding grammar document: %v", err), Err: err}
	}
	return &doc, nil
}

// LoadDocument reads and decodes a grammar file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("grammar file not found: %s", path), Path: path}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading grammar file: %v", err), Path: path, Err: err}
	}

	doc, err := ParseDocument(data)
	if err != nil {
		annotatePath(err, path)
		return nil, err
	}
	return doc, nil
}

func annotatePath(err error, path string) {
	var le *LoadError
	if asLoadError(err, &le) && le.Path == "" {
		le.Path = path
	}
}
