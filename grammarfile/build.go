package grammarfile

import (
	"fmt"

	"github.com/yanivmo/ruler"
)

// Load reads a grammar file and builds the grammar.
func Load(path string) (*ruler.Grammar, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	g, err := Build(doc)
	if err != nil {
		annotatePath(err, path)
		return nil, err
	}
	return g, nil
}

// Parse decodes a grammar document and builds the grammar.
func Parse(data []byte) (*ruler.Grammar, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Build assembles the rule tree described by doc and validates it with
// ruler.New. Bindings are processed in order; a ref resolves to a binding
// that appears earlier in the list.
func Build(doc *Document) (g *ruler.Grammar, err error) {
	// The ruler constructors treat malformed patterns and renames as
	// authoring bugs and panic. Here they arrive from data, so they are
	// surfaced as load errors instead.
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cause, ok := r.(error)
		if !ok {
			panic(r)
		}
		g, err = nil, &LoadError{Code: ErrCodeBadExpr, Message: cause.Error(), Err: cause}
	}()

	if doc.Root == nil {
		return nil, &LoadError{Code: ErrCodeNoRoot, Message: "grammar document has no root expression"}
	}

	b := &builder{bound: make(map[string]ruler.Rule)}
	for i := range doc.Tokens {
		binding := &doc.Tokens[i]
		if binding.Name == "" {
			return nil, &LoadError{Code: ErrCodeBadBinding, Message: fmt.Sprintf("binding %d has no name", i)}
		}
		if _, dup := b.bound[binding.Name]; dup {
			return nil, &LoadError{Code: ErrCodeBadBinding, Message: fmt.Sprintf("binding %q appears more than once", binding.Name)}
		}
		if binding.Rule.Ref != "" {
			// Naming a bare ref would rename the referenced rule.
			return nil, &LoadError{Code: ErrCodeBadBinding, Message: fmt.Sprintf("binding %q: a binding cannot be a bare ref", binding.Name)}
		}

		rule, err := b.buildExpr(&binding.Rule)
		if err != nil {
			return nil, err
		}
		b.bound[binding.Name] = rule.Named(binding.Name)
	}

	root, err := b.buildExpr(doc.Root)
	if err != nil {
		return nil, err
	}

	g, err = ruler.New(root)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBadGrammar, Message: err.Error(), Err: err}
	}
	return g, nil
}

type builder struct {
	bound map[string]ruler.Rule
}

func (b *builder) buildExpr(e *Expr) (ruler.Rule, error) {
	forms := 0
	if e.Regex != nil {
		forms++
	}
	if e.Seq != nil {
		forms++
	}
	if e.OneOf != nil {
		forms++
	}
	if e.Optional != nil {
		forms++
	}
	if e.Ref != "" {
		forms++
	}
	if forms == 0 {
		return nil, &LoadError{Code: ErrCodeBadExpr, Message: "empty rule expression"}
	}
	if forms > 1 {
		return nil, &LoadError{Code: ErrCodeBadExpr, Message: "rule expression sets more than one of regex, seq, one_of, optional, ref"}
	}

	switch {
	case e.Regex != nil:
		return ruler.Regex(*e.Regex), nil

	case e.Ref != "":
		rule, ok := b.bound[e.Ref]
		if !ok {
			return nil, &LoadError{Code: ErrCodeUnknownRef, Message: fmt.Sprintf("ref %q does not name an earlier binding", e.Ref)}
		}
		return rule, nil

	case e.Seq != nil:
		parts, err := b.buildParts(e.Seq, "seq")
		if err != nil {
			return nil, err
		}
		return ruler.Seq(parts...), nil

	case e.OneOf != nil:
		parts, err := b.buildParts(e.OneOf, "one_of")
		if err != nil {
			return nil, err
		}
		return ruler.OneOf(parts...), nil

	default:
		parts, err := b.buildParts(e.Optional, "optional")
		if err != nil {
			return nil, err
		}
		return ruler.Opt(parts...), nil
	}
}

func (b *builder) buildParts(exprs []Expr, form string) ([]any, error) {
	if len(exprs) == 0 {
		return nil, &LoadError{Code: ErrCodeBadExpr, Message: fmt.Sprintf("%s needs at least one part", form)}
	}
	parts := make([]any, len(exprs))
	for i := range exprs {
		rule, err := b.buildExpr(&exprs[i])
		if err != nil {
			return nil, err
		}
		parts[i] = rule
	}
	return parts, nil
}
