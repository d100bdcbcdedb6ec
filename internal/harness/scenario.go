package harness

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yanivmo/ruler/grammarfile"
)

// Expected case outcomes.
const (
	WantMatch    = "match"
	WantMismatch = "mismatch"
)

// Scenario defines a grammar conformance scenario.
type Scenario struct {
	// Name uniquely identifies the scenario; it also names the golden
	// file when the scenario is run through RunWithGolden.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description,omitempty"`

	// Grammar is an inline grammar document. Exactly one of Grammar and
	// GrammarFile must be set.
	Grammar *grammarfile.Document `yaml:"grammar,omitempty"`

	// GrammarFile is a path to a grammar file, resolved relative to the
	// scenario file by LoadScenario.
	GrammarFile string `yaml:"grammar_file,omitempty"`

	// Cases are the inputs to match, in order.
	Cases []Case `yaml:"cases"`
}

// Case is one input plus the outcome it must produce.
type Case struct {
	// Name labels the case in reports. Defaults to "case N".
	Name string `yaml:"name,omitempty"`

	// Input is the text to match.
	Input string `yaml:"input"`

	// Want is "match" or "mismatch".
	Want string `yaml:"want"`

	// Text is the expected consumed text. Only valid with want: match;
	// when omitted the consumed text is not checked.
	Text *string `yaml:"text,omitempty"`

	// Tokens maps dotted submatch paths (e.g. "what.tea.milk") to the
	// text each must have consumed. Only valid with want: match.
	Tokens map[string]string `yaml:"tokens,omitempty"`

	// Position is the expected mismatch position. Only valid with
	// want: mismatch; when omitted the position is not checked.
	Position *int `yaml:"position,omitempty"`
}

// LoadScenario reads and validates a scenario file. A relative
// grammar_file path is resolved against the scenario file's directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("decoding scenario %s: %w", path, err)
	}

	if scenario.GrammarFile != "" && !filepath.IsAbs(scenario.GrammarFile) {
		scenario.GrammarFile = filepath.Join(filepath.Dir(path), scenario.GrammarFile)
	}

	if err := scenario.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &scenario, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if (s.Grammar == nil) == (s.GrammarFile == "") {
		return fmt.Errorf("exactly one of grammar and grammar_file must be set")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("scenario has no cases")
	}

	for i, c := range s.Cases {
		label := c.Name
		if label == "" {
			label = fmt.Sprintf("case %d", i+1)
		}
		switch c.Want {
		case WantMatch:
			if c.Position != nil {
				return fmt.Errorf("%s: position is only valid with want: mismatch", label)
			}
		case WantMismatch:
			if c.Text != nil || len(c.Tokens) > 0 {
				return fmt.Errorf("%s: text and tokens are only valid with want: match", label)
			}
		default:
			return fmt.Errorf("%s: want must be %q or %q, got %q", label, WantMatch, WantMismatch, c.Want)
		}
	}
	return nil
}
