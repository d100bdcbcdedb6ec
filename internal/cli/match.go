package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/yanivmo/ruler"
	"github.com/yanivmo/ruler/grammarfile"
)

// MatchOptions holds the flags of the match command.
type MatchOptions struct {
	InputFile string
	Normalize bool
}

// MatchNode is the JSON form of a match tree.
type MatchNode struct {
	Text   string               `json:"text"`
	Tokens map[string]MatchNode `json:"tokens,omitempty"`
}

// MismatchDetails is the JSON payload of a failed match.
type MismatchDetails struct {
	Position   int    `json:"position"`
	Diagnostic string `json:"diagnostic"`
}

// ErrCodeMismatch labels input-level match failures.
const ErrCodeMismatch = "MISMATCH"

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatchOptions{}

	cmd := &cobra.Command{
		Use:   "match <grammar.yaml> [input]",
		Short: "Match input text against a grammar",
		Long: `Match input text against a grammar file and print the match tree,
or a caret diagnostic pointing at the position where matching failed.

The input comes from the second argument, from --input-file, or from
stdin when --input-file is "-". A trailing newline read from a file or
stdin is stripped.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.InputFile, "input-file", "", `read the input from a file, or from stdin with "-"`)
	cmd.Flags().BoolVar(&opts.Normalize, "normalize", false, "NFC-normalize the input before matching")

	return cmd
}

func runMatch(rootOpts *RootOptions, opts *MatchOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	input, err := readInput(opts, args, cmd.InOrStdin())
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: "reading input", Err: err}
	}
	if opts.Normalize {
		input = norm.NFC.String(input)
	}

	g, err := grammarfile.Load(args[0])
	if err != nil {
		formatter.Error(loadErrorCode(err), err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: "loading grammar"}
	}

	m, mm := g.Match(input)
	if mm != nil {
		diagnostic := mm.Render(input)
		formatter.VerboseLog("mismatch at %d", mm.Position())
		if rootOpts.Format == "json" {
			formatter.Error(ErrCodeMismatch, mm.Description(), MismatchDetails{
				Position:   mm.Position(),
				Diagnostic: diagnostic,
			})
		} else {
			fmt.Fprintln(formatter.Writer, diagnostic)
		}
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("mismatch at %d", mm.Position())}
	}

	if rootOpts.Format == "json" {
		return formatter.Success(matchNode(m))
	}
	return formatter.Success(strings.TrimRight(renderMatch(m, 0), "\n"))
}

func readInput(opts *MatchOptions, args []string, stdin io.Reader) (string, error) {
	if len(args) == 2 {
		if opts.InputFile != "" {
			return "", fmt.Errorf("input given both as an argument and with --input-file")
		}
		return args[1], nil
	}

	switch opts.InputFile {
	case "":
		return "", fmt.Errorf("no input: pass it as an argument or with --input-file")
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	default:
		data, err := os.ReadFile(opts.InputFile)
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	}
}

func matchNode(m *ruler.Match) MatchNode {
	node := MatchNode{Text: m.Text()}
	for _, name := range m.Names() {
		sub, _ := m.Get(name)
		if node.Tokens == nil {
			node.Tokens = make(map[string]MatchNode)
		}
		node.Tokens[name] = matchNode(sub)
	}
	return node
}

// renderMatch prints the match tree with two-space indentation per
// nesting level, token names sorted.
func renderMatch(m *ruler.Match, depth int) string {
	var buf strings.Builder
	indent := strings.Repeat("  ", depth)
	if depth == 0 {
		fmt.Fprintf(&buf, "matched %q\n", m.Text())
	}
	for _, name := range m.Names() {
		sub, _ := m.Get(name)
		fmt.Fprintf(&buf, "%s%s = %q\n", indent, name, sub.Text())
		buf.WriteString(renderMatch(sub, depth+1))
	}
	return buf.String()
}
