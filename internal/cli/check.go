package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanivmo/ruler/grammarfile"
)

// CheckResult holds the result of validating a grammar file.
type CheckResult struct {
	Path   string   `json:"path"`
	Valid  bool     `json:"valid"`
	Tokens []string `json:"tokens,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <grammar.yaml>",
		Short: "Validate a grammar file",
		Long: `Load a grammar file, build the rule tree and validate its token
names. Reports the registered token names on success.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	g, err := grammarfile.Load(path)
	if err != nil {
		formatter.Error(loadErrorCode(err), err.Error(), nil)
		return &ExitError{Code: ExitFailure, Message: "grammar check failed"}
	}

	tokens := g.TokenNames()
	formatter.VerboseLog("grammar %s defines %d token(s)", path, len(tokens))

	if opts.Format == "json" {
		return formatter.Success(CheckResult{Path: path, Valid: true, Tokens: tokens})
	}
	if len(tokens) == 0 {
		return formatter.Success("grammar valid, no named tokens")
	}
	return formatter.Success(fmt.Sprintf("grammar valid, tokens: %s", strings.Join(tokens, ", ")))
}
