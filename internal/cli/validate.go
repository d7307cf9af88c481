package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/openhours"
)

// ValidationResult holds the JSON payload of the validate command.
type ValidationResult struct {
	Valid      bool   `json:"valid"`
	Expression string `json:"expression"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <expression>",
		Short: "Check whether an expression parses",
		Long: `Check whether an opening-hours expression is well formed.

Exits 0 for a valid expression and 1 for an invalid one, printing the
parse diagnostic.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, expression string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if _, err := openhours.Parse(expression); err != nil {
		result := ValidationResult{Valid: false, Expression: expression, Diagnostic: err.Error()}
		if formatter.Format == "json" {
			if err := formatter.Success(result); err != nil {
				return err
			}
		} else {
			formatter.Error(ErrCodeInvalidExpression, err.Error(), nil)
		}
		return NewExitError(ExitFailure, "invalid expression")
	}

	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true, Expression: expression})
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
