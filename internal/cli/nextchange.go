package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/openhours"
)

// NextChangeResult holds the JSON payload of the next-change command.
type NextChangeResult struct {
	Expression string `json:"expression"`
	At         string `json:"at,omitempty"`
	NextChange string `json:"next_change,omitempty"` // empty when the state never changes
	Never      bool   `json:"never"`
}

// NewNextChangeCommand creates the next-change command.
func NewNextChangeCommand(rootOpts *RootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "next-change <expression>",
		Short: "Print the next instant the state changes",
		Long: `Print the next instant after --at (default: now) at which the
evaluated state of the expression changes, or "never" when it does not
change again.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNextChange(rootOpts, args[0], at, cmd)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", `instant to evaluate from ("2006-01-02 15:04")`)
	return cmd
}

func runNextChange(opts *RootOptions, expression, at string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	instant, err := parseDatetime(at)
	if err != nil {
		formatter.Error(ErrCodeBadDatetime, err.Error(), nil)
		return NewExitError(ExitCommandError, "bad datetime")
	}

	schedule, err := openhours.Parse(expression)
	if err != nil {
		formatter.Error(ErrCodeInvalidExpression, err.Error(), nil)
		return NewExitError(ExitFailure, "invalid expression")
	}

	result := NextChangeResult{Expression: expression, At: at}
	next, ok := schedule.NextChange(instant)
	if ok {
		result.NextChange = formatDatetime(next)
	} else {
		result.Never = true
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	if result.Never {
		fmt.Fprintln(cmd.OutOrStdout(), "never")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), result.NextChange)
	}
	return nil
}
