package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/openhours"
)

// StateResult holds the JSON payload of the state command.
type StateResult struct {
	Expression string `json:"expression"`
	At         string `json:"at,omitempty"` // empty when the wall clock was used
	State      string `json:"state"`
}

// NewStateCommand creates the state command.
func NewStateCommand(rootOpts *RootOptions) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "state <expression>",
		Short: "Evaluate an expression at an instant",
		Long: `Evaluate an opening-hours expression and print its state token
(open, closed or unknown). Without --at the local wall clock is used.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runState(rootOpts, args[0], at, cmd)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", `instant to evaluate at ("2006-01-02 15:04")`)
	return cmd
}

func runState(opts *RootOptions, expression, at string, cmd *cobra.Command) error {
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

	state := schedule.State(instant)
	if formatter.Format == "json" {
		return formatter.Success(StateResult{Expression: expression, At: at, State: state.String()})
	}
	fmt.Fprintln(cmd.OutOrStdout(), state)
	return nil
}
