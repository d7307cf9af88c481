package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/openhours"
)

// IntervalRecord is one interval in the intervals command's JSON payload.
type IntervalRecord struct {
	Start       string   `json:"start"`
	End         string   `json:"end,omitempty"` // empty when unbounded
	State       string   `json:"state"`
	Annotations []string `json:"annotations,omitempty"`
}

// IntervalsResult holds the JSON payload of the intervals command.
type IntervalsResult struct {
	Expression string           `json:"expression"`
	Intervals  []IntervalRecord `json:"intervals"`
	Truncated  bool             `json:"truncated,omitempty"` // --limit cut the stream short
}

// NewIntervalsCommand creates the intervals command.
func NewIntervalsCommand(rootOpts *RootOptions) *cobra.Command {
	var from, to string
	var limit int

	cmd := &cobra.Command{
		Use:   "intervals <expression>",
		Short: "List the interval records of an expression",
		Long: `Walk the interval records of an expression: maximal spans of constant
state, in order, covering the queried window with no gaps.

Without --to the stream is unbounded and --limit is required, since an
expression whose rules alternate forever produces records forever.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIntervals(rootOpts, args[0], from, to, limit, cmd)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", `window start ("2006-01-02 15:04", default now)`)
	cmd.Flags().StringVar(&to, "to", "", "window end (absent means unbounded)")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after N records (required without --to)")
	return cmd
}

func runIntervals(opts *RootOptions, expression, from, to string, limit int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	start, err := parseDatetime(from)
	if err != nil {
		formatter.Error(ErrCodeBadDatetime, err.Error(), nil)
		return NewExitError(ExitCommandError, "bad datetime")
	}
	end, err := parseDatetime(to)
	if err != nil {
		formatter.Error(ErrCodeBadDatetime, err.Error(), nil)
		return NewExitError(ExitCommandError, "bad datetime")
	}
	if end.IsZero() && limit <= 0 {
		formatter.Error(ErrCodeUsage, "an unbounded query needs --limit", nil)
		return NewExitError(ExitCommandError, "missing --limit")
	}

	schedule, err := openhours.Parse(expression)
	if err != nil {
		formatter.Error(ErrCodeInvalidExpression, err.Error(), nil)
		return NewExitError(ExitFailure, "invalid expression")
	}

	result := IntervalsResult{Expression: expression, Intervals: []IntervalRecord{}}
	iter := schedule.Intervals(start, end)
	for {
		if limit > 0 && len(result.Intervals) == limit {
			_, more := iter.Next()
			result.Truncated = more
			break
		}
		interval, ok := iter.Next()
		if !ok {
			break
		}
		record := IntervalRecord{
			Start:       formatDatetime(interval.Start),
			State:       interval.State.String(),
			Annotations: interval.Annotations,
		}
		if !interval.End.IsZero() {
			record.End = formatDatetime(interval.End)
		}
		result.Intervals = append(result.Intervals, record)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	out := cmd.OutOrStdout()
	for _, record := range result.Intervals {
		end := record.End
		if end == "" {
			end = "-"
		}
		line := fmt.Sprintf("%s  %s  %s", record.Start, end, record.State)
		if len(record.Annotations) > 0 {
			line += fmt.Sprintf("  %q", strings.Join(record.Annotations, "; "))
		}
		fmt.Fprintln(out, line)
	}
	if result.Truncated {
		fmt.Fprintln(out, "... (truncated by --limit)")
	}
	return nil
}
