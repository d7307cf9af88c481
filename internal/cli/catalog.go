package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/openhours"
	"github.com/roach88/openhours/internal/catalog"
)

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage a catalog of named schedules",
		Long: `Manage a durable catalog of named opening-hours schedules.

The catalog is a SQLite database; --db selects its path. Expressions are
validated before they are stored.`,
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "openhours.db", "path to the catalog database")

	cmd.AddCommand(newCatalogAddCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCatalogListCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCatalogCheckCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCatalogImportCommand(rootOpts, &dbPath))
	cmd.AddCommand(newCatalogLoadCommand(rootOpts, &dbPath))
	return cmd
}

// openCatalog opens the store, wiring a debug logger in verbose mode.
func openCatalog(opts *RootOptions, path string) (*catalog.Store, error) {
	var storeOpts []catalog.Option
	if opts.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		storeOpts = append(storeOpts, catalog.WithLogger(logger.Sugar()))
	}
	return catalog.Open(path, storeOpts...)
}

func newCatalogAddCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:           "add <name> <expression>",
		Short:         "Add a named schedule",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			store, err := openCatalog(rootOpts, *dbPath)
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), nil)
				return NewExitError(ExitCommandError, "cannot open catalog")
			}
			defer store.Close()

			entry, err := store.Add(args[0], args[1], note)
			if err != nil {
				if openhours.IsInvalidExpression(err) {
					formatter.Error(ErrCodeInvalidExpression, err.Error(), nil)
					return NewExitError(ExitFailure, "invalid expression")
				}
				formatter.Error(ErrCodeCatalog, err.Error(), nil)
				return NewExitError(ExitCommandError, "cannot add entry")
			}

			if formatter.Format == "json" {
				return formatter.Success(entry)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", entry.Name, entry.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "free-text note stored with the entry")
	return cmd
}

func newCatalogListCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List catalog entries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			store, err := openCatalog(rootOpts, *dbPath)
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), nil)
				return NewExitError(ExitCommandError, "cannot open catalog")
			}
			defer store.Close()

			entries, err := store.List()
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), nil)
				return NewExitError(ExitCommandError, "cannot list entries")
			}

			if formatter.Format == "json" {
				return formatter.Success(entries)
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", entry.Name, entry.Expression)
			}
			return nil
		},
	}
}

func newCatalogCheckCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:           "check",
		Short:         "Evaluate every entry at an instant",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			instant, err := parseDatetime(at)
			if err != nil {
				formatter.Error(ErrCodeBadDatetime, err.Error(), nil)
				return NewExitError(ExitCommandError, "bad datetime")
			}

			store, err := openCatalog(rootOpts, *dbPath)
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), nil)
				return NewExitError(ExitCommandError, "cannot open catalog")
			}
			defer store.Close()

			statuses, err := store.EvaluateAll(instant)
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), nil)
				return NewExitError(ExitCommandError, "cannot evaluate entries")
			}

			if formatter.Format == "json" {
				return formatter.Success(statuses)
			}
			for _, status := range statuses {
				next := status.NextChange
				if next == "" {
					next = "never"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-8s until %s\n", status.Name, status.State, next)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", `instant to evaluate at ("2006-01-02 15:04")`)
	return cmd
}

func newCatalogImportCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "import <file.yaml>",
		Short:         "Bulk-import entries from a YAML document",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			file, err := os.Open(args[0])
			if err != nil {
				formatter.Error(ErrCodeNotFound, err.Error(), nil)
				return NewExitError(ExitCommandError, "cannot open import file")
			}
			defer file.Close()

			store, err := openCatalog(rootOpts, *dbPath)
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), nil)
				return NewExitError(ExitCommandError, "cannot open catalog")
			}
			defer store.Close()

			added, err := store.ImportYAML(file)
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), map[string]int{"added": added})
				return NewExitError(ExitFailure, "import failed")
			}

			if formatter.Format == "json" {
				return formatter.Success(map[string]int{"added": added})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries\n", added)
			return nil
		},
	}
}

func newCatalogLoadCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "load <cue-dir>",
		Short:         "Seed entries from a directory of CUE files",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			store, err := openCatalog(rootOpts, *dbPath)
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), nil)
				return NewExitError(ExitCommandError, "cannot open catalog")
			}
			defer store.Close()

			added, err := store.LoadCUEDir(args[0])
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), map[string]int{"added": added})
				return NewExitError(ExitFailure, "load failed")
			}

			if formatter.Format == "json" {
				return formatter.Success(map[string]int{"added": added})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d entries\n", added)
			return nil
		},
	}
}
