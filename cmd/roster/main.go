// cmd/roster/main.go
//
// Entry point for the roster CLI. `roster generate` writes the yearly
// cleaning-duty roster, `roster weeks` lists the week dates, `roster preview`
// opens it in the terminal and `roster init` writes starter files.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/duty-roster/internal/logging"
)

var (
	// Global flags
	verbose bool
	logFile string

	logger   *zap.Logger
	closeLog = func() error { return nil }
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "roster",
		Short: "Generate a weekly cleaning-duty roster",
		Long: `roster assigns eight rooms, split into two sides of four, to weekly chores
for a whole year and writes the result as CSV, a LaTeX table or an xlsx workbook.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, closeLog, err = logging.New(logging.Options{Verbose: verbose, File: logFile})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "Also append JSON logs to this file")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newWeeksCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newInitCmd())
	return root
}

// run executes the CLI and always releases the logger, including when the
// command fails and cobra skips its post-run hooks.
func run(root *cobra.Command) error {
	defer func() {
		_ = closeLog()
		closeLog = func() error { return nil }
		logger = nil
	}()
	err := root.Execute()
	if err != nil && logger != nil {
		logger.Error("command failed", zap.Error(err))
	}
	return err
}

func main() {
	if err := run(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
