package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/duty-roster/internal/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter config, templates and dictionaries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			created, err := config.InitWorkspace(dir)
			if err != nil {
				return err
			}
			if len(created) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to do: %s is already initialized\n", dir)
				return nil
			}
			for _, path := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			}
			logger.Debug("workspace initialized", zap.String("dir", dir), zap.Int("files", len(created)))
			return nil
		},
	}
}
