package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingrea/duty-roster/internal/calendar"
)

func newWeeksCmd() *cobra.Command {
	var (
		year   int
		policy string
	)
	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "List the Monday-Sunday span of every roster week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := calendar.ParseWeekPolicy(policy)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for week := range calendar.Weeks(year, p) {
				span := calendar.WeekSpan(year, week)
				if _, err := fmt.Fprintf(out, "%d,%s,%s\n", week, span.Start.Format("2006-01-02"), span.End.Format("2006-01-02")); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 2019, "Roster year")
	cmd.Flags().StringVar(&policy, "policy", string(calendar.PolicyFixed), "Week policy: fixed or iso")
	return cmd
}
