package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kambari/kambari-agent/pkg/core/scheduler"
	"github.com/kambari/kambari-agent/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule",
		Short: "Assign roles across a series' sessions and store the schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seriesID, _ := cmd.Flags().GetString("series")
			seed, _ := cmd.Flags().GetInt64("seed")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			reset, _ := cmd.Flags().GetBool("reset")

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, services.GenerateScheduleParams{
				SeriesID: seriesID,
				Seed:     seed,
				DryRun:   dryRun,
				Reset:    reset,
			})
			if err != nil {
				if result != nil {
					// The run succeeded but storing it didn't; show the
					// schedule anyway so the work isn't lost
					fmt.Printf("\n⚠️  Schedule computed but not stored: %v\n", err)
					printReport(result.Report)
				}
				return err
			}

			if dryRun {
				fmt.Printf("\n✓ Schedule generated (dry run, not stored)\n")
			} else {
				fmt.Printf("\n✓ Schedule generated and stored!\n")
			}
			fmt.Printf("\nSeries: %s\n", result.Series.Title)
			printReport(result.Report)

			if len(result.Outcome.Repaired) > 0 {
				fmt.Printf("Relocated roles:\n")
				for _, r := range result.Outcome.Repaired {
					fmt.Printf("  - %s moved from %s to %s\n",
						r.Role.Display(),
						r.OriginalDate.Format("2006-01-02"),
						r.NewDate.Format("2006-01-02"))
				}
				fmt.Println()
			}
			if len(result.Outcome.Unfilled) > 0 {
				fmt.Printf("⚠️  Unfilled roles:\n")
				for _, u := range result.Outcome.Unfilled {
					fmt.Printf("  - %s on %s\n", u.Role.Display(), u.Date.Format("2006-01-02"))
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().String("series", "", "Series ID to schedule (defaults to the latest series)")
	cmd.Flags().Int64("seed", 0, "Seed for tie-break decisions (0 seeds from the clock)")
	cmd.Flags().Bool("dry-run", false, "Compute and display the schedule without storing it")
	cmd.Flags().Bool("reset", false, "Clear existing assignments in the series date range first")
	return cmd
}

// printReport renders a schedule report session by session
func printReport(report scheduler.ScheduleReport) {
	fmt.Println()
	for _, session := range report.Sessions {
		fmt.Printf("%s  %s (%s)\n", session.Date.Format("2006-01-02 Mon"), session.Topic, session.Passage)
		for _, line := range session.Roles {
			if line.Filled {
				fmt.Printf("  %-20s %s\n", line.Role.Display()+":", line.MemberName)
			} else {
				fmt.Printf("  %-20s (unfilled)\n", line.Role.Display()+":")
			}
		}
		fmt.Println()
	}
}
