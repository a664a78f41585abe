package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kambari/kambari-agent/pkg/core/services"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewSchedule <from> <to>",
		Short: "Show the stored schedule for a date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := services.ViewSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, args[0], args[1])
			if err != nil {
				return err
			}

			if len(report.Sessions) == 0 {
				fmt.Printf("\nNo sessions between %s and %s\n\n", args[0], args[1])
				return nil
			}

			fmt.Printf("\nSchedule %s to %s:\n", args[0], args[1])
			printReport(report)
			return nil
		},
	}
}
