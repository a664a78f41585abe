package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kambari/kambari-agent/pkg/core/services"
)

// SetAvailabilityCmd creates the setAvailability command
func SetAvailabilityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setAvailability <member_id> <date> <available> [reason]",
		Short: "Record whether a member can serve on a date",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			available, err := strconv.ParseBool(args[2])
			if err != nil {
				return fmt.Errorf("available must be true or false: %w", err)
			}
			var reason string
			if len(args) > 3 {
				reason = args[3]
			}

			if err := services.SetAvailability(app.Ctx, app.Database, app.Logger, args[0], args[1], available, reason); err != nil {
				return err
			}

			status := "available"
			if !available {
				status = "unavailable"
			}
			fmt.Printf("\n✓ Recorded %s on %s", status, args[1])
			if reason != "" {
				fmt.Printf(" (%s)", strings.TrimSpace(reason))
			}
			fmt.Print("\n\n")
			return nil
		},
	}
}
