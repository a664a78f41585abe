package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kambari/kambari-agent/pkg/core/services"
)

// SendRemindersCmd creates the sendReminders command
func SendRemindersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sendReminders <date>",
		Short: "Send reminders to everyone scheduled for a session",
		Long: `Build one reminder per scheduled member for the session on the given
date. Every reminder gets a WhatsApp click-to-send link; email delivery
additionally requires a configured gmailSender and a member email address.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			testMode, _ := cmd.Flags().GetBool("test")

			var mailer services.EmailSender
			if !testMode && app.Cfg.GmailSender != "" {
				client, err := app.GmailClient()
				if err != nil {
					return err
				}
				mailer = client
			}

			deliveries, err := services.SendReminders(app.Ctx, app.Database, mailer, app.Cfg, app.Logger, args[0], testMode)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Built %d reminders for %s\n\n", len(deliveries), args[0])
			for _, d := range deliveries {
				fmt.Printf("- %s\n", d.MemberName)
				switch {
				case d.Emailed:
					fmt.Printf("    ✓ emailed %s\n", d.Email)
				case d.Error != "":
					fmt.Printf("    ✗ email failed: %s\n", d.Error)
				}
				if d.WhatsAppLink != "" {
					fmt.Printf("    WhatsApp: %s\n", d.WhatsAppLink)
				} else {
					fmt.Printf("    (no phone number on record)\n")
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Bool("test", false, "Build reminders without sending any email")
	return cmd
}
