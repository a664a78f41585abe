package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kambari/kambari-agent/pkg/core/services"
)

// AddMemberCmd creates the addMember command
func AddMemberCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addMember <name> [phone] [email]",
		Short: "Add a new member to the roster",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var phone, email string
			if len(args) > 1 {
				phone = args[1]
			}
			if len(args) > 2 {
				email = args[2]
			}

			member, err := services.AddMember(app.Ctx, app.Database, app.Logger, args[0], phone, email)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Member added!\n\n")
			fmt.Printf("ID:    %s\n", member.ID)
			fmt.Printf("Name:  %s\n", member.Name)
			if member.Phone != "" {
				fmt.Printf("Phone: %s\n", member.Phone)
			}
			if member.Email != "" {
				fmt.Printf("Email: %s\n", member.Email)
			}
			fmt.Println()
			return nil
		},
	}
}

// ListMembersCmd creates the listMembers command
func ListMembersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listMembers",
		Short: "List roster members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			members, err := services.ListMembers(app.Ctx, app.Database, app.Logger, !all)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d members:\n\n", len(members))
			for _, m := range members {
				status := "active"
				if !m.IsActive {
					status = "inactive"
				}
				contact := m.Phone
				if m.Email != "" {
					if contact != "" {
						contact += " / "
					}
					contact += m.Email
				}
				if contact == "" {
					contact = "no contact details"
				}
				fmt.Printf("- %s (%s) - %s - %s\n", m.Name, m.ID, status, contact)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include deactivated members")
	return cmd
}

// DeactivateMemberCmd creates the deactivateMember command
func DeactivateMemberCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivateMember <member_id>",
		Short: "Deactivate a member, keeping their history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.SetMemberActive(app.Ctx, app.Database, app.Logger, args[0], false); err != nil {
				return err
			}
			fmt.Printf("\n✓ Member %s deactivated\n\n", args[0])
			return nil
		},
	}
}

// ReactivateMemberCmd creates the reactivateMember command
func ReactivateMemberCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reactivateMember <member_id>",
		Short: "Reactivate a previously deactivated member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.SetMemberActive(app.Ctx, app.Database, app.Logger, args[0], true); err != nil {
				return err
			}
			fmt.Printf("\n✓ Member %s reactivated\n\n", args[0])
			return nil
		},
	}
}

// RemoveMemberCmd creates the removeMember command
func RemoveMemberCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeMember <member_id>",
		Short: "Permanently remove a member with no schedule history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RemoveMember(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}
			fmt.Printf("\n✓ Member %s removed\n\n", args[0])
			return nil
		},
	}
}
