package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eduline/eduline-client/internal/pkg/validation"
)

func newNotificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "List and manage notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireAuth("/notifications"); err != nil {
				return err
			}
			if err := a.notifications.Fetch(cmd.Context()); err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}

			items := a.notifications.Items()
			if len(items) == 0 {
				cmd.Println("No notifications.")
				return nil
			}
			for _, n := range items {
				marker := " "
				if !n.IsRead {
					marker = "*"
				}
				cmd.Printf("%s [%d] %-10s %s — %s\n", marker, n.ID, n.Type, n.Title, n.Message)
			}
			cmd.Printf("%d unread\n", a.notifications.UnreadCount())
			return nil
		},
	}

	cmd.AddCommand(
		newNotificationsReadCommand(),
		newNotificationsReadAllCommand(),
		newNotificationsRemoveCommand(),
	)
	return cmd
}

func newNotificationsReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireAuth("/notifications"); err != nil {
				return err
			}
			if err := a.notifications.MarkAsRead(cmd.Context(), id); err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}
			cmd.Println("Marked as read.")
			return nil
		},
	}
}

func newNotificationsReadAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireAuth("/notifications"); err != nil {
				return err
			}
			if err := a.notifications.MarkAllAsRead(cmd.Context()); err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}
			cmd.Println("All notifications marked as read.")
			return nil
		},
	}
}

func newNotificationsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireAuth("/notifications"); err != nil {
				return err
			}
			if err := a.notifications.Remove(cmd.Context(), id); err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}
			cmd.Println("Notification removed.")
			return nil
		},
	}
}
