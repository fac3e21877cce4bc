package commands

import (
	"github.com/spf13/cobra"

	"github.com/eduline/eduline-client/internal/core/domain"
	"github.com/eduline/eduline-client/internal/pkg/validation"
)

func newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireAuth("/profile"); err != nil {
				return err
			}
			if err := a.sessions.RefreshProfile(cmd.Context()); err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}

			u := a.sessions.CurrentUser()
			cmd.Printf("%s (@%s)\n", u.FullName, u.Username)
			cmd.Printf("Email:  %s\n", u.Email)
			cmd.Printf("Type:   %s\n", u.UserType)
			cmd.Printf("Status: %s\n", u.Status)
			if u.Phone != nil {
				cmd.Printf("Phone:  %s\n", *u.Phone)
			}
			if exp, ok := a.sessions.TokenExpiresAt(); ok {
				cmd.Printf("Session expires %s\n", exp.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.AddCommand(newProfileUpdateCommand(), newChangePasswordCommand())
	return cmd
}

func newProfileUpdateCommand() *cobra.Command {
	var req domain.UpdateProfileRequest
	var picturePath string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if picturePath != "" {
				upload, err := readUpload(picturePath)
				if err != nil {
					return err
				}
				req.ProfilePicture = upload
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireAuth("/profile"); err != nil {
				return err
			}
			if err := a.sessions.UpdateProfile(cmd.Context(), req); err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}

			cmd.Println("Profile updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.FullName, "name", "", "display name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&req.DateOfBirth, "birth-date", "", "date of birth, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Gender, "gender", "", "gender")
	cmd.Flags().StringVar(&req.Address, "address", "", "postal address")
	cmd.Flags().StringVar(&picturePath, "picture", "", "path to a profile picture")
	return cmd
}

func newChangePasswordCommand() *cobra.Command {
	var req domain.ChangePasswordRequest

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if msgs := validation.Struct(req); len(msgs) > 0 {
				return fieldErrors(msgs)
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireAuth("/profile"); err != nil {
				return err
			}
			if err := a.sessions.ChangePassword(cmd.Context(), req); err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}

			cmd.Println("Password changed.")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.CurrentPassword, "current", "", "current password")
	cmd.Flags().StringVar(&req.NewPassword, "new", "", "new password")
	cmd.Flags().StringVar(&req.NewPasswordConfirmation, "confirm", "", "new password confirmation")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	_ = cmd.MarkFlagRequired("confirm")
	return cmd
}
