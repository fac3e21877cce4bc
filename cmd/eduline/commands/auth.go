package commands

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/eduline/eduline-client/internal/core/domain"
	"github.com/eduline/eduline-client/internal/pkg/validation"
)

func newLoginCommand() *cobra.Command {
	var req domain.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the platform",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if msgs := validation.Struct(req); len(msgs) > 0 {
				return fieldErrors(msgs)
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.sessions.Login(cmd.Context(), req); err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}

			cmd.Printf("Welcome, %s\n", a.sess.FullName())
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Login, "login", "", "username or email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCommand() *cobra.Command {
	var req domain.RegisterRequest
	var picturePath string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if picturePath != "" {
				upload, err := readUpload(picturePath)
				if err != nil {
					return err
				}
				req.ProfilePicture = upload
			}
			if msgs := validation.Struct(req); len(msgs) > 0 {
				return fieldErrors(msgs)
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.sessions.Register(cmd.Context(), req); err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}

			cmd.Printf("Account created. Welcome, %s\n", a.sess.FullName())
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "unique username")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&req.PasswordConfirmation, "confirm", "", "password confirmation")
	cmd.Flags().StringVar(&req.FullName, "name", "", "display name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone (optional)")
	cmd.Flags().StringVar(&req.DateOfBirth, "birth-date", "", "date of birth, YYYY-MM-DD (optional)")
	cmd.Flags().StringVar(&req.Gender, "gender", "", "gender (optional)")
	cmd.Flags().StringVar(&picturePath, "picture", "", "path to a profile picture (optional)")
	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			a.sessions.Logout(cmd.Context())
			cmd.Println("Logged out.")
			return nil
		},
	}
}

// readUpload loads a local file as a multipart attachment, sniffing
// its content type from the first bytes.
func readUpload(path string) (*domain.FileUpload, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &domain.FileUpload{
		FileName:    filepath.Base(path),
		ContentType: http.DetectContentType(content),
		Content:     content,
	}, nil
}

// fieldErrors renders a field → message mapping as a single error.
func fieldErrors(msgs map[string]string) error {
	fields := make([]string, 0, len(msgs))
	for f := range msgs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := ""
	for _, f := range fields {
		if out != "" {
			out += "; "
		}
		if f == validation.GeneralField {
			out += msgs[f]
		} else {
			out += f + ": " + msgs[f]
		}
	}
	return fmt.Errorf("%s", out)
}
