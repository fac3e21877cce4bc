package domain

// User mirrors the platform's user resource as returned by the API.
// The client never mutates a User directly; changes go through the
// profile endpoints and the response overwrites the local copy.
type User struct {
	ID          int     `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	ImageURL    *string `json:"image_url"`
	UserType    string  `json:"user_type"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// LoginRequest carries the credentials sent to POST /auth/login.
// Login accepts either a username or an email address.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the multipart payload for POST /auth/register.
// ProfilePicture, when set, is sent as a binary form part.
type RegisterRequest struct {
	Username             string `validate:"required,min=3"`
	Email                string `validate:"required,email"`
	Password             string `validate:"required,min=8"`
	PasswordConfirmation string `validate:"required,eqfield=Password"`
	FullName             string `validate:"required"`
	Phone                string
	DateOfBirth          string
	Gender               string
	ProfilePicture       *FileUpload
}

// UpdateProfileRequest is the multipart payload for PUT /auth/profile.
// Empty fields are omitted from the form, leaving them untouched server-side.
type UpdateProfileRequest struct {
	FullName       string
	Phone          string
	DateOfBirth    string
	Gender         string
	Address        string
	ProfilePicture *FileUpload
}

// ChangePasswordRequest is the payload for PUT /auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword         string `json:"current_password" validate:"required"`
	NewPassword             string `json:"new_password" validate:"required,min=8"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"required,eqfield=NewPassword"`
}

// ForgotPasswordRequest is the payload for POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the payload for POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token                string `json:"token" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// AuthResponse is the data payload returned by login and register.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// FileUpload is a binary attachment for a multipart request.
type FileUpload struct {
	FileName    string
	ContentType string
	Content     []byte
}
