package service

import "errors"

// Sentinel errors returned by the services. Callers check them with errors.Is;
// the API layer maps each one to a status code and message.
// Validation failures are reported as *validation.Error instead.
var (
	// ErrUserExists indicates the email in a signup or profile update already belongs to a user.
	ErrUserExists = errors.New("user already exists")

	// ErrMissingCredentials indicates a login request lacked an email or a password.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrUserNotExist indicates a login attempt for an email that has no account.
	ErrUserNotExist = errors.New("user does not exist")

	// ErrInvalidPassword indicates the supplied password did not verify.
	ErrInvalidPassword = errors.New("invalid password")
)
