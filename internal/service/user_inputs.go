package service

import (
	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/validation"
)

const (
	dateFormatMessage      = "Invalid date format, expected YYYY-MM-DD"
	passwordTooLongMessage = "Password must be at most 72 characters long"
)

// SignupInput is the payload of a signup request.
// Text fields are capped at the VARCHAR(255) width of the users table.
type SignupInput struct {
	FirstName   string `json:"firstName"   validate:"required,max=255"`
	LastName    string `json:"lastName"    validate:"required,max=255"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,isodate"`
	Country     string `json:"country"     validate:"required,max=255"`
	Email       string `json:"email"       validate:"required,max=255,email"`
	Password    string `json:"password"    validate:"required,min=6,max=72"`
}

var signupMessages = validation.Messages{
	"firstName.required":   "First name is required",
	"firstName.max":        "First name must be at most 255 characters long",
	"lastName.required":    "Last name is required",
	"lastName.max":         "Last name must be at most 255 characters long",
	"dateOfBirth.required": dateFormatMessage,
	"dateOfBirth.isodate":  dateFormatMessage,
	"country.required":     "Country is required",
	"country.max":          "Country must be at most 255 characters long",
	"email.required":       "Invalid email address",
	"email.max":            "Email must be at most 255 characters long",
	"email.email":          "Invalid email address",
	"password.required":    "Password must be at least 6 characters long",
	"password.min":         "Password must be at least 6 characters long",
	"password.max":         passwordTooLongMessage,
}

// LoginInput is the payload of a login request.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserInput is the payload of a partial profile update.
// The password cannot be changed here; a password key in the body is ignored.
type UpdateUserInput struct {
	FirstName   *string `json:"firstName"   validate:"omitnil,min=1,max=255"`
	LastName    *string `json:"lastName"    validate:"omitnil,min=1,max=255"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitnil,isodate"`
	Country     *string `json:"country"     validate:"omitnil,min=1,max=255"`
	Email       *string `json:"email"       validate:"omitnil,max=255,email"`
}

var updateUserMessages = validation.Messages{
	"firstName.min":       "First name is required",
	"firstName.max":       "First name must be at most 255 characters long",
	"lastName.min":        "Last name is required",
	"lastName.max":        "Last name must be at most 255 characters long",
	"dateOfBirth.isodate": dateFormatMessage,
	"country.min":         "Country is required",
	"country.max":         "Country must be at most 255 characters long",
	"email.max":           "Email must be at most 255 characters long",
	"email.email":         "Invalid email address",
}

// Patch converts the input into a domain patch. It assumes the input has
// already passed validation, so the date parses.
func (in UpdateUserInput) Patch() (domain.UserPatch, error) {
	p := domain.UserPatch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Country:   in.Country,
		Email:     in.Email,
	}
	if in.DateOfBirth != nil {
		dob, err := validation.ParseDate(*in.DateOfBirth)
		if err != nil {
			return domain.UserPatch{}, err
		}
		p.DateOfBirth = &dob
	}
	return p, nil
}
