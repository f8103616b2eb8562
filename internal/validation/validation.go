// Package validation checks decoded request payloads against declarative
// field constraints and reports every violation as a human-readable message.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayouts are the accepted encodings for date fields, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Messages maps "<jsonField>.<tag>" to the message reported when that
// constraint fails, e.g. "title.required" -> "Title is required".
type Messages map[string]string

// Error is returned when a payload violates one or more constraints.
// It carries one message per failed field.
type Error struct {
	Messages []string
}

// Error joins the individual messages for display.
func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Validator wraps a go-playground validator configured to report fields by
// their JSON names and to understand the isodate tag.
// It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Struct validates s and translates failures through msgs.
// It returns nil, an *Error listing every failed field, or a wrapped error
// if s cannot be validated at all.
func (v *Validator) Struct(s any, msgs Messages) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate payload: %w", err)
	}

	out := &Error{Messages: make([]string, 0, len(verrs))}
	for _, fe := range verrs {
		out.Messages = append(out.Messages, msgs.lookup(fe.Field(), fe.Tag()))
	}
	return out
}

func (m Messages) lookup(field, tag string) string {
	if msg, ok := m[field+"."+tag]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}

// FromDecodeError converts a JSON type mismatch into an *Error so that a
// payload such as {"available": "yes"} is reported like any other constraint
// violation. A mismatch of the whole body (an array instead of an object)
// and other errors are returned unchanged.
func FromDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return err
	}
	return &Error{Messages: []string{fmt.Sprintf("%s must be %s", typeErr.Field, typeName(typeErr.Type))}}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "a value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "a list"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return "a " + t.Kind().String()
	}
}

// ParseDate parses a date in one of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("parse date %q: %w", s, lastErr)
}
