package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validateStruct runs the struct tags and converts any failure into a
// validation APIError carrying a human-readable message. This is the
// pre-network precondition check; nothing is sent when it fails.
func (c *Client) validateStruct(i any) *APIError {
	err := c.validate.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return errValidation(strings.Join(msgs, "; "))
	}
	return errValidation(err.Error())
}

// fieldError converts a single ValidationError into a message that names the
// field's business meaning.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		if field == "organization" {
			return "organization name is required for buyer registration"
		}
		return fmt.Sprintf("%s is required when %s", field, strings.ToLower(fe.Param()))
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
