// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// Handlers run the Validator on decoded request payloads before anything
// reaches a service, so the services and storage only ever see data that
// passed the edge checks. The freight-specific rules (shipping line,
// container number, phone) are enforced here on the server regardless of
// what the entry form checked.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jerichotransport/freightdesk/internal/platform/apperr"
)

var (
	// shippingLineRegex matches exactly 3 uppercase ASCII letters (SCAC-style carrier code).
	shippingLineRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	// containerNumberRegex matches the ISO 6346 shape: 4 uppercase letters + 7 digits.
	containerNumberRegex = regexp.MustCompile(`^[A-Z]{4}[0-9]{7}$`)
	// phoneRegex matches exactly 10 digits.
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// ShippingLine fails if the value is not exactly 3 uppercase ASCII letters.
//
// Empty values pass: the rule only constrains the format when a carrier code
// was actually submitted.
func (v *Validator) ShippingLine(field, value string) *Validator {
	if value != "" && !shippingLineRegex.MatchString(value) {
		v.add(field, "Must be exactly 3 uppercase letters")
	}
	return v
}

// ContainerNumber fails if the value does not match 4 uppercase letters
// followed by 7 digits. Empty values pass.
func (v *Validator) ContainerNumber(field, value string) *Validator {
	if value != "" && !containerNumberRegex.MatchString(value) {
		v.add(field, "Must be 4 letters followed by 7 digits")
	}
	return v
}

// Phone fails if the value is not exactly 10 digits. Empty values pass.
func (v *Validator) Phone(field, value string) *Validator {
	if value != "" && !phoneRegex.MatchString(value) {
		v.add(field, "Must be exactly 10 digits")
	}
	return v
}

// MinFloat fails if the value is below min.
func (v *Validator) MinFloat(field string, value, min float64) *Validator {
	if value < min {
		v.add(field, fmt.Sprintf("Must be at least %g", min))
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("container_weight", weight < 2, "Below the legal axle minimum")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
