// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package validation wraps go-playground/validator v10 behind a
// thread-safe singleton with error translation into the API error format.
//
// The relay's input policy is permissive: absent optional fields fall
// back to defaults, so validation applies only to fields that are
// present but malformed beyond repair (out-of-range coordinates, absurd
// limits).
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single field validation failure.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e FieldError) Error() string { return e.Message }

// RequestError is a collection of field validation failures for one
// request.
type RequestError struct {
	fields []FieldError
}

// Fields returns the individual failures.
func (e *RequestError) Fields() []FieldError { return e.fields }

// Error implements the error interface.
func (e *RequestError) Error() string {
	if len(e.fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.fields))
	for i, f := range e.fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Details returns a map suitable for the APIError details field.
func (e *RequestError) Details() map[string]interface{} {
	if len(e.fields) == 0 {
		return nil
	}
	f := e.fields[0]
	return map[string]interface{}{
		"field": f.Field,
		"tag":   f.Tag,
		"value": f.Value,
	}
}

// Validator returns the singleton validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Built-in validators cover the relay's needs: latitude,
		// longitude, min, max, oneof.
	})
	return validate
}

// Struct validates a struct and returns nil or a *RequestError.
func Struct(s interface{}) *RequestError {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &RequestError{fields: []FieldError{{
			Field:   "unknown",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: translate(fe),
		}
	}
	return &RequestError{fields: fields}
}

// translate converts a validator failure to a human-readable message.
func translate(fe validator.FieldError) string {
	field, tag, param := fe.Field(), fe.Tag(), fe.Param()
	switch tag {
	case "latitude":
		return fmt.Sprintf("%s must be a valid latitude (-90 to 90)", field)
	case "longitude":
		return fmt.Sprintf("%s must be a valid longitude (-180 to 180)", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "required":
		return fmt.Sprintf("%s is required", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
