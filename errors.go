package go_qantani

import (
	"errors"
	"fmt"
)

// ValidationError indicates that a request is missing required fields or contains invalid data.
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation error"
	}
	if len(e.Fields) == 1 {
		fe := e.Fields[0]
		if fe.Field == "" {
			return fmt.Sprintf("validation error: %s", fe.Message)
		}
		return fmt.Sprintf("validation error: %s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("validation error: %d fields", len(e.Fields))
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// IsValidationError checks whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrorKind classifies failures of a Qantani API call.
type ErrorKind string

const (
	// KindRemote: the endpoint answered with a non-200 HTTP status.
	KindRemote ErrorKind = "remote"
	// KindMalformedResponse: the response body is not well-formed XML.
	KindMalformedResponse ErrorKind = "malformed_response"
	// KindProtocolViolation: the response is valid XML but misses a
	// mandatory element (Status, Description, or the result element).
	KindProtocolViolation ErrorKind = "protocol_violation"
	// KindRejected: Status was present but not "OK"; Description carries
	// the human-readable reason supplied by Qantani.
	KindRejected ErrorKind = "rejected"
)

// APIError represents a failed Qantani API call.
//
// Nothing is retried internally: every APIError surfaces to the caller.
type APIError struct {
	Kind        ErrorKind
	StatusCode  int // set for KindRemote
	Description string
}

func (e *APIError) Error() string {
	if e == nil {
		return "qantani api error"
	}
	switch e.Kind {
	case KindRemote:
		return fmt.Sprintf("qantani api error: remote status %d", e.StatusCode)
	case KindRejected:
		return fmt.Sprintf("qantani api error: rejected: %s", e.Description)
	default:
		return fmt.Sprintf("qantani api error: %s: %s", e.Kind, e.Description)
	}
}

// IsAPIError checks whether err is a *APIError.
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
