package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError is returned by Build when a required field is missing or
// empty, and by the transport when it is handed unusable options.
type ValidationError struct {
	Operation string
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", e.Operation, e.Field, e.Reason)
}

func IsValidationErr(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// NotFoundError is returned by lookups that resolve to nothing, such as an
// operation id that the API does not define.
type NotFoundError struct {
	Resource  string   // what was looked up, e.g. "operation"
	Name      string   // the name that was not found
	Scope     string   // where it was looked up, e.g. "assistant-v1"
	Available []string // known names, listed in the message when present
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Resource, e.Name)
	if e.Scope != "" {
		msg += " in " + e.Scope
	}
	if len(e.Available) > 0 {
		msg += ". Available:\n  - " + strings.Join(e.Available, "\n  - ")
	}
	return msg
}

// IsNotFoundErr reports both a local NotFoundError and a 404 returned by the service.
func IsNotFoundErr(err error) bool {
	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		return true
	}
	return ExpectStatusCodes(err, http.StatusNotFound)
}

// ApiError represents an error returned from an API request.
type ApiError struct {
	Method        string
	URL           string
	StatusCode    int
	Body          string
	Message       string // "error" field of the Watson error payload, if any
	TransactionID string // X-Global-Transaction-Id response header
}

// Error implements the error interface.
func (e *ApiError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("response body: %s", e.Body)
	}
	msg := fmt.Sprintf("%s request to %s returned status code %d", e.Method, e.URL, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	} else {
		msg += ", response body: " + e.Body
	}
	if e.TransactionID != "" {
		msg += fmt.Sprintf(" (transaction id %s)", e.TransactionID)
	}
	return msg
}

func IsApiError(err error) bool {
	var apiErr *ApiError
	return errors.As(err, &apiErr)
}

func IgnoreStatusCodes(err error, codes ...int) error {
	if ExpectStatusCodes(err, codes...) {
		return nil
	}
	return err
}

func ExpectStatusCodes(err error, codes ...int) bool {
	var apiErr *ApiError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.StatusCode == code {
			return true
		}
	}
	return false
}
