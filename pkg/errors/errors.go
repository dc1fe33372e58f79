/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package errors defines the failure kinds surfaced by the comments client.
// Every error returned by this module unwraps to exactly one of the sentinel
// values below, so callers should test with errors.Is.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrArgument is raised locally, before any I/O, when a caller supplies
	// an empty or otherwise unusable value.
	ErrArgument = errors.New("invalid argument")

	// ErrValidation is raised when the service rejects a request as malformed.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is raised when the service reports the referenced resource
	// does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrAuth is raised when the service rejects the credentials.
	ErrAuth = errors.New("authorization failed")

	// ErrTransport is raised on network failure, timeout or cancellation.
	ErrTransport = errors.New("transport failure")

	// ErrUnexpectedResponse is raised when the service answers with a status
	// or body the client does not understand.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// Error is a failure reported by the remote service.
type Error struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Code is the machine readable error code from the response body, if any.
	Code string
	// Description is the human readable error from the response body, if any.
	Description string

	kind error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%v (status: %d", e.kind, e.StatusCode)

	if e.Code != "" {
		s += ", code: " + e.Code
	}

	s += ")"

	if e.Description != "" {
		s += ": " + e.Description
	}

	return s
}

func (e *Error) Unwrap() error {
	return e.kind
}

// body is the error document returned by the service.
type body struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"errorDescription"`
}

// codes refines the status code mapping where the service is more specific.
//
//nolint:gochecknoglobals
var codes = map[string]error{
	"resource_not_found": ErrNotFound,
	"not_authorized":     ErrAuth,
	"not_allowed":        ErrAuth,
	"invalid_request":    ErrValidation,
	"invalid_parameter":  ErrValidation,
	"parameter_required": ErrValidation,
}

func kindFromStatus(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusNotFound:
		return ErrNotFound
	}

	return ErrUnexpectedResponse
}

// FromResponse turns a non-successful response into an Error. A body that
// cannot be decoded is kept as the description.
func FromResponse(statusCode int, data []byte) error {
	e := &Error{
		StatusCode: statusCode,
		kind:       kindFromStatus(statusCode),
	}

	var b body

	if err := json.Unmarshal(data, &b); err != nil {
		e.Description = string(data)

		return e
	}

	e.Code = b.Error
	e.Description = b.ErrorDescription

	if kind, ok := codes[b.Error]; ok {
		e.kind = kind
	}

	return e
}

// Argument returns an ErrArgument with a formatted reason.
func Argument(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrArgument, fmt.Sprintf(format, a...))
}

// Transport wraps a network level failure.
func Transport(err error) error {
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

// UnexpectedResponse returns an ErrUnexpectedResponse with a formatted reason.
func UnexpectedResponse(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedResponse, fmt.Sprintf(format, a...))
}
