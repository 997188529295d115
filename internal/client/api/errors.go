// Package api implements the REST client for the SkyWhySales backend and
// owns the failure taxonomy shared by the session and entity stores.
package api

import (
	"errors"
	"fmt"
	"net/http"
)

// User-facing messages for failures that must never expose internals.
const (
	// MsgServiceUnavailable covers infrastructure failures: no response at
	// all, or a gateway answering 502 for the backend.
	MsgServiceUnavailable = "SkyWhySales в настоящее время испытывает перебои в работе. Повторите попытку позже."

	// MsgInsufficientPrivilege is the fixed message for authorization
	// denials computed locally, before any request is sent.
	MsgInsufficientPrivilege = "Недостаточно прав"
)

// Error is a server-acknowledged rejection: the backend produced a non-2xx
// response. Transport failures that never reached a response are ordinary
// wrapped errors and are never of this type.
type Error struct {
	Status  int
	Payload string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Payload)
}

// HasResponse reports whether the failure carried an HTTP response.
func HasResponse(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}

// Classify maps a request failure onto the message shown to the user.
// Failures without a response and 502 responses collapse into the fixed
// outage message; every other rejection surfaces the server payload
// verbatim.
func Classify(err error) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status == http.StatusBadGateway {
		return MsgServiceUnavailable
	}
	return apiErr.Payload
}
