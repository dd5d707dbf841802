package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP status. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx HTTP outcome. Message carries the server-supplied
// {"error": ...} body and stays empty when the server sent none.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, msg)
}

// ErrorMessage extracts a human-readable message from err. Server-supplied
// messages win; anything else (transport failures, missing error bodies,
// decode errors) falls back to the provided generic message.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
