package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned for requests on a remote that is not connected.
	ErrClosed = errors.New("remote closed")
	// ErrRemoteSignUnsupported is returned when an API remote is asked to
	// submit an unsigned transaction.
	ErrRemoteSignUnsupported = errors.New("remote signing is not supported by the api remote")
)

// ResponseError is an error reported by the server for one request.
type ResponseError struct {
	Code    string
	Number  int
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
