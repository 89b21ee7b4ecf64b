package gateway

import (
	"errors"
	"fmt"
)

// ErrUnreachable marks transport-level failures: the request never produced
// a usable response from the backend.
var ErrUnreachable = errors.New("backend unreachable")

// APIError is a request the server received and rejected. Detail is the
// human-readable message from the response payload, empty when the server
// sent none.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server rejected request: status %d", e.Status)
	}
	return fmt.Sprintf("server rejected request: status %d: %s", e.Status, e.Detail)
}
