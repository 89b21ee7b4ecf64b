package controller

import (
	"errors"

	"eventbook/gateway"
)

const connectivityMessage = "Cannot connect to server."

// userMessage maps an operation error onto the line shown to the user:
// the server's detail when it sent one, the given fallback for a rejection
// without detail, and a connectivity message for everything transport-level.
func userMessage(err error, fallback string) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return fallback
	}
	return connectivityMessage
}
