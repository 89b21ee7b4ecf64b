package entity

import "errors"

var (
	ErrPaymentInProgress = errors.New("payment already in progress")
	ErrNotAuthenticated  = errors.New("not authenticated")
)
