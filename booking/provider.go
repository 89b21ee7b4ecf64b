package booking

import (
	"context"
	"errors"

	"github.com/lithammer/shortuuid/v3"

	"eventbook/entity"
)

// ErrUserCancelled is returned when the user dismisses the gateway's
// payment sheet without paying.
var ErrUserCancelled = errors.New("payment cancelled by user")

type GatewayError struct {
	Reason string
}

func (e *GatewayError) Error() string {
	return "payment gateway error: " + e.Reason
}

// PaymentProvider hands control to a payment gateway for a created order
// and reports the gateway-issued payment identifier. Implementations may
// fail with ErrUserCancelled or *GatewayError.
type PaymentProvider interface {
	Initiate(ctx context.Context, order entity.OrderArtifact) (entity.PaymentArtifact, error)
}

// SimulatedProvider stands in for a real gateway SDK. It issues a test
// payment id, unique per attempt, and never fails.
type SimulatedProvider struct{}

func (SimulatedProvider) Initiate(_ context.Context, _ entity.OrderArtifact) (entity.PaymentArtifact, error) {
	return entity.PaymentArtifact{PaymentID: "pay_test_" + shortuuid.New()}, nil
}
