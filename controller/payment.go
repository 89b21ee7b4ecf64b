package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"eventbook/booking"
	"eventbook/entity"
	"eventbook/navigation"
)

// Payment owns the booking saga. The pay trigger is disabled for the whole
// create-order → acquire-payment → confirm sequence, both here and inside
// the orchestrator, so repeated activations cannot start a second saga.
type Payment struct {
	saga   *booking.Orchestrator
	nav    *navigation.Navigator
	logger *logrus.Entry

	mu     sync.Mutex
	busy   bool
	errMsg string
}

func NewPayment(saga *booking.Orchestrator, nav *navigation.Navigator, logger *logrus.Entry) *Payment {
	return &Payment{saga: saga, nav: nav, logger: logger}
}

func (p *Payment) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

func (p *Payment) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// Pay runs one saga attempt. On success the route is replaced with the
// confirmation screen so checkout cannot be re-entered via back; on failure
// the error is shown and the trigger re-enabled. A retry starts a fresh
// saga from order creation.
func (p *Payment) Pay(ctx context.Context, params navigation.PaymentParams) {
	if !p.begin() {
		return
	}
	defer p.finish()

	receipt, err := p.saga.Pay(ctx, params.Session, params.Event)
	if err != nil {
		if errors.Is(err, entity.ErrPaymentInProgress) || errors.Is(err, booking.ErrUserCancelled) {
			return
		}
		// A gateway failure is neither a server rejection nor a connectivity
		// problem, so it bypasses the transport-oriented message mapping.
		var gatewayErr *booking.GatewayError
		if errors.As(err, &gatewayErr) {
			p.fail(payFallback(err))
			return
		}
		p.fail(userMessage(err, payFallback(err)))
		return
	}

	p.nav.Replace(
		navigation.ConfirmationParams{
			Session:   params.Session,
			Event:     params.Event,
			BookingID: receipt.BookingID,
			PaymentID: receipt.PaymentID,
			Amount:    receipt.Amount,
		},
		navigation.HomeParams{Session: params.Session},
	)
}

func (p *Payment) GoBack() {
	p.nav.GoBack()
}

func payFallback(err error) string {
	var stepErr *booking.StepError
	if errors.As(err, &stepErr) {
		switch stepErr.Step {
		case booking.StateCreatingOrder:
			return "Failed to create order"
		case booking.StateConfirming:
			return "Booking confirmation failed"
		}
	}
	return "Payment failed. Please try again."
}

func (p *Payment) begin() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.busy {
		return false
	}
	p.busy = true
	p.errMsg = ""
	return true
}

func (p *Payment) finish() {
	p.mu.Lock()
	p.busy = false
	p.mu.Unlock()
}

func (p *Payment) fail(msg string) {
	p.mu.Lock()
	p.errMsg = msg
	p.mu.Unlock()
}
