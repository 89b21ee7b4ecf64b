// Package booking sequences the payment saga: order creation, payment
// artifact acquisition, booking confirmation. Three steps, two dependent
// network calls, no compensating transactions and nothing persisted between
// steps. A failed attempt always restarts from order creation.
package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"eventbook/entity"
)

type State string

const (
	StateIdle             State = "idle"
	StateCreatingOrder    State = "creating_order"
	StateAcquiringPayment State = "acquiring_payment"
	StateConfirming       State = "confirming_booking"
)

type OrderService interface {
	CreateOrder(ctx context.Context, session entity.Session, eventID int64) (entity.OrderArtifact, error)
	ConfirmBooking(ctx context.Context, session entity.Session, orderID, paymentID string) (string, error)
}

// Receipt is the output of a completed saga. It is the only way to obtain a
// booking id on the client, so a confirmation screen cannot exist without a
// server-confirmed booking.
type Receipt struct {
	BookingID string
	OrderID   string
	PaymentID string
	Amount    entity.Price
}

// StepError reports which saga step failed; the cause is available via
// errors.Unwrap.
type StepError struct {
	Step State
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type Orchestrator struct {
	orders   OrderService
	payments PaymentProvider
	logger   *logrus.Entry

	mu    sync.Mutex
	state State
}

func NewOrchestrator(orders OrderService, payments PaymentProvider, logger *logrus.Entry) *Orchestrator {
	return &Orchestrator{
		orders:   orders,
		payments: payments,
		logger:   logger,
		state:    StateIdle,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Pay runs one saga attempt. While an attempt is in flight, further calls
// return entity.ErrPaymentInProgress without touching the backend. Every
// failure returns the orchestrator to idle; a retry creates a new order
// rather than resuming, which relies on abandoned orders being cheap on the
// server side.
func (o *Orchestrator) Pay(ctx context.Context, session entity.Session, event entity.EventSummary) (Receipt, error) {
	if !o.begin() {
		return Receipt{}, entity.ErrPaymentInProgress
	}
	defer o.setState(StateIdle)

	log := o.logger.WithFields(logrus.Fields{
		"event_id": event.ID,
		"user_id":  session.UserID,
	})

	order, err := o.orders.CreateOrder(ctx, session, event.ID)
	if err != nil {
		log.WithError(err).Warn("order creation failed")
		return Receipt{}, &StepError{Step: StateCreatingOrder, Err: err}
	}
	log = log.WithField("order_id", order.OrderID)

	o.setState(StateAcquiringPayment)
	payment, err := o.payments.Initiate(ctx, order)
	if err != nil {
		log.WithError(err).Warn("payment acquisition failed")
		return Receipt{}, &StepError{Step: StateAcquiringPayment, Err: err}
	}

	o.setState(StateConfirming)
	bookingID, err := o.orders.ConfirmBooking(ctx, session, order.OrderID, payment.PaymentID)
	if err != nil {
		log.WithError(err).WithField("payment_id", payment.PaymentID).Warn("booking confirmation failed")
		return Receipt{}, &StepError{Step: StateConfirming, Err: err}
	}

	log.WithField("booking_id", bookingID).Info("booking confirmed")

	return Receipt{
		BookingID: bookingID,
		OrderID:   order.OrderID,
		PaymentID: payment.PaymentID,
		Amount:    event.Price,
	}, nil
}

func (o *Orchestrator) begin() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateIdle {
		return false
	}
	o.state = StateCreatingOrder
	return true
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}
