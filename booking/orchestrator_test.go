package booking_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbook/booking"
	"eventbook/entity"
	"eventbook/gateway"
)

var (
	testSession = entity.Session{Token: "t1", UserID: 1, Name: "Uma"}
	testEvent   = entity.EventSummary{ID: 7, Title: "Sunburn Festival 2025", Price: 3999, AvailableSeats: 20000}
)

func newOrchestrator(orders booking.OrderService) *booking.Orchestrator {
	return booking.NewOrchestrator(orders, booking.SimulatedProvider{}, logrus.NewEntry(logrus.New()))
}

func TestPayHappyPath(t *testing.T) {
	orders := &gateway.PaymentMock{BookingID: "bk_1"}
	saga := newOrchestrator(orders)

	receipt, err := saga.Pay(context.Background(), testSession, testEvent)
	require.NoError(t, err)

	assert.Equal(t, "bk_1", receipt.BookingID)
	assert.Equal(t, "order_1", receipt.OrderID)
	assert.True(t, strings.HasPrefix(receipt.PaymentID, "pay_test_"))
	assert.Equal(t, testEvent.Price, receipt.Amount)

	// The synthesized payment id is forwarded verbatim to confirmation.
	require.Len(t, orders.ConfirmCalls, 1)
	assert.Equal(t, receipt.OrderID, orders.ConfirmCalls[0].OrderID)
	assert.Equal(t, receipt.PaymentID, orders.ConfirmCalls[0].PaymentID)

	assert.Equal(t, booking.StateIdle, saga.State())
}

func TestPaymentIDUniquePerAttempt(t *testing.T) {
	orders := &gateway.PaymentMock{}
	saga := newOrchestrator(orders)

	first, err := saga.Pay(context.Background(), testSession, testEvent)
	require.NoError(t, err)
	second, err := saga.Pay(context.Background(), testSession, testEvent)
	require.NoError(t, err)

	assert.NotEqual(t, first.PaymentID, second.PaymentID)
}

func TestOrderCreationFailureReturnsToIdle(t *testing.T) {
	orders := &gateway.PaymentMock{
		CreateOrderErr: &gateway.APIError{Status: http.StatusBadRequest, Detail: "Event sold out"},
	}
	saga := newOrchestrator(orders)

	_, err := saga.Pay(context.Background(), testSession, testEvent)

	var stepErr *booking.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, booking.StateCreatingOrder, stepErr.Step)

	// The server detail stays reachable through the step wrapper.
	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Event sold out", apiErr.Detail)

	assert.Empty(t, orders.ConfirmCalls)
	assert.Equal(t, booking.StateIdle, saga.State())
}

func TestConfirmFailureRetriesWithFreshOrder(t *testing.T) {
	orders := &gateway.PaymentMock{ConfirmErr: &gateway.APIError{Status: http.StatusBadGateway}}
	saga := newOrchestrator(orders)

	_, err := saga.Pay(context.Background(), testSession, testEvent)
	var stepErr *booking.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, booking.StateConfirming, stepErr.Step)
	assert.Equal(t, booking.StateIdle, saga.State())

	// Retry does not resume: it creates a new order.
	orders.ConfirmErr = nil
	receipt, err := saga.Pay(context.Background(), testSession, testEvent)
	require.NoError(t, err)
	assert.Equal(t, "order_2", receipt.OrderID)
	assert.Len(t, orders.CreateOrderCalls, 2)
}

type failingProvider struct {
	err error
}

func (p failingProvider) Initiate(context.Context, entity.OrderArtifact) (entity.PaymentArtifact, error) {
	return entity.PaymentArtifact{}, p.err
}

func TestProviderFailureSkipsConfirmation(t *testing.T) {
	orders := &gateway.PaymentMock{}
	saga := booking.NewOrchestrator(orders, failingProvider{err: booking.ErrUserCancelled}, logrus.NewEntry(logrus.New()))

	_, err := saga.Pay(context.Background(), testSession, testEvent)

	require.ErrorIs(t, err, booking.ErrUserCancelled)
	var stepErr *booking.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, booking.StateAcquiringPayment, stepErr.Step)
	assert.Empty(t, orders.ConfirmCalls)
	assert.Equal(t, booking.StateIdle, saga.State())
}

type blockingOrders struct {
	gateway.PaymentMock
	entered chan struct{}
	release chan struct{}
}

func (b *blockingOrders) CreateOrder(ctx context.Context, session entity.Session, eventID int64) (entity.OrderArtifact, error) {
	close(b.entered)
	<-b.release
	return b.PaymentMock.CreateOrder(ctx, session, eventID)
}

func TestConcurrentPayIsRejected(t *testing.T) {
	orders := &blockingOrders{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	saga := booking.NewOrchestrator(orders, booking.SimulatedProvider{}, logrus.NewEntry(logrus.New()))

	done := make(chan error, 1)
	go func() {
		_, err := saga.Pay(context.Background(), testSession, testEvent)
		done <- err
	}()

	<-orders.entered
	_, err := saga.Pay(context.Background(), testSession, testEvent)
	assert.ErrorIs(t, err, entity.ErrPaymentInProgress)

	close(orders.release)
	require.NoError(t, <-done)
	assert.Equal(t, booking.StateIdle, saga.State())
}

func TestStepErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := &booking.StepError{Step: booking.StateConfirming, Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "confirming_booking")
}
