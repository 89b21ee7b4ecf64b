package gateway

import (
	"context"
	"fmt"
	"sync"

	"eventbook/entity"
)

type ConfirmCall struct {
	OrderID   string
	PaymentID string
}

type PaymentMock struct {
	mock sync.Mutex

	CreateOrderCalls []int64
	ConfirmCalls     []ConfirmCall

	CreateOrderErr error
	ConfirmErr     error
	BookingID      string
}

func (m *PaymentMock) CreateOrder(ctx context.Context, session entity.Session, eventID int64) (entity.OrderArtifact, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	if !session.Authenticated() {
		return entity.OrderArtifact{}, entity.ErrNotAuthenticated
	}

	m.CreateOrderCalls = append(m.CreateOrderCalls, eventID)

	if m.CreateOrderErr != nil {
		return entity.OrderArtifact{}, m.CreateOrderErr
	}
	return entity.OrderArtifact{
		OrderID: fmt.Sprintf("order_%d", len(m.CreateOrderCalls)),
	}, nil
}

func (m *PaymentMock) ConfirmBooking(ctx context.Context, session entity.Session, orderID, paymentID string) (string, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	if !session.Authenticated() {
		return "", entity.ErrNotAuthenticated
	}

	m.ConfirmCalls = append(m.ConfirmCalls, ConfirmCall{OrderID: orderID, PaymentID: paymentID})

	if m.ConfirmErr != nil {
		return "", m.ConfirmErr
	}
	if m.BookingID != "" {
		return m.BookingID, nil
	}
	return fmt.Sprintf("bk_%d", len(m.ConfirmCalls)), nil
}
