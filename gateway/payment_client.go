package gateway

import (
	"context"
	"net/http"

	"eventbook/entity"
)

type PaymentClient struct {
	core *Client
}

func NewPaymentClient(core *Client) PaymentClient {
	return PaymentClient{core: core}
}

type createOrderRequest struct {
	EventID int64 `json:"event_id"`
}

type createOrderResponse struct {
	OrderID string `json:"order_id"`
}

type confirmBookingRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
}

type confirmBookingResponse struct {
	BookingID string `json:"booking_id"`
}

func (c PaymentClient) CreateOrder(ctx context.Context, session entity.Session, eventID int64) (entity.OrderArtifact, error) {
	if !session.Authenticated() {
		return entity.OrderArtifact{}, entity.ErrNotAuthenticated
	}

	var resp createOrderResponse
	err := c.core.do(ctx, http.MethodPost, "/payment/create-order", session.Token, createOrderRequest{
		EventID: eventID,
	}, &resp)
	if err != nil {
		return entity.OrderArtifact{}, err
	}
	return entity.OrderArtifact{OrderID: resp.OrderID}, nil
}

// ConfirmBooking finalizes a paid order through the test confirmation
// endpoint, which skips gateway signature verification.
func (c PaymentClient) ConfirmBooking(ctx context.Context, session entity.Session, orderID, paymentID string) (string, error) {
	if !session.Authenticated() {
		return "", entity.ErrNotAuthenticated
	}

	var resp confirmBookingResponse
	err := c.core.do(ctx, http.MethodPost, "/payment/confirm-test", session.Token, confirmBookingRequest{
		RazorpayOrderID:   orderID,
		RazorpayPaymentID: paymentID,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.BookingID, nil
}
