package entity

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
)

// BookingRecord is server-owned. The client never constructs one except by
// decoding a confirmed server response.
type BookingRecord struct {
	ID       int64         `json:"id"`
	EventID  int64         `json:"event_id"`
	Amount   Price         `json:"amount"`
	Status   BookingStatus `json:"status"`
	BookedAt Time          `json:"booked_at"`
	Event    EventSummary  `json:"event"`
}

// OrderArtifact is the output of order creation. It lives only inside a
// single payment attempt and is never persisted or re-fetched.
type OrderArtifact struct {
	OrderID string
}

// PaymentArtifact is the gateway-issued payment identifier for one attempt.
type PaymentArtifact struct {
	PaymentID string
}

type UserProfile struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt Time   `json:"created_at"`
}
