package navigation

import "eventbook/entity"

type Screen string

const (
	ScreenLogin        Screen = "Login"
	ScreenRegister     Screen = "Register"
	ScreenHome         Screen = "Home"
	ScreenEvent        Screen = "Event"
	ScreenPayment      Screen = "Payment"
	ScreenConfirmation Screen = "Confirmation"
	ScreenProfile      Screen = "Profile"
)

// Params is the typed per-screen transition contract. Each screen has
// exactly one params variant, so a transition cannot drop a field a
// downstream screen depends on without failing to compile.
type Params interface {
	Screen() Screen
}

type LoginParams struct {
	// Notice is an informational line shown above the form, e.g. after
	// sign-out.
	Notice string
}

type RegisterParams struct{}

type HomeParams struct {
	Session entity.Session
}

type EventParams struct {
	Session entity.Session
	Event   entity.EventSummary
}

type PaymentParams struct {
	Session entity.Session
	Event   entity.EventSummary
}

// ConfirmationParams can only be assembled from a server-confirmed booking;
// there is no navigation path that reaches the confirmation screen without a
// booking id.
type ConfirmationParams struct {
	Session   entity.Session
	Event     entity.EventSummary
	BookingID string
	PaymentID string
	Amount    entity.Price
}

type ProfileParams struct {
	Session entity.Session
}

func (LoginParams) Screen() Screen        { return ScreenLogin }
func (RegisterParams) Screen() Screen     { return ScreenRegister }
func (HomeParams) Screen() Screen         { return ScreenHome }
func (EventParams) Screen() Screen        { return ScreenEvent }
func (PaymentParams) Screen() Screen      { return ScreenPayment }
func (ConfirmationParams) Screen() Screen { return ScreenConfirmation }
func (ProfileParams) Screen() Screen      { return ScreenProfile }
