package controller

import "eventbook/navigation"

// EventDetail is pure display plus one gated transition into checkout.
type EventDetail struct {
	nav *navigation.Navigator
}

func NewEventDetail(nav *navigation.Navigator) *EventDetail {
	return &EventDetail{nav: nav}
}

func (e *EventDetail) BookingAllowed(params navigation.EventParams) bool {
	return params.Event.AvailableSeats > 0
}

// Book transitions to the payment screen. For a sold-out event it does
// nothing at all: no request, no navigation. The return value reports
// whether the transition happened.
func (e *EventDetail) Book(params navigation.EventParams) bool {
	if !e.BookingAllowed(params) {
		return false
	}
	e.nav.Navigate(
		navigation.PaymentParams{Session: params.Session, Event: params.Event},
		navigation.EventParams{Session: params.Session, Event: params.Event},
	)
	return true
}

func (e *EventDetail) GoBack() {
	e.nav.GoBack()
}
