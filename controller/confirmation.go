package controller

import "eventbook/navigation"

// Confirmation displays a completed booking. Its params can only be built
// from a saga receipt, so reaching this controller implies both the order
// and the confirmation call succeeded.
type Confirmation struct {
	nav *navigation.Navigator
}

func NewConfirmation(nav *navigation.Navigator) *Confirmation {
	return &Confirmation{nav: nav}
}

func (c *Confirmation) OpenBookings(params navigation.ConfirmationParams) {
	c.nav.Navigate(navigation.ProfileParams{Session: params.Session}, params)
}

func (c *Confirmation) GoHome(params navigation.ConfirmationParams) {
	c.nav.Navigate(navigation.HomeParams{Session: params.Session}, params)
}
