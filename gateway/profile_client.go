package gateway

import (
	"context"
	"net/http"

	"eventbook/entity"
)

type ProfileClient struct {
	core *Client
}

func NewProfileClient(core *Client) ProfileClient {
	return ProfileClient{core: core}
}

func (c ProfileClient) Profile(ctx context.Context, session entity.Session) (entity.UserProfile, error) {
	if !session.Authenticated() {
		return entity.UserProfile{}, entity.ErrNotAuthenticated
	}

	var profile entity.UserProfile
	if err := c.core.do(ctx, http.MethodGet, "/profile", session.Token, nil, &profile); err != nil {
		return entity.UserProfile{}, err
	}
	return profile, nil
}

func (c ProfileClient) Bookings(ctx context.Context, session entity.Session) ([]entity.BookingRecord, error) {
	if !session.Authenticated() {
		return nil, entity.ErrNotAuthenticated
	}

	var bookings []entity.BookingRecord
	if err := c.core.do(ctx, http.MethodGet, "/profile/bookings", session.Token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
