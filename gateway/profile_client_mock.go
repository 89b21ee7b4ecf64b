package gateway

import (
	"context"
	"sync"

	"eventbook/entity"
)

type ProfileMock struct {
	mock sync.Mutex

	ProfileCalls  int
	BookingsCalls int

	UserProfile entity.UserProfile
	ProfileErr  error

	BookingList []entity.BookingRecord
	BookingsErr error
}

func (m *ProfileMock) Profile(ctx context.Context, session entity.Session) (entity.UserProfile, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	m.ProfileCalls++

	if m.ProfileErr != nil {
		return entity.UserProfile{}, m.ProfileErr
	}
	return m.UserProfile, nil
}

func (m *ProfileMock) Bookings(ctx context.Context, session entity.Session) ([]entity.BookingRecord, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	m.BookingsCalls++

	if m.BookingsErr != nil {
		return nil, m.BookingsErr
	}
	return m.BookingList, nil
}
