package controller

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"eventbook/entity"
	"eventbook/navigation"
)

type ProfileService interface {
	Profile(ctx context.Context, session entity.Session) (entity.UserProfile, error)
	Bookings(ctx context.Context, session entity.Session) ([]entity.BookingRecord, error)
}

type Profile struct {
	api    ProfileService
	nav    *navigation.Navigator
	logger *logrus.Entry

	mu       sync.Mutex
	loading  bool
	profile  *entity.UserProfile
	bookings []entity.BookingRecord
}

func NewProfile(api ProfileService, nav *navigation.Navigator, logger *logrus.Entry) *Profile {
	return &Profile{api: api, nav: nav, logger: logger}
}

// Mount fetches the profile record and the booking list concurrently. The
// two fetches are independent: whichever succeeds is rendered, there is no
// all-or-nothing gate.
func (p *Profile) Mount(ctx context.Context, params navigation.ProfileParams) {
	p.mu.Lock()
	p.loading = true
	p.profile = nil
	p.bookings = nil
	p.mu.Unlock()

	var (
		profile     entity.UserProfile
		bookings    []entity.BookingRecord
		profileErr  error
		bookingsErr error
	)

	// Join only: failures are kept per-fetch instead of cancelling the pair.
	var g errgroup.Group
	g.Go(func() error {
		profile, profileErr = p.api.Profile(ctx, params.Session)
		return nil
	})
	g.Go(func() error {
		bookings, bookingsErr = p.api.Bookings(ctx, params.Session)
		return nil
	})
	_ = g.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if profileErr != nil {
		p.logger.WithError(profileErr).Warn("profile fetch failed")
	} else {
		p.profile = &profile
	}
	if bookingsErr != nil {
		p.logger.WithError(bookingsErr).Warn("bookings fetch failed")
	} else {
		p.bookings = bookings
	}
}

func (p *Profile) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Profile) UserProfile() *entity.UserProfile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profile
}

func (p *Profile) BookingList() []entity.BookingRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entity.BookingRecord, len(p.bookings))
	copy(out, p.bookings)
	return out
}

// Stats reports the booking count and total amount spent.
func (p *Profile) Stats() (int, entity.Price) {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := lo.SumBy(p.bookings, func(b entity.BookingRecord) entity.Price {
		return b.Amount
	})
	return len(p.bookings), total
}

// SignOut replaces the route with Login carrying zero-value params: the
// session is discarded by construction since params are never merged.
func (p *Profile) SignOut() {
	p.mu.Lock()
	p.profile = nil
	p.bookings = nil
	p.mu.Unlock()

	p.nav.Replace(navigation.LoginParams{Notice: "Signed out."}, nil)
}

func (p *Profile) GoBack() {
	p.nav.GoBack()
}
