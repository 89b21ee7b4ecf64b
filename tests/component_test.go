package tests_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"eventbook/booking"
	"eventbook/controller"
	"eventbook/entity"
	"eventbook/gateway"
	"eventbook/navigation"
	"eventbook/tests/fakebackend"
)

const searchDebounce = 20 * time.Millisecond

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type client struct {
	backend *fakebackend.Server
	nav     *navigation.Navigator

	login        *controller.Login
	register     *controller.Register
	home         *controller.Home
	detail       *controller.EventDetail
	payment      *controller.Payment
	confirmation *controller.Confirmation
	profile      *controller.Profile
}

func newClient(t *testing.T) *client {
	t.Helper()

	backend := fakebackend.New()
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	log := logrus.NewEntry(logger)

	core := gateway.NewClient(srv.URL, gateway.WithLogger(log))
	auth := gateway.NewAuthClient(core)
	events := gateway.NewEventsClient(core)
	payments := gateway.NewPaymentClient(core)
	profiles := gateway.NewProfileClient(core)

	nav := navigation.New()
	saga := booking.NewOrchestrator(payments, booking.SimulatedProvider{}, log)

	return &client{
		backend:      backend,
		nav:          nav,
		login:        controller.NewLogin(auth, nav, log),
		register:     controller.NewRegister(auth, nav, log),
		home:         controller.NewHome(events, nav, log, searchDebounce),
		detail:       controller.NewEventDetail(nav),
		payment:      controller.NewPayment(saga, nav, log),
		confirmation: controller.NewConfirmation(nav),
		profile:      controller.NewProfile(profiles, nav, log),
	}
}

func (c *client) signUp(t *testing.T, ctx context.Context) navigation.HomeParams {
	t.Helper()

	c.register.Submit(ctx, controller.RegisterForm{
		Name:            "Uma",
		Email:           "uma@example.com",
		Phone:           "9999999999",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.Empty(t, c.register.Err())

	current := c.nav.Current()
	require.Equal(t, navigation.ScreenHome, current.Screen)
	return current.Params.(navigation.HomeParams)
}

func eventByTitle(t *testing.T, list []entity.EventSummary, title string) entity.EventSummary {
	t.Helper()
	for _, ev := range list {
		if ev.Title == title {
			return ev
		}
	}
	t.Fatalf("event %q not in catalog", title)
	return entity.EventSummary{}
}

func TestBookingFlow(t *testing.T) {
	ctx := context.Background()

	c := newClient(t)
	homeParams := c.signUp(t, ctx)

	c.home.Mount(ctx, homeParams)
	defer c.home.Unmount()

	list := c.home.Events()
	require.Len(t, list, 4)
	// The catalog is served in date order.
	assert.Equal(t, "Coldplay India Tour 2025", list[0].Title)

	// Category filter fetches immediately.
	c.home.SelectCategory(ctx, entity.CategoryTech)
	assert.Len(t, c.home.Events(), 2)

	// Search settles through the debounce window into a single query.
	listed := c.backend.ListEventsCalls()
	c.home.SetSearch(ctx, "s")
	c.home.SetSearch(ctx, "st")
	c.home.SetSearch(ctx, "startup")
	require.Eventually(t, func() bool {
		events := c.home.Events()
		return len(events) == 1 && events[0].Title == "Startup Pitch Night Bengaluru"
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, listed+1, c.backend.ListEventsCalls())

	c.home.SelectCategory(ctx, entity.CategoryAll)
	c.home.SetSearch(ctx, "")
	require.Eventually(t, func() bool {
		return len(c.home.Events()) == 4
	}, time.Second, 5*time.Millisecond)

	// Into checkout and through the payment saga.
	coldplay := eventByTitle(t, c.home.Events(), "Coldplay India Tour 2025")
	c.home.OpenEvent(coldplay)
	eventParams := c.nav.Current().Params.(navigation.EventParams)
	require.True(t, c.detail.Book(eventParams))

	payParams := c.nav.Current().Params.(navigation.PaymentParams)
	c.payment.Pay(ctx, payParams)
	require.Empty(t, c.payment.Err())

	current := c.nav.Current()
	require.Equal(t, navigation.ScreenConfirmation, current.Screen)
	receipt := current.Params.(navigation.ConfirmationParams)
	assert.Equal(t, "bk_2", receipt.BookingID)
	assert.True(t, strings.HasPrefix(receipt.PaymentID, "pay_test_"))
	assert.Equal(t, entity.Price(4999), receipt.Amount)
	assert.Equal(t, 1, c.backend.CreateOrderCalls())
	assert.Equal(t, 1, c.backend.ConfirmCalls())

	// Back from confirmation lands on the catalog, never on checkout.
	assert.Equal(t, navigation.ScreenHome, c.nav.GoBack().Screen)

	// The booking shows up in the profile.
	c.nav.Navigate(navigation.ProfileParams{Session: homeParams.Session}, navigation.HomeParams{Session: homeParams.Session})
	c.profile.Mount(ctx, c.nav.Current().Params.(navigation.ProfileParams))

	require.NotNil(t, c.profile.UserProfile())
	assert.Equal(t, "Uma", c.profile.UserProfile().Name)

	bookings := c.profile.BookingList()
	require.Len(t, bookings, 1)
	assert.Equal(t, entity.BookingConfirmed, bookings[0].Status)
	assert.Equal(t, coldplay.ID, bookings[0].EventID)

	count, total := c.profile.Stats()
	assert.Equal(t, 1, count)
	assert.Equal(t, entity.Price(4999), total)

	c.profile.SignOut()
	current = c.nav.Current()
	require.Equal(t, navigation.ScreenLogin, current.Screen)
	assert.Equal(t, "Signed out.", current.Params.(navigation.LoginParams).Notice)
}

func TestSoldOutEventIsGatedBeforeCheckout(t *testing.T) {
	ctx := context.Background()

	c := newClient(t)
	homeParams := c.signUp(t, ctx)

	c.home.Mount(ctx, homeParams)
	defer c.home.Unmount()

	soldOut := eventByTitle(t, c.home.Events(), "The Comedy Store: Open Mic Night")
	require.Zero(t, soldOut.AvailableSeats)
	c.home.OpenEvent(soldOut)

	eventParams := c.nav.Current().Params.(navigation.EventParams)
	assert.False(t, c.detail.BookingAllowed(eventParams))
	assert.False(t, c.detail.Book(eventParams))
	assert.Equal(t, navigation.ScreenEvent, c.nav.Current().Screen)
	assert.Zero(t, c.backend.CreateOrderCalls())
}

func TestSellOutBetweenBrowseAndPay(t *testing.T) {
	ctx := context.Background()

	c := newClient(t)
	homeParams := c.signUp(t, ctx)

	c.home.Mount(ctx, homeParams)
	defer c.home.Unmount()

	techspark := eventByTitle(t, c.home.Events(), "TechSpark India 2025")
	c.home.OpenEvent(techspark)
	require.True(t, c.detail.Book(c.nav.Current().Params.(navigation.EventParams)))

	// The last seat is gone before the pay trigger fires.
	c.backend.SetSeats(techspark.ID, 0)

	payParams := c.nav.Current().Params.(navigation.PaymentParams)
	c.payment.Pay(ctx, payParams)

	assert.Equal(t, "Event sold out", c.payment.Err())
	assert.Equal(t, navigation.ScreenPayment, c.nav.Current().Screen)
	assert.Zero(t, c.backend.ConfirmCalls())

	// The failed attempt re-enables the trigger for a retry.
	assert.False(t, c.payment.Busy())
	c.backend.SetSeats(techspark.ID, 1)
	c.payment.Pay(ctx, payParams)
	require.Empty(t, c.payment.Err())
	assert.Equal(t, navigation.ScreenConfirmation, c.nav.Current().Screen)
	assert.Equal(t, 2, c.backend.CreateOrderCalls())
}

func TestLoginAfterRegistration(t *testing.T) {
	ctx := context.Background()

	c := newClient(t)
	c.signUp(t, ctx)

	c.login.Submit(ctx, "uma@example.com", "wrong")
	assert.Equal(t, "Invalid email or password", c.login.Err())

	c.login.Submit(ctx, "uma@example.com", "secret1")
	require.Empty(t, c.login.Err())
	require.Equal(t, navigation.ScreenHome, c.nav.Current().Screen)
	session := c.nav.Current().Params.(navigation.HomeParams).Session
	assert.Equal(t, "Uma", session.Name)
	assert.NotEmpty(t, session.Token)
}
