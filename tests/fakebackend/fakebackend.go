// Package fakebackend is an in-process stand-in for the Event Booking API,
// implementing the endpoints the client consumes: auth, event catalog,
// order creation, test-mode booking confirmation and profile reads. State
// is in-memory; error payloads use the backend's {"detail": ...} shape.
package fakebackend

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v3"

	"eventbook/entity"
)

type user struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Phone    string
	Created  time.Time
}

type order struct {
	OrderID string
	EventID int64
	UserID  int64
}

type bookingRow struct {
	ID       int64
	UserID   int64
	EventID  int64
	Amount   entity.Price
	Status   entity.BookingStatus
	BookedAt time.Time
}

type Server struct {
	e *echo.Echo

	mu       sync.Mutex
	users    map[string]*user
	tokens   map[string]*user
	events   []*entity.EventSummary
	orders   map[string]order
	bookings []bookingRow
	nextID   int64

	createOrderCalls int
	confirmCalls     int
	listEventsCalls  int
}

func New() *Server {
	s := &Server{
		users:  map[string]*user{},
		tokens: map[string]*user{},
		orders: map[string]order{},
	}
	s.seedEvents()

	e := echo.New()
	e.HideBanner = true

	e.POST("/auth/register", s.postRegister)
	e.POST("/auth/login", s.postLogin)
	e.GET("/events", s.getEvents)
	e.POST("/payment/create-order", s.postCreateOrder)
	e.POST("/payment/confirm-test", s.postConfirmBooking)
	e.GET("/profile", s.getProfile)
	e.GET("/profile/bookings", s.getBookings)

	s.e = e
	return s
}

func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) seedEvents() {
	s.events = []*entity.EventSummary{
		{
			ID:          1,
			Title:       "Coldplay India Tour 2025",
			Description: "A night of dazzling lights and timeless hits.",
			Location:    "DY Patil Stadium, Mumbai",
			Date:        entity.Time{Time: time.Date(2025, 1, 19, 19, 0, 0, 0, time.UTC)},
			Price:       4999, Category: entity.CategoryMusic, AvailableSeats: 50000,
		},
		{
			ID:          2,
			Title:       "TechSpark India 2025",
			Description: "Keynotes, AI workshops and a founders expo.",
			Location:    "BIEC, Bengaluru",
			Date:        entity.Time{Time: time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC)},
			Price:       1499, Category: entity.CategoryTech, AvailableSeats: 5000,
		},
		{
			ID:          3,
			Title:       "Startup Pitch Night Bengaluru",
			Description: "Twenty startups pitch to top VCs.",
			Location:    "91springboard, Bengaluru",
			Date:        entity.Time{Time: time.Date(2025, 2, 28, 18, 0, 0, 0, time.UTC)},
			Price:       0, Category: entity.CategoryTech, AvailableSeats: 300,
		},
		{
			ID:          4,
			Title:       "The Comedy Store: Open Mic Night",
			Description: "Twelve fresh comedians, one wild night.",
			Location:    "Lower Parel, Mumbai",
			Date:        entity.Time{Time: time.Date(2025, 2, 22, 20, 0, 0, 0, time.UTC)},
			Price:       299, Category: entity.CategoryComedy, AvailableSeats: 0,
		},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

func (s *Server) postRegister(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "Name, email and password are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[req.Email]; exists {
		return fail(c, http.StatusBadRequest, "Email already registered")
	}

	s.nextID++
	u := &user{
		ID:       s.nextID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Created:  time.Now().UTC(),
	}
	s.users[req.Email] = u

	return c.JSON(http.StatusOK, s.issueTokenLocked(u))
}

func (s *Server) postLogin(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[req.Email]
	if !ok || u.Password != req.Password {
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	}
	return c.JSON(http.StatusOK, s.issueTokenLocked(u))
}

func (s *Server) issueTokenLocked(u *user) tokenResponse {
	token := "tok_" + shortuuid.New()
	s.tokens[token] = u
	return tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      u.ID,
		Name:        u.Name,
		Email:       u.Email,
	}
}

func (s *Server) getEvents(c echo.Context) error {
	search := strings.ToLower(c.QueryParam("search"))
	category := c.QueryParam("category")

	s.mu.Lock()
	s.listEventsCalls++

	matched := make([]entity.EventSummary, 0)
	for _, ev := range s.events {
		if search != "" &&
			!strings.Contains(strings.ToLower(ev.Title), search) &&
			!strings.Contains(strings.ToLower(ev.Location), search) &&
			!strings.Contains(strings.ToLower(ev.Description), search) {
			continue
		}
		if category != "" && !strings.EqualFold(category, "all") &&
			!strings.EqualFold(category, string(ev.Category)) {
			continue
		}
		matched = append(matched, *ev)
	}
	s.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date.Time)
	})
	return c.JSON(http.StatusOK, matched)
}

func (s *Server) postCreateOrder(c echo.Context) error {
	u, err := s.authenticate(c)
	if err != nil {
		return err
	}

	var req struct {
		EventID int64 `json:"event_id"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.createOrderCalls++

	ev := s.eventLocked(req.EventID)
	if ev == nil {
		return fail(c, http.StatusNotFound, "Event not found")
	}
	if ev.AvailableSeats <= 0 {
		return fail(c, http.StatusBadRequest, "Event sold out")
	}

	o := order{
		OrderID: "order_" + uuid.NewString(),
		EventID: ev.ID,
		UserID:  u.ID,
	}
	s.orders[o.OrderID] = o

	return c.JSON(http.StatusOK, map[string]any{
		"order_id": o.OrderID,
		"amount":   ev.Price,
	})
}

func (s *Server) postConfirmBooking(c echo.Context) error {
	u, err := s.authenticate(c)
	if err != nil {
		return err
	}

	var req struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirmCalls++

	o, ok := s.orders[req.OrderID]
	if !ok || o.UserID != u.ID {
		return fail(c, http.StatusBadRequest, "Invalid order")
	}
	if req.PaymentID == "" {
		return fail(c, http.StatusBadRequest, "Missing payment id")
	}

	ev := s.eventLocked(o.EventID)
	if ev == nil {
		return fail(c, http.StatusNotFound, "Event not found")
	}
	ev.AvailableSeats--
	delete(s.orders, req.OrderID)

	s.nextID++
	row := bookingRow{
		ID:       s.nextID,
		UserID:   u.ID,
		EventID:  ev.ID,
		Amount:   ev.Price,
		Status:   entity.BookingConfirmed,
		BookedAt: time.Now().UTC(),
	}
	s.bookings = append(s.bookings, row)

	return c.JSON(http.StatusOK, map[string]any{
		"booking_id": fmt.Sprintf("bk_%d", row.ID),
		"status":     row.Status,
	})
}

func (s *Server) getProfile(c echo.Context) error {
	u, err := s.authenticate(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"phone":      u.Phone,
		"created_at": u.Created.Format(time.RFC3339),
	})
}

func (s *Server) getBookings(c echo.Context) error {
	u, err := s.authenticate(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]map[string]any, 0)
	for _, b := range s.bookings {
		if b.UserID != u.ID {
			continue
		}
		ev := s.eventLocked(b.EventID)
		out = append(out, map[string]any{
			"id":        b.ID,
			"event_id":  b.EventID,
			"amount":    b.Amount,
			"status":    b.Status,
			"booked_at": b.BookedAt.Format(time.RFC3339),
			"event":     ev,
		})
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) authenticate(c echo.Context) (*user, error) {
	header := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return nil, fail(c, http.StatusUnauthorized, "Not authenticated")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.tokens[token]
	if !ok {
		return nil, fail(c, http.StatusUnauthorized, "Not authenticated")
	}
	return u, nil
}

func (s *Server) eventLocked(id int64) *entity.EventSummary {
	for _, ev := range s.events {
		if ev.ID == id {
			return ev
		}
	}
	return nil
}

func (s *Server) CreateOrderCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createOrderCalls
}

func (s *Server) ConfirmCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmCalls
}

func (s *Server) ListEventsCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listEventsCalls
}

// SetSeats mutates a seeded event's seat count, for sold-out scenarios.
func (s *Server) SetSeats(eventID int64, seats int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev := s.eventLocked(eventID); ev != nil {
		ev.AvailableSeats = seats
	}
}

func fail(c echo.Context, status int, detail string) error {
	return c.JSON(status, map[string]string{"detail": detail})
}
