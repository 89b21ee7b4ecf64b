package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"eventbook/entity"
	"eventbook/navigation"
)

type RegisterService interface {
	Register(ctx context.Context, name, email, password, phone string) (entity.Session, error)
}

type RegisterForm struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

type Register struct {
	auth   RegisterService
	nav    *navigation.Navigator
	logger *logrus.Entry

	mu     sync.Mutex
	busy   bool
	errMsg string
}

func NewRegister(auth RegisterService, nav *navigation.Navigator, logger *logrus.Entry) *Register {
	return &Register{auth: auth, nav: nav, logger: logger}
}

func (r *Register) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

func (r *Register) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errMsg
}

func (r *Register) Submit(ctx context.Context, form RegisterForm) {
	if !r.begin() {
		return
	}
	defer r.finish()

	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)

	if name == "" || email == "" || strings.TrimSpace(form.Password) == "" {
		r.fail("Name, email and password are required")
		return
	}
	if form.Password != form.ConfirmPassword {
		r.fail("Passwords do not match")
		return
	}
	if len(form.Password) < 6 {
		r.fail("Password must be at least 6 characters")
		return
	}

	session, err := r.auth.Register(ctx, name, email, form.Password, strings.TrimSpace(form.Phone))
	if err != nil {
		r.logger.WithError(err).WithField("email", email).Warn("registration failed")
		r.fail(userMessage(err, "Registration failed. Try again."))
		return
	}

	r.nav.Replace(navigation.HomeParams{Session: session}, navigation.RegisterParams{})
}

func (r *Register) GoBack() {
	r.nav.GoBack()
}

func (r *Register) begin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.busy {
		return false
	}
	r.busy = true
	r.errMsg = ""
	return true
}

func (r *Register) finish() {
	r.mu.Lock()
	r.busy = false
	r.mu.Unlock()
}

func (r *Register) fail(msg string) {
	r.mu.Lock()
	r.errMsg = msg
	r.mu.Unlock()
}
