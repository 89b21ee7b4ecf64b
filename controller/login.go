// Package controller holds one controller per screen. A controller owns its
// screen's form and query state, talks to the backend through a narrow
// gateway interface, and drives navigator transitions on success. All of
// them share the same failure discipline: a started attempt clears the
// previous error, a failed attempt re-enables the trigger, and a busy
// controller ignores duplicate triggers.
package controller

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"eventbook/entity"
	"eventbook/navigation"
)

type LoginService interface {
	Login(ctx context.Context, email, password string) (entity.Session, error)
}

type Login struct {
	auth   LoginService
	nav    *navigation.Navigator
	logger *logrus.Entry

	mu     sync.Mutex
	busy   bool
	errMsg string
}

func NewLogin(auth LoginService, nav *navigation.Navigator, logger *logrus.Entry) *Login {
	return &Login{auth: auth, nav: nav, logger: logger}
}

func (l *Login) Busy() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.busy
}

func (l *Login) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}

// Submit validates locally before any network call and, on success,
// replaces the route with Home so the login form is not returned to by
// accident; the explicit back route still allows a deliberate return.
func (l *Login) Submit(ctx context.Context, email, password string) {
	if !l.begin() {
		return
	}
	defer l.finish()

	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		l.fail("Please fill in all fields")
		return
	}

	session, err := l.auth.Login(ctx, email, password)
	if err != nil {
		l.logger.WithError(err).WithField("email", email).Warn("login failed")
		l.fail(userMessage(err, "Invalid credentials"))
		return
	}

	l.nav.Replace(navigation.HomeParams{Session: session}, navigation.LoginParams{})
}

func (l *Login) OpenRegister() {
	l.nav.Navigate(navigation.RegisterParams{}, navigation.LoginParams{})
}

func (l *Login) begin() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy {
		return false
	}
	l.busy = true
	l.errMsg = ""
	return true
}

func (l *Login) finish() {
	l.mu.Lock()
	l.busy = false
	l.mu.Unlock()
}

func (l *Login) fail(msg string) {
	l.mu.Lock()
	l.errMsg = msg
	l.mu.Unlock()
}
