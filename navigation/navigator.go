// Package navigation implements a stack-free, single-slot screen router.
// There is exactly one active route; transition params are replaced
// wholesale on every transition, never merged. Back-navigation is one level
// deep: the navigating screen supplies the full return route explicitly,
// nothing is inferred from history.
package navigation

import "sync"

type Route struct {
	Screen Screen
	Params Params
}

type Navigator struct {
	mu       sync.Mutex
	current  Route
	back     *Route
	onChange func(Route)
}

func New() *Navigator {
	return &Navigator{
		current: Route{Screen: ScreenLogin, Params: LoginParams{}},
	}
}

// OnChange registers a single hook invoked after every transition. The hook
// runs outside the navigator's lock.
func (n *Navigator) OnChange(fn func(Route)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate makes to the active route. back, when non-nil, is the one route
// GoBack returns to; passing nil leaves no way back except the Login
// fallback.
func (n *Navigator) Navigate(to, back Params) {
	n.transition(to, back)
}

// Replace is mechanically identical to Navigate in a stack-free model. The
// separate name signals that the current screen is being superseded and
// must not be returned to, e.g. Login after a successful sign-in or Payment
// once a booking is confirmed.
func (n *Navigator) Replace(to, back Params) {
	n.transition(to, back)
}

// GoBack activates the back route, or falls back to Login when the
// navigating screen did not supply one.
func (n *Navigator) GoBack() Route {
	n.mu.Lock()
	if n.back != nil {
		n.current = *n.back
		n.back = nil
	} else {
		n.current = Route{Screen: ScreenLogin, Params: LoginParams{}}
	}
	current, fn := n.current, n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(current)
	}
	return current
}

func (n *Navigator) transition(to, back Params) {
	n.mu.Lock()
	n.current = Route{Screen: to.Screen(), Params: to}
	if back != nil {
		route := Route{Screen: back.Screen(), Params: back}
		n.back = &route
	} else {
		n.back = nil
	}
	current, fn := n.current, n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(current)
	}
}
