package controller

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"eventbook/entity"
	"eventbook/navigation"
)

type EventsService interface {
	List(ctx context.Context, search string, category entity.Category) ([]entity.EventSummary, error)
}

// Home is the catalog controller. Search input is coalesced by a single-slot
// debounce timer; category changes fetch immediately. Every dispatched fetch
// carries a sequence number and a response is applied only while its
// sequence is still the latest, so a slow stale response can never overwrite
// the result of a newer query.
type Home struct {
	events   EventsService
	nav      *navigation.Navigator
	logger   *logrus.Entry
	debounce time.Duration

	mu       sync.Mutex
	mounted  bool
	session  entity.Session
	search   string
	category entity.Category
	list     []entity.EventSummary
	loading  bool
	timer    *time.Timer
	seq      uint64
}

func NewHome(events EventsService, nav *navigation.Navigator, logger *logrus.Entry, debounce time.Duration) *Home {
	return &Home{
		events:   events,
		nav:      nav,
		logger:   logger,
		debounce: debounce,
		category: entity.CategoryAll,
	}
}

// Mount resets query state for a fresh session and issues the initial fetch.
func (h *Home) Mount(ctx context.Context, params navigation.HomeParams) {
	h.mu.Lock()
	h.mounted = true
	h.session = params.Session
	h.search = ""
	h.category = entity.CategoryAll
	h.list = nil
	h.mu.Unlock()

	h.dispatch(ctx)
}

// Unmount cancels the pending debounce timer and orphans any in-flight
// fetch; a response arriving afterwards is discarded.
func (h *Home) Unmount() {
	h.mu.Lock()
	h.mounted = false
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.seq++
	h.mu.Unlock()
}

// SetSearch records the input and schedules a fetch once the input has been
// stable for the debounce window. Each keystroke cancels the previously
// scheduled fetch.
func (h *Home) SetSearch(ctx context.Context, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.search = text
	if h.timer != nil {
		h.timer.Stop()
	}
	h.timer = time.AfterFunc(h.debounce, func() {
		h.dispatch(ctx)
	})
}

// SelectCategory fetches immediately. Re-selecting the active category is a
// no-op and issues no request.
func (h *Home) SelectCategory(ctx context.Context, category entity.Category) {
	h.mu.Lock()
	if category == h.category {
		h.mu.Unlock()
		return
	}
	h.category = category
	h.mu.Unlock()

	h.dispatch(ctx)
}

// Refresh re-issues the current query.
func (h *Home) Refresh(ctx context.Context) {
	h.dispatch(ctx)
}

func (h *Home) OpenEvent(event entity.EventSummary) {
	h.mu.Lock()
	session := h.session
	h.mu.Unlock()

	h.nav.Navigate(
		navigation.EventParams{Session: session, Event: event},
		navigation.HomeParams{Session: session},
	)
}

func (h *Home) OpenProfile() {
	h.mu.Lock()
	session := h.session
	h.mu.Unlock()

	h.nav.Navigate(
		navigation.ProfileParams{Session: session},
		navigation.HomeParams{Session: session},
	)
}

func (h *Home) Events() []entity.EventSummary {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]entity.EventSummary, len(h.list))
	copy(out, h.list)
	return out
}

func (h *Home) Loading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading
}

func (h *Home) Search() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.search
}

func (h *Home) Category() entity.Category {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.category
}

func (h *Home) Session() entity.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session
}

func (h *Home) dispatch(ctx context.Context) {
	h.mu.Lock()
	if !h.mounted {
		h.mu.Unlock()
		return
	}
	h.seq++
	seq := h.seq
	search, category := h.search, h.category
	h.loading = true
	h.mu.Unlock()

	list, err := h.events.List(ctx, search, category)

	h.mu.Lock()
	defer h.mu.Unlock()
	if seq != h.seq || !h.mounted {
		// A newer query owns the screen now.
		return
	}
	h.loading = false
	if err != nil {
		// Keep whatever list is already shown; the next query retries.
		h.logger.WithError(err).Warn("event fetch failed")
		return
	}
	h.list = list
}
