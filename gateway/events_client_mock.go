package gateway

import (
	"context"
	"sync"

	"eventbook/entity"
)

type EventsQuery struct {
	Search   string
	Category entity.Category
}

type EventsMock struct {
	mock sync.Mutex

	Queries []EventsQuery

	Events []entity.EventSummary
	Err    error

	// Barrier, when set, is waited on before returning, so tests can hold a
	// response in flight while newer queries are dispatched.
	Barrier chan struct{}
}

func (m *EventsMock) List(ctx context.Context, search string, category entity.Category) ([]entity.EventSummary, error) {
	m.mock.Lock()
	m.Queries = append(m.Queries, EventsQuery{Search: search, Category: category})
	barrier := m.Barrier
	events, err := m.Events, m.Err
	m.mock.Unlock()

	if barrier != nil {
		<-barrier
	}
	if err != nil {
		return nil, err
	}
	return events, nil
}

// SetResponse swaps the canned response while calls may be in flight.
func (m *EventsMock) SetResponse(events []entity.EventSummary, err error) {
	m.mock.Lock()
	m.Events = events
	m.Err = err
	m.mock.Unlock()
}

func (m *EventsMock) SetBarrier(ch chan struct{}) {
	m.mock.Lock()
	m.Barrier = ch
	m.mock.Unlock()
}

func (m *EventsMock) QueryCount() int {
	m.mock.Lock()
	defer m.mock.Unlock()
	return len(m.Queries)
}

func (m *EventsMock) LastQuery() EventsQuery {
	m.mock.Lock()
	defer m.mock.Unlock()
	if len(m.Queries) == 0 {
		return EventsQuery{}
	}
	return m.Queries[len(m.Queries)-1]
}
