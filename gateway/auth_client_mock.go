package gateway

import (
	"context"
	"sync"

	"eventbook/entity"
)

type AuthMock struct {
	mock sync.Mutex

	LoginCalls    []string
	RegisterCalls []string

	Session entity.Session
	Err     error
}

func (m *AuthMock) Login(ctx context.Context, email, password string) (entity.Session, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	m.LoginCalls = append(m.LoginCalls, email)

	if m.Err != nil {
		return entity.Session{}, m.Err
	}
	return m.Session, nil
}

func (m *AuthMock) Register(ctx context.Context, name, email, password, phone string) (entity.Session, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	m.RegisterCalls = append(m.RegisterCalls, email)

	if m.Err != nil {
		return entity.Session{}, m.Err
	}
	return m.Session, nil
}
