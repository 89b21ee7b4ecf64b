package gateway

import (
	"context"
	"net/http"

	"eventbook/entity"
)

type AuthClient struct {
	core *Client
}

func NewAuthClient(core *Client) AuthClient {
	return AuthClient{core: core}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

func (c AuthClient) Login(ctx context.Context, email, password string) (entity.Session, error) {
	var resp tokenResponse
	err := c.core.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return entity.Session{}, err
	}
	return resp.session(), nil
}

func (c AuthClient) Register(ctx context.Context, name, email, password, phone string) (entity.Session, error) {
	var resp tokenResponse
	err := c.core.do(ctx, http.MethodPost, "/auth/register", "", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
	}, &resp)
	if err != nil {
		return entity.Session{}, err
	}
	return resp.session(), nil
}

func (r tokenResponse) session() entity.Session {
	return entity.Session{
		Token:  r.AccessToken,
		UserID: r.UserID,
		Name:   r.Name,
		Email:  r.Email,
	}
}
