package resources

import (
	"context"
	"net/http"

	"food-admin/admin-console/internal/domain"
)

type AuthClient struct {
	api Requester
}

func NewAuthClient(api Requester) *AuthClient {
	return &AuthClient{api: api}
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	var resp domain.LoginResponse
	body := domain.LoginRequest{Email: email, Password: password}
	if err := call(ctx, c.api, "login", http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
