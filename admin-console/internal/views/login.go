package views

import (
	"context"
	"strings"

	"food-admin/admin-console/internal/audit"
	"food-admin/admin-console/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.LoginResponse, error)
}

type SessionStarter interface {
	Begin(ctx context.Context, token, name string) error
}

type LoginView struct {
	Banner

	auth    AuthAPI
	session SessionStarter
	audit   *audit.Recorder
}

func NewLoginView(auth AuthAPI, session SessionStarter, recorder *audit.Recorder) *LoginView {
	return &LoginView{auth: auth, session: session, audit: recorder}
}

// Submit signs in and persists the returned token and display name.
func (v *LoginView) Submit(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	v.DismissError()
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, v.fail(invalid("Please enter both email and password."), "")
	}

	resp, err := v.auth.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return nil, v.fail(err, "Login failed. Please try again.")
	}
	if err := v.session.Begin(ctx, resp.Token, resp.Name); err != nil {
		return nil, v.fail(err, "Login failed. Please try again.")
	}
	v.audit.Record(ctx, audit.ActionLogin, audit.ResourceSession, 0)
	return resp, nil
}
