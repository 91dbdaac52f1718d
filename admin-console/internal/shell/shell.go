package shell

import (
	"context"
	"errors"
	"fmt"

	"food-admin/admin-console/internal/audit"
	"food-admin/admin-console/internal/domain"
	"food-admin/admin-console/internal/search"
	"food-admin/admin-console/internal/session"
	"food-admin/admin-console/internal/storage"
	"food-admin/admin-console/internal/views"
)

const (
	PageDashboard  = "dashboard"
	PageFoods      = search.PageFoods
	PageCategories = search.PageCategories
	PageUsers      = search.PageUsers
	PageOrders     = search.PageOrders
)

var Pages = []string{PageDashboard, PageFoods, PageCategories, PageUsers, PageOrders}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var (
	ErrNotAuthenticated = errors.New("not signed in; run login first")
	ErrUnknownTheme     = errors.New("theme must be light or dark")
)

type SessionState interface {
	Init(ctx context.Context) error
	Clear(ctx context.Context) error
	Authenticated() bool
	Name() string
}

type LoginSubmitter interface {
	Submit(ctx context.Context, email, password string) (*domain.LoginResponse, error)
}

type Searcher interface {
	Search(ctx context.Context, query string) search.Report
}

// Shell tracks who is signed in, which page is active and the theme.
type Shell struct {
	session  SessionState
	store    session.Store
	login    LoginSubmitter
	searcher Searcher
	audit    *audit.Recorder

	loggedIn bool
	page     string
	theme    string
}

func New(sess SessionState, store session.Store, login LoginSubmitter, searcher Searcher, recorder *audit.Recorder) *Shell {
	return &Shell{
		session:  sess,
		store:    store,
		login:    login,
		searcher: searcher,
		audit:    recorder,
		page:     PageDashboard,
		theme:    ThemeLight,
	}
}

// Init restores the persisted session and theme. The shell counts as signed
// in exactly when a token was found.
func (s *Shell) Init(ctx context.Context) error {
	if err := s.session.Init(ctx); err != nil {
		return err
	}
	s.loggedIn = s.session.Authenticated()

	theme, err := s.store.Get(ctx, storage.KeyTheme)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.theme = ThemeLight
	case err != nil:
		return fmt.Errorf("load theme: %w", err)
	case theme == ThemeDark:
		s.theme = ThemeDark
	default:
		s.theme = ThemeLight
	}
	return nil
}

func (s *Shell) LoggedIn() bool { return s.loggedIn }

func (s *Shell) Page() string { return s.page }

func (s *Shell) Theme() string { return s.theme }

func (s *Shell) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	resp, err := s.login.Submit(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.loggedIn = true
	return resp, nil
}

// Logout ends the session after confirmation and returns to the dashboard.
func (s *Shell) Logout(ctx context.Context, confirm views.Confirmer) (bool, error) {
	if confirm == nil || !confirm.Confirm("Are you sure you want to logout?") {
		return false, nil
	}
	s.audit.Record(ctx, audit.ActionLogout, audit.ResourceSession, 0)
	if err := s.session.Clear(ctx); err != nil {
		return false, err
	}
	s.loggedIn = false
	s.page = PageDashboard
	return true, nil
}

func (s *Shell) RequireAuth() error {
	if !s.loggedIn {
		return ErrNotAuthenticated
	}
	return nil
}

// Navigate switches the active page; anything unknown lands on the dashboard.
func (s *Shell) Navigate(page string) (string, error) {
	if err := s.RequireAuth(); err != nil {
		return s.page, err
	}
	s.page = PageDashboard
	for _, p := range Pages {
		if p == page {
			s.page = p
		}
	}
	return s.page, nil
}

func (s *Shell) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return ErrUnknownTheme
	}
	if err := s.store.Set(ctx, storage.KeyTheme, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	s.theme = theme
	return nil
}

func (s *Shell) ToggleTheme(ctx context.Context) (string, error) {
	next := ThemeDark
	if s.theme == ThemeDark {
		next = ThemeLight
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return s.theme, err
	}
	return next, nil
}

func (s *Shell) Search(ctx context.Context, query string) (search.Report, error) {
	if err := s.RequireAuth(); err != nil {
		return search.Report{}, err
	}
	return s.searcher.Search(ctx, query), nil
}

// Select opens the page a search result belongs to.
func (s *Shell) Select(result search.Result) (string, error) {
	return s.Navigate(result.Page)
}
