package views

import (
	"context"
	"io"
	"strings"

	"food-admin/admin-console/internal/audit"
	"food-admin/admin-console/internal/domain"
	"food-admin/admin-console/internal/export"
)

type UserAPI interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	Update(ctx context.Context, id int, user domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}

type UserForm struct {
	ID          int
	FullName    string
	Email       string
	Role        domain.Role
	PhoneNumber string
}

func NewUserForm() UserForm {
	return UserForm{Role: domain.RoleUser}
}

type UsersView struct {
	Banner
	Users []domain.User

	api   UserAPI
	audit *audit.Recorder
}

func NewUsersView(api UserAPI, recorder *audit.Recorder) *UsersView {
	return &UsersView{api: api, audit: recorder}
}

func (v *UsersView) Load(ctx context.Context) error {
	v.DismissError()
	users, err := v.api.List(ctx)
	if err != nil {
		return v.fail(err, "Failed to load users")
	}
	v.Users = users
	return nil
}

func (v *UsersView) Get(ctx context.Context, id int) (*domain.User, error) {
	v.DismissError()
	user, err := v.api.Get(ctx, id)
	if err != nil {
		return nil, v.fail(err, "Failed to load user")
	}
	return user, nil
}

func (v *UsersView) Edit(id int) (UserForm, bool) {
	for _, u := range v.Users {
		if u.ID == id {
			form := UserForm{ID: u.ID, FullName: u.FullName, Email: u.Email, Role: u.Role, PhoneNumber: u.PhoneNumber}
			if form.Role == "" {
				form.Role = domain.RoleUser
			}
			return form, true
		}
	}
	return UserForm{}, false
}

func (v *UsersView) Save(ctx context.Context, form UserForm) (*domain.User, error) {
	v.DismissError()
	if strings.TrimSpace(form.FullName) == "" || strings.TrimSpace(form.Email) == "" {
		return nil, v.fail(invalid("Full name and email are required."), "Failed to save user")
	}
	role := domain.Role(strings.ToUpper(strings.TrimSpace(string(form.Role))))
	switch role {
	case "":
		role = domain.RoleUser
	case domain.RoleUser, domain.RoleAdmin:
	default:
		return nil, v.fail(invalid("Role must be USER or ADMIN."), "Failed to save user")
	}
	user := domain.User{
		FullName:    strings.TrimSpace(form.FullName),
		Email:       strings.TrimSpace(form.Email),
		Role:        role,
		PhoneNumber: form.PhoneNumber,
	}

	if form.ID != 0 {
		saved, err := v.api.Update(ctx, form.ID, user)
		if err != nil {
			return nil, v.fail(err, "Failed to save user")
		}
		if saved == nil || saved.ID == 0 {
			// empty 2xx body: keep what was submitted
			user.ID = form.ID
			saved = &user
		}
		for i := range v.Users {
			if v.Users[i].ID == form.ID {
				v.Users[i] = *saved
			}
		}
		v.audit.Record(ctx, audit.ActionUpdate, audit.ResourceUser, form.ID)
		return saved, nil
	}

	saved, err := v.api.Create(ctx, user)
	if err != nil {
		return nil, v.fail(err, "Failed to save user")
	}
	v.Users = append(v.Users, *saved)
	v.audit.Record(ctx, audit.ActionCreate, audit.ResourceUser, saved.ID)
	return saved, nil
}

func (v *UsersView) Delete(ctx context.Context, id int, confirm Confirmer) (bool, error) {
	if !confirmed(confirm, "Are you sure you want to delete this user?") {
		return false, nil
	}
	v.DismissError()
	if err := v.api.Delete(ctx, id); err != nil {
		return false, v.fail(err, "Failed to delete user")
	}

	kept := v.Users[:0]
	for _, u := range v.Users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	v.Users = kept
	v.audit.Record(ctx, audit.ActionDelete, audit.ResourceUser, id)
	return true, nil
}

// Filter matches name, email and role ignoring case; phone numbers match
// as typed.
func (v *UsersView) Filter(query string) []domain.User {
	var out []domain.User
	for _, u := range v.Users {
		if containsFold(u.FullName, query) ||
			containsFold(u.Email, query) ||
			containsFold(string(u.Role), query) ||
			strings.Contains(u.PhoneNumber, query) {
			out = append(out, u)
		}
	}
	return out
}

func (v *UsersView) Table() export.Table {
	table := export.Table{
		Sheet:   "Users",
		Headers: []string{"ID", "Full Name", "Email", "Role", "Phone Number"},
	}
	for _, u := range v.Users {
		table.Rows = append(table.Rows, []any{u.ID, u.FullName, u.Email, string(u.Role), u.PhoneNumber})
	}
	return table
}

// Export writes every loaded user, not just the filtered ones.
func (v *UsersView) Export(w io.Writer, format string) error {
	if len(v.Users) == 0 {
		return ErrNothingToExport
	}
	return export.Write(w, format, v.Table())
}
