package resources

import (
	"context"
	"net/http"
	"strconv"

	"food-admin/admin-console/internal/domain"
)

const usersPath = "/admin/users"

type UserClient struct {
	api Requester
}

func NewUserClient(api Requester) *UserClient {
	return &UserClient{api: api}
}

func (c *UserClient) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := call(ctx, c.api, "fetch users", http.MethodGet, usersPath, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *UserClient) Get(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	if err := call(ctx, c.api, "fetch user "+strconv.Itoa(id), http.MethodGet, usersPath+"/"+strconv.Itoa(id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UserClient) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	user.ID = 0
	var created domain.User
	if err := call(ctx, c.api, "create user", http.MethodPost, usersPath, nil, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *UserClient) Update(ctx context.Context, id int, user domain.User) (*domain.User, error) {
	var updated domain.User
	if err := call(ctx, c.api, "update user "+strconv.Itoa(id), http.MethodPut, usersPath+"/"+strconv.Itoa(id), nil, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *UserClient) Delete(ctx context.Context, id int) error {
	return call(ctx, c.api, "delete user "+strconv.Itoa(id), http.MethodDelete, usersPath+"/"+strconv.Itoa(id), nil, nil, nil)
}
