package resources

import (
	"context"
	"net/http"
	"strconv"

	"food-admin/admin-console/internal/domain"
)

const categoriesPath = "/admin/categories"

type CategoryClient struct {
	api Requester
}

func NewCategoryClient(api Requester) *CategoryClient {
	return &CategoryClient{api: api}
}

func (c *CategoryClient) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := call(ctx, c.api, "fetch categories", http.MethodGet, categoriesPath, nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *CategoryClient) Get(ctx context.Context, id int) (*domain.Category, error) {
	var category domain.Category
	if err := call(ctx, c.api, "fetch category "+strconv.Itoa(id), http.MethodGet, categoriesPath+"/"+strconv.Itoa(id), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *CategoryClient) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	category.ID = 0
	var created domain.Category
	if err := call(ctx, c.api, "create category", http.MethodPost, categoriesPath, nil, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *CategoryClient) Update(ctx context.Context, id int, category domain.Category) (*domain.Category, error) {
	var updated domain.Category
	if err := call(ctx, c.api, "update category "+strconv.Itoa(id), http.MethodPut, categoriesPath+"/"+strconv.Itoa(id), nil, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *CategoryClient) Delete(ctx context.Context, id int) error {
	return call(ctx, c.api, "delete category "+strconv.Itoa(id), http.MethodDelete, categoriesPath+"/"+strconv.Itoa(id), nil, nil, nil)
}
