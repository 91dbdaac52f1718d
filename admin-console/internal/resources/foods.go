package resources

import (
	"context"
	"net/http"
	"strconv"

	"food-admin/admin-console/internal/domain"
)

const foodsPath = "/admin/foods"

type FoodClient struct {
	api Requester
}

func NewFoodClient(api Requester) *FoodClient {
	return &FoodClient{api: api}
}

func (c *FoodClient) List(ctx context.Context) ([]domain.Food, error) {
	var foods []domain.Food
	if err := call(ctx, c.api, "fetch foods", http.MethodGet, foodsPath, nil, nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (c *FoodClient) Get(ctx context.Context, id int) (*domain.Food, error) {
	var food domain.Food
	if err := call(ctx, c.api, "fetch food "+strconv.Itoa(id), http.MethodGet, foodsPath+"/"+strconv.Itoa(id), nil, nil, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

func (c *FoodClient) Create(ctx context.Context, food domain.Food) (*domain.Food, error) {
	food.ID = 0
	var created domain.Food
	if err := call(ctx, c.api, "create food", http.MethodPost, foodsPath, nil, food, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *FoodClient) Update(ctx context.Context, id int, food domain.Food) (*domain.Food, error) {
	var updated domain.Food
	if err := call(ctx, c.api, "update food "+strconv.Itoa(id), http.MethodPut, foodsPath+"/"+strconv.Itoa(id), nil, food, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *FoodClient) Delete(ctx context.Context, id int) error {
	return call(ctx, c.api, "delete food "+strconv.Itoa(id), http.MethodDelete, foodsPath+"/"+strconv.Itoa(id), nil, nil, nil)
}
