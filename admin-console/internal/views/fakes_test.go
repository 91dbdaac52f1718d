package views_test

import (
	"context"
	"sync"

	"food-admin/admin-console/internal/domain"
)

type fakeFoods struct {
	items     []domain.Food
	nextID    int
	listErr   error
	saveErr   error
	deleteErr error
	lists     int
	deleted   []int
	saved     []domain.Food
}

func (f *fakeFoods) List(context.Context) ([]domain.Food, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Food(nil), f.items...), nil
}

func (f *fakeFoods) Get(_ context.Context, id int) (*domain.Food, error) {
	for _, item := range f.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeFoods) Create(_ context.Context, food domain.Food) (*domain.Food, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.nextID++
	food.ID = f.nextID
	f.items = append(f.items, food)
	f.saved = append(f.saved, food)
	return &food, nil
}

func (f *fakeFoods) Update(_ context.Context, id int, food domain.Food) (*domain.Food, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	food.ID = id
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i] = food
		}
	}
	f.saved = append(f.saved, food)
	return &food, nil
}

func (f *fakeFoods) Delete(_ context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	kept := f.items[:0]
	for _, item := range f.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

type fakeCategories struct {
	items       []domain.Category
	listErr     error
	saveErr     error
	deleteErr   error
	deleted     []int
	emptyUpdate bool
}

func (f *fakeCategories) List(context.Context) ([]domain.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Category(nil), f.items...), nil
}

func (f *fakeCategories) Get(_ context.Context, id int) (*domain.Category, error) {
	for _, item := range f.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeCategories) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	c.ID = 100 + len(f.items)
	return &c, nil
}

func (f *fakeCategories) Update(_ context.Context, id int, c domain.Category) (*domain.Category, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if f.emptyUpdate {
		return &domain.Category{}, nil
	}
	c.ID = id
	return &c, nil
}

func (f *fakeCategories) Delete(_ context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUsers struct {
	items       []domain.User
	listErr     error
	saveErr     error
	deleteErr   error
	created     []domain.User
	deleted     []int
	emptyUpdate bool
}

func (f *fakeUsers) List(context.Context) ([]domain.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.User(nil), f.items...), nil
}

func (f *fakeUsers) Get(_ context.Context, id int) (*domain.User, error) {
	for _, item := range f.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeUsers) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	u.ID = 500
	f.created = append(f.created, u)
	return &u, nil
}

func (f *fakeUsers) Update(_ context.Context, id int, u domain.User) (*domain.User, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if f.emptyUpdate {
		return &domain.User{}, nil
	}
	u.ID = id
	return &u, nil
}

func (f *fakeUsers) Delete(_ context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOrders struct {
	items     []domain.Order
	listErr   error
	updateErr error
	updates   map[int]domain.OrderStatus
}

func (f *fakeOrders) List(context.Context) ([]domain.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Order(nil), f.items...), nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id int, status domain.OrderStatus) (*domain.Order, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updates == nil {
		f.updates = map[int]domain.OrderStatus{}
	}
	f.updates[id] = status
	// the backend echoes a bare order; local fields must not be replaced by it
	return &domain.Order{ID: id, Status: status}, nil
}

type fakeReports struct {
	mu         sync.Mutex
	categories []domain.CategoryOrders
	byCategory map[int][]domain.Order
	total      float64
	monthly    []domain.RevenuePoint
	err        map[string]error
	years      []int
}

func (f *fakeReports) CategoriesWithOrders(context.Context) ([]domain.CategoryOrders, error) {
	if err := f.err["categories"]; err != nil {
		return nil, err
	}
	return f.categories, nil
}

func (f *fakeReports) OrdersByCategory(_ context.Context, categoryID int) ([]domain.Order, error) {
	if err := f.err["by-category"]; err != nil {
		return nil, err
	}
	return f.byCategory[categoryID], nil
}

func (f *fakeReports) TotalRevenue(context.Context) (float64, error) {
	if err := f.err["total"]; err != nil {
		return 0, err
	}
	return f.total, nil
}

func (f *fakeReports) MonthlyRevenue(_ context.Context, year int) ([]domain.RevenuePoint, error) {
	f.mu.Lock()
	f.years = append(f.years, year)
	f.mu.Unlock()
	if err := f.err["monthly"]; err != nil {
		return nil, err
	}
	return f.monthly, nil
}

type fakeAuth struct {
	resp  *domain.LoginResponse
	err   error
	calls int
}

func (f *fakeAuth) Login(context.Context, string, string) (*domain.LoginResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeSession struct {
	token, name string
	err         error
}

func (f *fakeSession) Begin(_ context.Context, token, name string) error {
	if f.err != nil {
		return f.err
	}
	f.token, f.name = token, name
	return nil
}
