package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"food-admin/admin-console/internal/domain"
	"food-admin/admin-console/internal/views"
)

const (
	TypeFood     = "food"
	TypeCategory = "category"
	TypeUser     = "user"
	TypeOrder    = "order"
)

const (
	PageFoods      = "foods"
	PageCategories = "categories"
	PageUsers      = "users"
	PageOrders     = "orders"
)

// Per-type caps on the combined result list.
const (
	maxFoods      = 3
	maxCategories = 3
	maxUsers      = 2
	maxOrders     = 3
)

type Result struct {
	Type     string
	ID       int
	Title    string
	Subtitle string
	Page     string
}

// Report is the combined result list plus how each resource fetch went.
type Report struct {
	Results  []Result
	Branches []views.Branch
}

type Searcher struct {
	foods      views.FoodLister
	categories views.CategoryLister
	users      views.UserLister
	orders     views.OrderLister
}

func New(foods views.FoodLister, categories views.CategoryLister, users views.UserLister, orders views.OrderLister) *Searcher {
	return &Searcher{foods: foods, categories: categories, users: users, orders: orders}
}

// Search fetches all four lists concurrently and matches them in memory. A
// failed fetch contributes nothing and is marked in the report.
func (s *Searcher) Search(ctx context.Context, query string) Report {
	query = strings.TrimSpace(query)
	if query == "" {
		return Report{}
	}

	var (
		foods      []domain.Food
		categories []domain.Category
		users      []domain.User
		orders     []domain.Order
	)
	branches := []views.Branch{{Name: TypeFood}, {Name: TypeCategory}, {Name: TypeUser}, {Name: TypeOrder}}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		foods, branches[0].Err = s.foods.List(ctx)
	}()
	go func() {
		defer wg.Done()
		categories, branches[1].Err = s.categories.List(ctx)
	}()
	go func() {
		defer wg.Done()
		users, branches[2].Err = s.users.List(ctx)
	}()
	go func() {
		defer wg.Done()
		orders, branches[3].Err = s.orders.List(ctx)
	}()
	wg.Wait()

	var results []Result
	results = append(results, matchFoods(foods, query)...)
	results = append(results, matchCategories(categories, query)...)
	results = append(results, matchUsers(users, query)...)
	results = append(results, matchOrders(orders, query)...)
	return Report{Results: results, Branches: branches}
}

func matches(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchFoods(foods []domain.Food, query string) []Result {
	var out []Result
	for _, f := range foods {
		if len(out) == maxFoods {
			break
		}
		if matches(query, f.Name, f.Description) {
			out = append(out, Result{
				Type:     TypeFood,
				ID:       f.ID,
				Title:    f.Name,
				Subtitle: fmt.Sprintf("%.2f", f.Price),
				Page:     PageFoods,
			})
		}
	}
	return out
}

func matchCategories(categories []domain.Category, query string) []Result {
	var out []Result
	for _, c := range categories {
		if len(out) == maxCategories {
			break
		}
		if matches(query, c.Name, c.Description) {
			out = append(out, Result{Type: TypeCategory, ID: c.ID, Title: c.Name, Subtitle: c.Description, Page: PageCategories})
		}
	}
	return out
}

func matchUsers(users []domain.User, query string) []Result {
	var out []Result
	for _, u := range users {
		if len(out) == maxUsers {
			break
		}
		if matches(query, u.FullName, u.Email) {
			out = append(out, Result{Type: TypeUser, ID: u.ID, Title: u.FullName, Subtitle: u.Email, Page: PageUsers})
		}
	}
	return out
}

func matchOrders(orders []domain.Order, query string) []Result {
	var out []Result
	for _, o := range orders {
		if len(out) == maxOrders {
			break
		}
		if matches(query, strconv.Itoa(o.ID), o.CustomerName()) {
			out = append(out, Result{
				Type:     TypeOrder,
				ID:       o.ID,
				Title:    "Order #" + strconv.Itoa(o.ID),
				Subtitle: strings.TrimSpace(o.CustomerName() + " " + string(o.Status)),
				Page:     PageOrders,
			})
		}
	}
	return out
}
