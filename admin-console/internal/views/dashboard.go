package views

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"food-admin/admin-console/internal/domain"
	"food-admin/admin-console/internal/export"
)

const (
	BranchFoods                = "foods"
	BranchUsers                = "users"
	BranchOrders               = "orders"
	BranchCategoriesWithOrders = "categories-with-orders"
	BranchTotalRevenue         = "total-revenue"
	BranchMonthlyRevenue       = "monthly-revenue"
)

// Branch is the outcome of one independent fetch in a fan-out. A failed
// branch leaves its data empty and says so.
type Branch struct {
	Name string
	Err  error
}

func (b Branch) OK() bool {
	return b.Err == nil
}

func (b Branch) Failed() bool {
	return b.Err != nil
}

type ReportAPI interface {
	CategoriesWithOrders(ctx context.Context) ([]domain.CategoryOrders, error)
	OrdersByCategory(ctx context.Context, categoryID int) ([]domain.Order, error)
	TotalRevenue(ctx context.Context) (float64, error)
	MonthlyRevenue(ctx context.Context, year int) ([]domain.RevenuePoint, error)
}

type FoodLister interface {
	List(ctx context.Context) ([]domain.Food, error)
}

type UserLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

type OrderLister interface {
	List(ctx context.Context) ([]domain.Order, error)
}

type Summary struct {
	Foods        int
	Users        int
	Orders       int
	TotalRevenue float64
}

type CategoryCount struct {
	Category string
	Orders   int
}

type DashboardView struct {
	Banner
	Year int

	Foods                []domain.Food
	Users                []domain.User
	Orders               []domain.Order
	CategoriesWithOrders []domain.CategoryOrders
	TotalRevenue         float64
	MonthlyRevenue       []domain.RevenuePoint
	Branches             []Branch

	foods   FoodLister
	users   UserLister
	orders  OrderLister
	reports ReportAPI
}

func NewDashboardView(foods FoodLister, users UserLister, orders OrderLister, reports ReportAPI) *DashboardView {
	return &DashboardView{
		Year:    time.Now().Year(),
		foods:   foods,
		users:   users,
		orders:  orders,
		reports: reports,
	}
}

// Load runs the six fetches concurrently and waits for all of them. Each
// goroutine writes only its own result slot.
func (v *DashboardView) Load(ctx context.Context) []Branch {
	v.DismissError()

	var (
		foods      []domain.Food
		users      []domain.User
		orders     []domain.Order
		categories []domain.CategoryOrders
		total      float64
		monthly    []domain.RevenuePoint
	)
	year := v.Year

	fetches := []struct {
		name string
		run  func() error
	}{
		{BranchFoods, func() (err error) {
			foods, err = v.foods.List(ctx)
			return err
		}},
		{BranchUsers, func() (err error) {
			users, err = v.users.List(ctx)
			return err
		}},
		{BranchOrders, func() (err error) {
			orders, err = v.orders.List(ctx)
			return err
		}},
		{BranchCategoriesWithOrders, func() (err error) {
			categories, err = v.reports.CategoriesWithOrders(ctx)
			return err
		}},
		{BranchTotalRevenue, func() (err error) {
			total, err = v.reports.TotalRevenue(ctx)
			return err
		}},
		{BranchMonthlyRevenue, func() (err error) {
			monthly, err = v.reports.MonthlyRevenue(ctx, year)
			return err
		}},
	}

	branches := make([]Branch, len(fetches))
	var wg sync.WaitGroup
	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, name string, run func() error) {
			defer wg.Done()
			branches[i] = Branch{Name: name, Err: run()}
		}(i, fetch.name, fetch.run)
	}
	wg.Wait()

	v.Foods, v.Users, v.Orders = foods, users, orders
	v.CategoriesWithOrders, v.TotalRevenue, v.MonthlyRevenue = categories, total, monthly
	v.Branches = branches

	var failed []string
	for _, b := range branches {
		if b.Failed() {
			log.Printf("ERROR: dashboard %s: %v", b.Name, b.Err)
			failed = append(failed, b.Name)
		}
	}
	if len(failed) > 0 {
		v.Err = "Some dashboard data could not be loaded: " + strings.Join(failed, ", ")
	}
	return branches
}

// CategoryOrders drills into the orders placed for one category.
func (v *DashboardView) CategoryOrders(ctx context.Context, categoryID int) ([]domain.Order, error) {
	v.DismissError()
	orders, err := v.reports.OrdersByCategory(ctx, categoryID)
	if err != nil {
		return nil, v.fail(err, "Failed to load category orders")
	}
	return orders, nil
}

func (v *DashboardView) Summary() Summary {
	return Summary{
		Foods:        len(v.Foods),
		Users:        len(v.Users),
		Orders:       len(v.Orders),
		TotalRevenue: v.TotalRevenue,
	}
}

func (v *DashboardView) CategoryCounts() []CategoryCount {
	counts := make([]CategoryCount, 0, len(v.CategoriesWithOrders))
	for _, c := range v.CategoriesWithOrders {
		counts = append(counts, CategoryCount{Category: c.CategoryName, Orders: len(c.Orders)})
	}
	return counts
}

func (v *DashboardView) Table() export.Table {
	table := export.Table{
		Sheet:   "Monthly Revenue",
		Headers: []string{"Month", "Revenue"},
	}
	for _, p := range v.MonthlyRevenue {
		table.Rows = append(table.Rows, []any{MonthLabel(p.Month), p.Revenue})
	}
	return table
}

// Export writes the monthly revenue series of the loaded year.
func (v *DashboardView) Export(w io.Writer, format string) error {
	if len(v.MonthlyRevenue) == 0 {
		return ErrNothingToExport
	}
	return export.Write(w, format, v.Table())
}

func MonthLabel(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}
