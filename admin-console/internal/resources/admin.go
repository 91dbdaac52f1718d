package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"food-admin/admin-console/internal/domain"
)

const adminPath = "/admin"

// AdminClient covers the aggregated reports the backend computes.
type AdminClient struct {
	api Requester
}

func NewAdminClient(api Requester) *AdminClient {
	return &AdminClient{api: api}
}

func (c *AdminClient) CategoriesWithOrders(ctx context.Context) ([]domain.CategoryOrders, error) {
	var out []domain.CategoryOrders
	if err := call(ctx, c.api, "fetch categories with orders", http.MethodGet, adminPath+"/categories-with-orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AdminClient) OrdersByCategory(ctx context.Context, categoryID int) ([]domain.Order, error) {
	var out []domain.Order
	path := adminPath + "/categories/" + strconv.Itoa(categoryID) + "/orders"
	if err := call(ctx, c.api, "fetch orders for category "+strconv.Itoa(categoryID), http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalRevenue accepts either {"totalRevenue": n} or a bare number.
func (c *AdminClient) TotalRevenue(ctx context.Context) (float64, error) {
	var raw json.RawMessage
	if err := call(ctx, c.api, "fetch total revenue", http.MethodGet, adminPath+"/total-revenue", nil, nil, &raw); err != nil {
		return 0, err
	}
	return parseRevenue(raw)
}

func (c *AdminClient) MonthlyRevenue(ctx context.Context, year int) ([]domain.RevenuePoint, error) {
	var out []domain.RevenuePoint
	path := adminPath + "/monthly-revenue/" + strconv.Itoa(year)
	if err := call(ctx, c.api, "fetch monthly revenue for "+strconv.Itoa(year), http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func parseRevenue(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}

	var wrapped struct {
		TotalRevenue *float64 `json:"totalRevenue"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if wrapped.TotalRevenue == nil {
			return 0, nil
		}
		return *wrapped.TotalRevenue, nil
	}

	var bare float64
	if err := json.Unmarshal(raw, &bare); err != nil {
		return 0, fmt.Errorf("unexpected total revenue payload %s", raw)
	}
	return bare, nil
}
