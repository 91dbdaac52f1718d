package resources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"food-admin/admin-console/internal/domain"
)

const ordersPath = "/admin/orders"

type OrderClient struct {
	api Requester
}

func NewOrderClient(api Requester) *OrderClient {
	return &OrderClient{api: api}
}

func (c *OrderClient) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := call(ctx, c.api, "fetch orders", http.MethodGet, ordersPath, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves an order to one of the four known statuses. The backend
// takes the status as a query parameter with an empty JSON object body.
func (c *OrderClient) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error) {
	if _, ok := domain.ParseOrderStatus(string(status)); !ok {
		return nil, fmt.Errorf("unknown order status %q", status)
	}

	var updated domain.Order
	path := ordersPath + "/" + strconv.Itoa(id) + "/status"
	query := url.Values{"status": {string(status)}}
	if err := call(ctx, c.api, "update order "+strconv.Itoa(id)+" status", http.MethodPut, path, query, struct{}{}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
