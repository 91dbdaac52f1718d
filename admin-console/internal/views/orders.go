package views

import (
	"context"
	"strconv"

	"food-admin/admin-console/internal/audit"
	"food-admin/admin-console/internal/domain"
)

type OrderAPI interface {
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error)
}

type OrdersView struct {
	Banner
	Orders []domain.Order

	api   OrderAPI
	audit *audit.Recorder
}

func NewOrdersView(api OrderAPI, recorder *audit.Recorder) *OrdersView {
	return &OrdersView{api: api, audit: recorder}
}

func (v *OrdersView) Load(ctx context.Context) error {
	v.DismissError()
	orders, err := v.api.List(ctx)
	if err != nil {
		return v.fail(err, "Failed to load orders")
	}
	v.Orders = orders
	return nil
}

func (v *OrdersView) Find(id int) (domain.Order, bool) {
	for _, o := range v.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// Filter matches the order id or the customer's name; a non-empty status
// must match exactly.
func (v *OrdersView) Filter(query string, status domain.OrderStatus) []domain.Order {
	var out []domain.Order
	for _, o := range v.Orders {
		if status != "" && o.Status != status {
			continue
		}
		if containsFold(strconv.Itoa(o.ID), query) || containsFold(o.CustomerName(), query) {
			out = append(out, o)
		}
	}
	return out
}

// UpdateStatus changes only the status of the local copy; every other field
// keeps what was loaded.
func (v *OrdersView) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) error {
	v.DismissError()
	if _, ok := domain.ParseOrderStatus(string(status)); !ok {
		return v.fail(invalid("Unknown order status "+string(status)+"."), "Failed to update order")
	}
	if _, err := v.api.UpdateStatus(ctx, id, status); err != nil {
		return v.fail(err, "Failed to update order")
	}
	for i := range v.Orders {
		if v.Orders[i].ID == id {
			v.Orders[i].Status = status
		}
	}
	v.audit.RecordDetail(ctx, audit.ActionStatusChange, audit.ResourceOrder, id, string(status))
	return nil
}

// StatusClass is the badge style for a status.
func StatusClass(status domain.OrderStatus) string {
	switch status {
	case domain.StatusPending:
		return "info"
	case domain.StatusPreparing:
		return "warning"
	case domain.StatusDelivered:
		return "success"
	case domain.StatusCancelled:
		return "danger"
	default:
		return "secondary"
	}
}
