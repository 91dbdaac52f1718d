package domain

import (
	"strings"
	"time"
)

// orderDateLayouts covers zoned RFC 3339 stamps and the zone-less local
// date-times some backends emit.
var orderDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses is the fixed set an order may be moved to.
var OrderStatuses = []OrderStatus{StatusPending, StatusPreparing, StatusDelivered, StatusCancelled}

func ParseOrderStatus(raw string) (OrderStatus, bool) {
	candidate := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	for _, s := range OrderStatuses {
		if s == candidate {
			return s, true
		}
	}
	return "", false
}

type Food struct {
	ID          int     `json:"id,omitempty"`
	Name        string  `json:"name"`
	CategoryID  int     `json:"categoryId"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	Popular     bool    `json:"popular"`
	Newest      bool    `json:"newest"`
}

type Category struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type User struct {
	ID          int    `json:"id,omitempty"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	PhoneNumber string `json:"phoneNumber"`
}

type OrderItem struct {
	FoodID   int     `json:"foodId"`
	Quantity int     `json:"quantity,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

type OrderUser struct {
	FullName string `json:"fullName"`
}

type Order struct {
	ID            int         `json:"id"`
	OrderDate     string      `json:"orderDate"`
	Items         []OrderItem `json:"items"`
	Address       string      `json:"address"`
	Status        OrderStatus `json:"status"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod"`
	User          *OrderUser  `json:"user,omitempty"`
}

// CustomerName tolerates orders whose user was not embedded by the backend.
func (o Order) CustomerName() string {
	if o.User == nil {
		return ""
	}
	return o.User.FullName
}

// PlacedAt parses OrderDate; ok is false when the stamp is empty or unknown.
func (o Order) PlacedAt() (time.Time, bool) {
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, o.OrderDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type RevenuePoint struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

type CategoryOrders struct {
	CategoryName string  `json:"categoryName"`
	Orders       []Order `json:"orders"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
