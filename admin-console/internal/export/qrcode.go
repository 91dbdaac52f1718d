package export

import (
	"fmt"
	"strings"

	"food-admin/admin-console/internal/domain"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	OrderSlip(order domain.Order) ([]byte, error)
}

// SlipQRGenerator renders a PNG QR code holding an order's delivery slip.
type SlipQRGenerator struct {
	Size int
}

func (g SlipQRGenerator) OrderSlip(order domain.Order) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(SlipText(order), qrcode.Medium, size)
}

func SlipText(order domain.Order) string {
	lines := []string{
		fmt.Sprintf("Order #%d", order.ID),
		"Status: " + string(order.Status),
	}
	if name := order.CustomerName(); name != "" {
		lines = append(lines, "Customer: "+name)
	}
	lines = append(lines,
		"Address: "+order.Address,
		"Total: "+formatValue(order.TotalAmount),
	)
	if order.PaymentMethod != "" {
		lines = append(lines, "Payment: "+order.PaymentMethod)
	}
	return strings.Join(lines, "\n")
}

var _ QRGenerator = SlipQRGenerator{}
