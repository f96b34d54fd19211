package entities

import (
	"math"
	"strings"
)

// OrderRequest is the order description posted by the storefront.
//
// TotalAmount is expressed in major units (euros), e.g. 12.5.
type OrderRequest struct {
	OrderID     string  `json:"orderId"`
	TotalAmount float64 `json:"totalAmount"`
}

// Reference returns the trimmed order id used as checkout reference.
func (o OrderRequest) Reference() string {
	return strings.TrimSpace(o.OrderID)
}

// RoundedAmount rounds TotalAmount to cents, see RoundToCents.
func (o OrderRequest) RoundedAmount() float64 {
	return RoundToCents(o.TotalAmount)
}

// ValidAmount reports whether TotalAmount is non-negative and stays finite
// once rounded to cents.
func (o OrderRequest) ValidAmount() bool {
	v := o.TotalAmount
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return false
	}
	return !math.IsInf(RoundToCents(v), 0)
}

// RoundToCents rounds the binary value of v to two decimals, the way
// Number.prototype.toFixed(2) does: 10.505 gives 10.51 but 1.005 gives 1.00,
// since 1.005 is stored just below the half.
func RoundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
