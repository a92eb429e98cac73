package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderTotals is the amount-due breakdown derived from a cart subtotal at
// checkout time. It is computed, never stored independently of an order.
type OrderTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	Tax            decimal.Decimal `json:"tax"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentOnline         PaymentMethod = "online"
	PaymentNetBanking     PaymentMethod = "netbanking"
	PaymentUPI            PaymentMethod = "upi"
	PaymentRazorpay       PaymentMethod = "razorpay"
)

type DeliveryDetails struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type Order struct {
	OrderID       string          `json:"order_id"`
	Email         string          `json:"email"`
	Items         []CartLineItem  `json:"items"`
	Totals        OrderTotals     `json:"totals"`
	Delivery      DeliveryDetails `json:"delivery"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	PlacedAt      time.Time       `json:"placed_at"`
}

type PlaceOrderRequest struct {
	Delivery      DeliveryDetails `json:"delivery"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
}

type PlaceOrderResponse struct {
	OrderID string      `json:"order_id"`
	Status  OrderStatus `json:"status"`
	Totals  OrderTotals `json:"totals"`
	Message string      `json:"message"`
}
