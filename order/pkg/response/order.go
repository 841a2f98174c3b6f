package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VAT is already included in product prices at 20 percent and is reported for
// invoice rendering only; delivery is a flat fee. Neither is part of the
// persisted order total.
var (
	vatRate     = decimal.New(2, -1)
	deliveryFee = decimal.NewFromInt(50)
)

type Order struct {
	ID          uuid.UUID       `json:"id"`
	OrderNumber string          `json:"order_number"`
	UserId      uuid.UUID       `json:"user_id"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Vat         decimal.Decimal `json:"vat"`
	Delivery    decimal.Decimal `json:"delivery"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	OrderItems  []OrderItem     `json:"order_items"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderId     uuid.UUID       `json:"order_id"`
	ProductId   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int32           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func (o Order) Summarized() Order {
	o.Vat = o.Total.Mul(vatRate).Round(2)
	o.Delivery = deliveryFee
	o.GrandTotal = o.Total.Add(deliveryFee)
	return o
}
