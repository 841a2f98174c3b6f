package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	OrderItems []OrderItem `validate:"required,gt=0,dive" json:"items"`
}

// Price is the unit price the client saw when the cart line was added. The
// persisted price and total are taken from the catalog row inside the
// order transaction, never from this field.
type OrderItem struct {
	ProductID uuid.UUID       `validate:"required"       json:"productId"`
	Quantity  int32           `validate:"required,gte=1" json:"quantity"`
	Price     decimal.Decimal `                          json:"price"`
}

type FindOrders struct {
	UserId uuid.UUID `validate:"required,uuid"`
}

type FindOrderByNumber struct {
	OrderNumber string `validate:"required"`
}
