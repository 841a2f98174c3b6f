package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	UserID uuid.UUID       `json:"user_id"`
	Items  []Item          `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

type Item struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ColorVariant string          `json:"color_variant,omitempty"`
	Quantity     int32           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Stock        int32           `json:"stock"`
}
