package request

import (
	"github.com/shopspring/decimal"
)

type InsertProduct struct {
	Name          string          `validate:"required"       json:"name"`
	Slug          string          `validate:"required"       json:"slug"`
	Category      string          `validate:"required,oneof=headphones speakers earphones" json:"category"`
	ColorVariants []string        `                          json:"color_variants"`
	Price         decimal.Decimal `validate:"required"       json:"price"`
	Quantity      int32           `validate:"required,gte=0" json:"quantity"`
}
