package request

import (
	"github.com/google/uuid"
)

// Quantity defaults to 1 when omitted.
type AddItem struct {
	ProductID    uuid.UUID `validate:"required"      json:"product_id"`
	ColorVariant string    `                         json:"color_variant"`
	Quantity     int32     `validate:"omitempty,gte=1" json:"quantity"`
}

type UpdateQuantity struct {
	ProductID    uuid.UUID `validate:"required" json:"product_id"`
	ColorVariant string    `                    json:"color_variant"`
	Quantity     int32     `validate:"required" json:"quantity"`
}

type RemoveItem struct {
	ProductID    uuid.UUID `validate:"required" json:"product_id"`
	ColorVariant string    `                    json:"color_variant"`
}
