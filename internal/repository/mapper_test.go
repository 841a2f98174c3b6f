package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumericDecimalRoundTrip(t *testing.T) {
	for _, raw := range []string{"2999", "99.99", "0.01", "1750.50"} {
		d := decimal.RequireFromString(raw)
		got := DecimalFromNumeric(NumericFromDecimal(d))
		assert.True(t, got.Equal(d), "round trip of %s gave %s", raw, got)
	}
}

func TestDecimalFromInvalidNumeric(t *testing.T) {
	assert.True(t, DecimalFromNumeric(pgtype.Numeric{}).IsZero())
}

func TestOrderResponseSummarizesTotals(t *testing.T) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	order := Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260901-ABCD1234",
		UserID:      uuid.New(),
		Total:       NumericFromDecimal(decimal.NewFromInt(2500)),
		Status:      OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	item := FindOrderItemsByOrderIdRow{
		ID:          uuid.New(),
		OrderID:     order.ID,
		ProductID:   uuid.New(),
		ProductName: "XX99 Mark II Headphones",
		Quantity:    2,
		Price:       NumericFromDecimal(decimal.NewFromInt(1000)),
	}

	res := order.Response([]FindOrderItemsByOrderIdRow{item})

	assert.Equal(t, order.OrderNumber, res.OrderNumber)
	assert.Equal(t, string(OrderStatusPending), res.Status)
	assert.True(t, res.Total.Equal(decimal.NewFromInt(2500)))
	assert.True(t, res.Vat.Equal(decimal.NewFromInt(500)), "vat is display only, 20 percent")
	assert.True(t, res.GrandTotal.Equal(decimal.NewFromInt(2550)))
	assert.Len(t, res.OrderItems, 1)
	assert.Equal(t, "XX99 Mark II Headphones", res.OrderItems[0].ProductName)
	assert.True(t, res.OrderItems[0].Price.Equal(decimal.NewFromInt(1000)))
}
