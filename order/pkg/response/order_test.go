package response

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarized(t *testing.T) {
	order := Order{Total: decimal.NewFromInt(2500)}.Summarized()

	assert.True(t, order.Vat.Equal(decimal.NewFromInt(500)), "vat should be 20 percent of total")
	assert.True(t, order.Delivery.Equal(decimal.NewFromInt(50)), "delivery should be the flat fee")
	assert.True(
		t,
		order.GrandTotal.Equal(decimal.NewFromInt(2550)),
		"grand total should be total plus delivery, vat is already included in prices",
	)
}

func TestSummarizedRoundsVat(t *testing.T) {
	order := Order{Total: decimal.RequireFromString("99.99")}.Summarized()

	assert.True(t, order.Vat.Equal(decimal.RequireFromString("20.00")), "vat should round to cents")
	assert.True(t, order.GrandTotal.Equal(decimal.RequireFromString("149.99")))
}
