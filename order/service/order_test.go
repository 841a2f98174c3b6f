package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/Alturino/audiophile/internal/errors"
	"github.com/Alturino/audiophile/internal/repository"
	"github.com/Alturino/audiophile/order/pkg/request"
)

var (
	userAda        = uuid.MustParse("0d9bd36a-9e54-4b2f-a715-5b0e3c6f4a11")
	userBen        = uuid.MustParse("7f2c6b1e-3d48-4c9a-b2f0-1a6e8d5c3b22")
	headphonesID   = uuid.MustParse("3c1d2e4f-5a6b-4c7d-8e9f-0a1b2c3d4e01")
	earphonesID    = uuid.MustParse("3c1d2e4f-5a6b-4c7d-8e9f-0a1b2c3d4e02")
	productSeed    = filepath.Join("seed", "products.seed.sql")
	headphoneStock = int32(5)
	earphoneStock  = int32(10)
)

func testContext() context.Context {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(context.Background())
}

type CreateOrderTest struct {
	name           string
	userID         uuid.UUID
	req            request.CreateOrder
	expectedErr    error
	expectedTotal  string
	expectedStocks map[uuid.UUID]int32
	expectedOrders int
}

func TestCreateOrder(t *testing.T) {
	tests := []CreateOrderTest{
		{
			name:   "given order within available stock should create pending order with catalog prices",
			userID: userAda,
			req: request.CreateOrder{
				OrderItems: []request.OrderItem{
					// Client-side price is wrong on purpose: the persisted
					// total must come from the catalog rows.
					{ProductID: headphonesID, Quantity: 2, Price: decimal.NewFromInt(1)},
					{ProductID: earphonesID, Quantity: 1, Price: decimal.NewFromInt(1)},
				},
			},
			expectedErr:   nil,
			expectedTotal: "2500",
			expectedStocks: map[uuid.UUID]int32{
				headphonesID: headphoneStock - 2,
				earphonesID:  earphoneStock - 1,
			},
			expectedOrders: 1,
		},
		{
			name:   "given order exceeding available stock should fail and leave stock unchanged",
			userID: userAda,
			req: request.CreateOrder{
				OrderItems: []request.OrderItem{
					{ProductID: headphonesID, Quantity: headphoneStock + 1},
				},
			},
			expectedErr: inErrors.ErrInsufficientStock,
			expectedStocks: map[uuid.UUID]int32{
				headphonesID: headphoneStock,
			},
			expectedOrders: 0,
		},
		{
			name:   "given multi line order with one failing line should roll back every line",
			userID: userBen,
			req: request.CreateOrder{
				OrderItems: []request.OrderItem{
					{ProductID: headphonesID, Quantity: 2},
					{ProductID: earphonesID, Quantity: earphoneStock + 1},
				},
			},
			expectedErr: inErrors.ErrInsufficientStock,
			expectedStocks: map[uuid.UUID]int32{
				headphonesID: headphoneStock,
				earphonesID:  earphoneStock,
			},
			expectedOrders: 0,
		},
		{
			name:   "given order for unknown product should fail with product not found",
			userID: userBen,
			req: request.CreateOrder{
				OrderItems: []request.OrderItem{
					{ProductID: uuid.New(), Quantity: 1},
				},
			},
			expectedErr:    inErrors.ErrProductNotFound,
			expectedOrders: 0,
		},
		{
			name:           "given empty order should fail with empty order",
			userID:         userAda,
			req:            request.CreateOrder{},
			expectedErr:    inErrors.ErrEmptyOrder,
			expectedOrders: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContext()
			redisClient, pool, pgContainer, redisContainer, queries, orderService := setup(t)(
				c,
				productSeed,
			)
			defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

			order, err := orderService.CreateOrder(c, tt.userID, tt.req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, order.OrderNumber)
				assert.Equal(t, string(repository.OrderStatusPending), order.Status)
				assert.Equal(t, tt.userID, order.UserId)
				assert.Len(t, order.OrderItems, len(tt.req.OrderItems))
				assert.True(
					t,
					order.Total.Equal(decimal.RequireFromString(tt.expectedTotal)),
					"total should be %s but was %s", tt.expectedTotal, order.Total,
				)
				assert.True(
					t,
					order.GrandTotal.Equal(order.Total.Add(order.Delivery)),
					"grand total should be total plus delivery",
				)
				assert.True(
					t,
					order.Vat.Equal(order.Total.Mul(decimal.New(2, -1)).Round(2)),
					"vat should be a fifth of the total",
				)
			}

			orders, err := queries.FindOrdersByUserId(c, tt.userID)
			require.NoError(t, err)
			assert.Len(t, orders, tt.expectedOrders)

			for productID, expectedStock := range tt.expectedStocks {
				product, err := queries.FindProductById(c, productID)
				require.NoError(t, err)
				assert.EqualValues(t, expectedStock, product.Quantity)
			}
		})
	}
}

func TestCreateOrderConcurrent(t *testing.T) {
	c := testContext()
	redisClient, pool, pgContainer, redisContainer, queries, orderService := setup(t)(
		c,
		productSeed,
	)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	checkouts := int(headphoneStock) * 2
	errs := make([]error, checkouts)
	var wg sync.WaitGroup
	for i := range checkouts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = orderService.CreateOrder(c, userAda, request.CreateOrder{
				OrderItems: []request.OrderItem{
					{ProductID: headphonesID, Quantity: 1},
				},
			})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, inErrors.ErrInsufficientStock)
	}
	assert.Equal(t, int(headphoneStock), succeeded, "exactly the available stock should sell")

	product, err := queries.FindProductById(c, headphonesID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, product.Quantity)

	orders, err := queries.FindOrdersByUserId(c, userAda)
	require.NoError(t, err)
	assert.Len(t, orders, succeeded)
}

func TestFindOrderByNumber(t *testing.T) {
	c := testContext()
	redisClient, pool, pgContainer, redisContainer, _, orderService := setup(t)(
		c,
		productSeed,
	)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	created, err := orderService.CreateOrder(c, userAda, request.CreateOrder{
		OrderItems: []request.OrderItem{
			{ProductID: headphonesID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	found, err := orderService.FindOrderByNumber(c, userAda, created.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.True(t, found.Total.Equal(created.Total))
	require.Len(t, found.OrderItems, 1)
	assert.Equal(t, "XX99 Mark II Headphones", found.OrderItems[0].ProductName)

	// Another user must not see the order.
	_, err = orderService.FindOrderByNumber(c, userBen, created.OrderNumber)
	assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)

	_, err = orderService.FindOrderByNumber(c, userAda, "ORD-19700101-DOESNOTX")
	assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)
}
