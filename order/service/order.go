package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Alturino/audiophile/internal/cache"
	inErrors "github.com/Alturino/audiophile/internal/errors"
	"github.com/Alturino/audiophile/internal/log"
	inOtel "github.com/Alturino/audiophile/internal/otel"
	"github.com/Alturino/audiophile/internal/repository"
	"github.com/Alturino/audiophile/order/otel"
	"github.com/Alturino/audiophile/order/pkg/request"
	"github.com/Alturino/audiophile/order/pkg/response"
)

type OrderService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewOrderService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) *OrderService {
	return &OrderService{pool: pool, queries: queries, cache: cache}
}

// CreateOrder places an order in a single database transaction. Every line is
// a conditional decrement of the product stock; if any line fails the whole
// transaction rolls back and no order row survives. The persisted unit price
// and the order total come from the catalog rows read inside the transaction,
// not from the request.
func (s OrderService) CreateOrder(
	c context.Context,
	userID uuid.UUID,
	param request.CreateOrder,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService CreateOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService CreateOrder").
		Str(log.KeyUserID, userID.String()).
		Logger()

	if len(param.OrderItems) == 0 {
		err := inErrors.ErrEmptyOrder
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "initializing transaction").Logger()
	logger.Info().Msg("initializing transaction")
	tx, err := s.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		err = fmt.Errorf("failed initializing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("initialized transaction")
	defer func() {
		logger := logger.With().Str(log.KeyProcess, "rolling back transaction").Logger()
		err := tx.Rollback(c)
		if err != nil {
			if errors.Is(err, pgx.ErrTxClosed) {
				return
			}
			err = fmt.Errorf("failed rolling back transaction with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("rolled back transaction")
		span.AddEvent("rolled back transaction")
	}()

	qtx := s.queries.WithTx(tx)

	logger = logger.With().Str(log.KeyProcess, "decrementing product stock").Logger()
	logger.Info().Msg("decrementing product stock")
	total := decimal.Zero
	orderID := uuid.New()
	itemArgs := make([]repository.InsertOrderItemParams, 0, len(param.OrderItems))
	for _, item := range param.OrderItems {
		lg := logger.With().
			Str(log.KeyProductID, item.ProductID.String()).
			Int32(log.KeyQuantity, item.Quantity).
			Logger()

		lg.Info().Msg("decrementing product stock")
		product, err := qtx.DecrementProductQuantity(
			c,
			repository.DecrementProductQuantityParams{
				ID:       item.ProductID,
				Quantity: item.Quantity,
			},
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// The conditional update matched nothing: either the product
				// does not exist or its stock is below the requested quantity.
				if _, findErr := s.queries.FindProductById(c, item.ProductID); findErr != nil {
					err = fmt.Errorf(
						"productId=%s %w",
						item.ProductID,
						inErrors.ErrProductNotFound,
					)
				} else {
					err = fmt.Errorf(
						"productId=%s %w",
						item.ProductID,
						inErrors.ErrInsufficientStock,
					)
				}
			} else {
				err = fmt.Errorf("failed decrementing product stock with error=%w", err)
			}
			inOtel.RecordError(err, span)
			lg.Error().Err(err).Msg(err.Error())
			return response.Order{}, err
		}
		lg.Info().
			Str(log.KeyProductName, product.Name).
			Int32(log.KeyProductStock, product.Quantity).
			Msg("decremented product stock")

		price := repository.DecimalFromNumeric(product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt32(item.Quantity)))
		itemArgs = append(itemArgs, repository.InsertOrderItemParams{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     repository.NumericFromDecimal(price),
		})
	}
	logger.Info().Str(log.KeyOrderTotal, total.String()).Msg("decremented product stock")

	logger = logger.With().Str(log.KeyProcess, "inserting order").Logger()
	logger.Info().Msg("inserting order")
	orderNumber := newOrderNumber(orderID)
	insertedOrder, err := qtx.InsertOrder(c, repository.InsertOrderParams{
		ID:          orderID,
		OrderNumber: orderNumber,
		UserID:      userID,
		Total:       repository.NumericFromDecimal(total),
		Status:      repository.OrderStatusPending,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().
		Str(log.KeyOrderID, insertedOrder.ID.String()).
		Str(log.KeyOrderNumber, insertedOrder.OrderNumber).
		Logger()
	logger.Info().Msg("inserted order")

	logger = logger.With().Str(log.KeyProcess, "inserting order items").Logger()
	logger.Info().Msg("inserting order items")
	inserted, err := qtx.InsertOrderItems(c, itemArgs)
	if err != nil {
		err = fmt.Errorf("failed inserting order items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msgf("inserted order items count=%d", inserted)

	logger = logger.With().Str(log.KeyProcess, "getting inserted order items").Logger()
	logger.Info().Msg("getting inserted order items")
	orderItems, err := qtx.FindOrderItemsByOrderId(c, insertedOrder.ID)
	if err != nil {
		err = fmt.Errorf("failed getting inserted order items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("got inserted order items")

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	logger.Info().Msg("committing transaction")
	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("committed transaction")

	logger = logger.With().Str(log.KeyProcess, "invalidating product cache").Logger()
	logger.Info().Msg("invalidating product cache")
	for _, item := range param.OrderItems {
		cacheKey := cache.KeyProducts + item.ProductID.String()
		err := s.cache.JSONDel(c, cacheKey, "$").Err()
		if err != nil {
			err = fmt.Errorf("failed invalidating product cache with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Str(log.KeyCacheKey, cacheKey).Msg(err.Error())
		}
	}
	logger.Info().Msg("invalidated product cache")

	return insertedOrder.Response(orderItems), nil
}

func (s OrderService) FindOrders(
	c context.Context,
	userID uuid.UUID,
) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrders").
		Str(log.KeyProcess, "finding orders by userId").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger.Info().Msg("finding orders")
	orders, err := s.queries.FindOrdersByUserId(c, userID)
	if err != nil {
		err = fmt.Errorf("failed finding orders by userId=%s with error=%w", userID, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found orders count=%d", len(orders))

	res := make([]response.Order, 0, len(orders))
	for _, order := range orders {
		items, err := s.queries.FindOrderItemsByOrderId(c, order.ID)
		if err != nil {
			err = fmt.Errorf(
				"failed finding order items by orderId=%s with error=%w",
				order.ID,
				err,
			)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		res = append(res, order.Response(items))
	}

	return res, nil
}

func (s OrderService) FindOrderByNumber(
	c context.Context,
	userID uuid.UUID,
	orderNumber string,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderByNumber")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrderByNumber").
		Str(log.KeyProcess, "finding order by orderNumber").
		Str(log.KeyUserID, userID.String()).
		Str(log.KeyOrderNumber, orderNumber).
		Logger()

	logger.Info().Msg("finding order")
	order, err := s.queries.FindOrderByNumber(c, orderNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("orderNumber=%s %w", orderNumber, inErrors.ErrOrderNotFound)
		} else {
			err = fmt.Errorf(
				"failed finding order by orderNumber=%s with error=%w",
				orderNumber,
				err,
			)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	if order.UserID != userID {
		err = fmt.Errorf("orderNumber=%s %w", orderNumber, inErrors.ErrOrderNotFound)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order")

	logger = logger.With().Str(log.KeyProcess, "finding order items").Logger()
	logger.Info().Msg("finding order items")
	items, err := s.queries.FindOrderItemsByOrderId(c, order.ID)
	if err != nil {
		err = fmt.Errorf("failed finding order items by orderId=%s with error=%w", order.ID, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order items")

	return order.Response(items), nil
}

func newOrderNumber(orderID uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(orderID.String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
