package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/Alturino/audiophile/cart/otel"
	"github.com/Alturino/audiophile/cart/store"
	"github.com/Alturino/audiophile/cart/pkg/request"
	"github.com/Alturino/audiophile/cart/pkg/response"
	inErrors "github.com/Alturino/audiophile/internal/errors"
	"github.com/Alturino/audiophile/internal/log"
	inOtel "github.com/Alturino/audiophile/internal/otel"
	"github.com/Alturino/audiophile/internal/repository"
)

type CartService struct {
	queries *repository.Queries
	storage store.Storage
}

func NewCartService(queries *repository.Queries, storage store.Storage) CartService {
	return CartService{queries: queries, storage: storage}
}

func (s CartService) FindCart(c context.Context, userID uuid.UUID) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCart").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger.Info().Msg("opening cart")
	st, err := store.Open(c, userID.String(), s.storage)
	if err != nil {
		err = fmt.Errorf("failed opening cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Int(log.KeyCartItemCount, st.Len()).Msg("opened cart")

	return cartResponse(userID, st), nil
}

func (s CartService) AddItem(
	c context.Context,
	userID uuid.UUID,
	param request.AddItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddItem").
		Str(log.KeyUserID, userID.String()).
		Str(log.KeyProductID, param.ProductID.String()).
		Str(log.KeyColorVariant, param.ColorVariant).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	product, err := s.queries.FindProductById(c, param.ProductID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("productId=%s %w", param.ProductID, inErrors.ErrProductNotFound)
		} else {
			err = fmt.Errorf("failed finding product with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger = logger.With().
		Str(log.KeyProductName, product.Name).
		Int32(log.KeyProductStock, product.Quantity).
		Logger()
	logger.Info().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "adding item to cart").Logger()
	logger.Info().Msg("adding item to cart")
	st, err := store.Open(c, userID.String(), s.storage)
	if err != nil {
		err = fmt.Errorf("failed opening cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	st.AddItem(
		c,
		store.Product{
			ID:    product.ID,
			Price: repository.DecimalFromNumeric(product.Price),
			Stock: product.Quantity,
		},
		param.ColorVariant,
		param.Quantity,
	)
	logger.Info().Int(log.KeyCartItemCount, st.Len()).Msg("added item to cart")

	return cartResponse(userID, st), nil
}

func (s CartService) UpdateQuantity(
	c context.Context,
	userID uuid.UUID,
	param request.UpdateQuantity,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService UpdateQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateQuantity").
		Str(log.KeyUserID, userID.String()).
		Str(log.KeyProductID, param.ProductID.String()).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	logger.Info().Msg("updating cart item quantity")
	st, err := store.Open(c, userID.String(), s.storage)
	if err != nil {
		err = fmt.Errorf("failed opening cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	st.UpdateQuantity(c, param.ProductID, param.ColorVariant, param.Quantity)
	logger.Info().Msg("updated cart item quantity")

	return cartResponse(userID, st), nil
}

func (s CartService) RemoveItem(
	c context.Context,
	userID uuid.UUID,
	param request.RemoveItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveItem").
		Str(log.KeyUserID, userID.String()).
		Str(log.KeyProductID, param.ProductID.String()).
		Str(log.KeyColorVariant, param.ColorVariant).
		Logger()

	logger.Info().Msg("removing cart item")
	st, err := store.Open(c, userID.String(), s.storage)
	if err != nil {
		err = fmt.Errorf("failed opening cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	st.RemoveItem(c, param.ProductID, param.ColorVariant)
	logger.Info().Msg("removed cart item")

	return cartResponse(userID, st), nil
}

func (s CartService) ClearCart(c context.Context, userID uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ClearCart").
		Str(log.KeyUserID, userID.String()).
		Logger()

	logger.Info().Msg("clearing cart")
	st, err := store.Open(c, userID.String(), s.storage)
	if err != nil {
		err = fmt.Errorf("failed opening cart with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	st.Clear(c)
	logger.Info().Msg("cleared cart")

	return nil
}

func cartResponse(userID uuid.UUID, st *store.Store) response.Cart {
	items := make([]response.Item, 0, st.Len())
	for _, item := range st.Items() {
		items = append(items, response.Item{
			ProductID:    item.ProductID,
			ColorVariant: item.ColorVariant,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Stock:        item.Stock,
		})
	}
	return response.Cart{UserID: userID, Items: items, Total: st.Total()}
}
