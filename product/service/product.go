package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Alturino/audiophile/internal/cache"
	inErrors "github.com/Alturino/audiophile/internal/errors"
	"github.com/Alturino/audiophile/internal/log"
	inOtel "github.com/Alturino/audiophile/internal/otel"
	"github.com/Alturino/audiophile/internal/repository"
	"github.com/Alturino/audiophile/product/otel"
	"github.com/Alturino/audiophile/product/pkg/request"
	"github.com/Alturino/audiophile/product/pkg/response"
)

type ProductService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewProductService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) ProductService {
	return ProductService{pool: pool, queries: queries, cache: cache}
}

func (svc ProductService) InsertProduct(
	c context.Context,
	param request.InsertProduct,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService InsertProduct").
		Str(log.KeyProductName, param.Name).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "checking product existence").Logger()
	logger.Info().Msg("checking product existence")
	_, err := svc.queries.FindProductByName(c, param.Name)
	if err == nil {
		err = fmt.Errorf("name=%s %w", param.Name, inErrors.ErrProductExist)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed checking product existence with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("product does not exist yet")

	logger = logger.With().Str(log.KeyProcess, "inserting product to database").Logger()
	logger.Info().Msg("inserting product to database")
	product, err := svc.queries.InsertProduct(c, repository.InsertProductParams{
		Name:          param.Name,
		Slug:          param.Slug,
		Category:      param.Category,
		ColorVariants: param.ColorVariants,
		Price:         repository.NumericFromDecimal(param.Price),
		Quantity:      param.Quantity,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger = logger.With().Str(log.KeyProductID, product.ID.String()).Logger()
	logger.Info().Msg("inserted product to database")

	cacheKey := cache.KeyProducts + product.ID.String()
	logger = logger.With().
		Str(log.KeyProcess, "inserting product to cache").
		Str(log.KeyCacheKey, cacheKey).
		Logger()
	logger.Info().Msg("inserting product to cache")
	err = svc.cache.JSONSet(c, cacheKey, "$", product.Response()).Err()
	if err != nil {
		err = fmt.Errorf("failed inserting product to cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return product.Response(), nil
	}
	logger.Info().Msg("inserted product to cache")

	return product.Response(), nil
}

func (svc ProductService) FindProducts(
	c context.Context,
	category string,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProducts").
		Str(log.KeyProcess, "finding products in database").
		Logger()

	logger.Info().Msg("finding products in database")
	var (
		products []repository.Product
		err      error
	)
	if category == "" {
		products, err = svc.queries.FindProducts(c)
	} else {
		products, err = svc.queries.FindProductsByCategory(c, category)
	}
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("found products count=%d", len(products))

	res := make([]response.Product, 0, len(products))
	for _, p := range products {
		res = append(res, p.Response())
	}
	return res, nil
}

func (svc ProductService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	cacheKey := cache.KeyProducts + id.String()
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductById").
		Str(log.KeyProductID, id.String()).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in cache").Logger()
	logger.Info().Msg("finding product in cache")
	jsonCache, err := svc.cache.JSONGet(c, cacheKey, "$").Result()
	if err == nil && jsonCache != "" {
		var cached []response.Product
		if err := json.Unmarshal([]byte(jsonCache), &cached); err == nil && len(cached) > 0 {
			logger.Info().Msg("found product in cache")
			return cached[0], nil
		}
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		err = fmt.Errorf("failed finding product in cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("product not in cache")

	logger = logger.With().Str(log.KeyProcess, "finding product in database").Logger()
	logger.Info().Msg("finding product in database")
	product, err := svc.queries.FindProductById(c, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("productId=%s %w", id, inErrors.ErrProductNotFound)
		} else {
			err = fmt.Errorf("failed finding product in database with error=%w", err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("found product in database")

	logger = logger.With().Str(log.KeyProcess, "inserting product to cache").Logger()
	logger.Info().Msg("inserting product to cache")
	if err := svc.cache.JSONSet(c, cacheKey, "$", product.Response()).Err(); err != nil {
		err = fmt.Errorf("failed inserting product to cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("inserted product to cache")

	return product.Response(), nil
}

func (svc ProductService) FindProductBySlug(
	c context.Context,
	slug string,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductBySlug")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductBySlug").
		Str(log.KeyProcess, "finding product by slug").
		Str(log.KeyProductSlug, slug).
		Logger()

	logger.Info().Msg("finding product by slug")
	product, err := svc.queries.FindProductBySlug(c, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("slug=%s %w", slug, inErrors.ErrProductNotFound)
		} else {
			err = fmt.Errorf("failed finding product by slug=%s with error=%w", slug, err)
		}
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("found product by slug")

	return product.Response(), nil
}
