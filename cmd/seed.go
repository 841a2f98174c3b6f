package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Alturino/audiophile/internal/config"
	"github.com/Alturino/audiophile/internal/constants"
	inErrors "github.com/Alturino/audiophile/internal/errors"
	"github.com/Alturino/audiophile/internal/infra"
	"github.com/Alturino/audiophile/internal/log"
	"github.com/Alturino/audiophile/internal/repository"
	productService "github.com/Alturino/audiophile/product/service"
	"github.com/Alturino/audiophile/product/pkg/request"
)

var catalog = []request.InsertProduct{
	{
		Name:          "XX99 Mark II Headphones",
		Slug:          "xx99-mark-ii-headphones",
		Category:      "headphones",
		ColorVariants: []string{"black", "silver"},
		Price:         decimal.NewFromInt(2999),
		Quantity:      40,
	},
	{
		Name:          "XX99 Mark I Headphones",
		Slug:          "xx99-mark-i-headphones",
		Category:      "headphones",
		ColorVariants: []string{"black", "white"},
		Price:         decimal.NewFromInt(1750),
		Quantity:      60,
	},
	{
		Name:          "XX59 Headphones",
		Slug:          "xx59-headphones",
		Category:      "headphones",
		ColorVariants: []string{"black", "blue"},
		Price:         decimal.NewFromInt(899),
		Quantity:      120,
	},
	{
		Name:          "ZX9 Speaker",
		Slug:          "zx9-speaker",
		Category:      "speakers",
		ColorVariants: []string{"black"},
		Price:         decimal.NewFromInt(4500),
		Quantity:      25,
	},
	{
		Name:          "ZX7 Speaker",
		Slug:          "zx7-speaker",
		Category:      "speakers",
		ColorVariants: []string{"black", "walnut"},
		Price:         decimal.NewFromInt(3500),
		Quantity:      30,
	},
	{
		Name:          "YX1 Wireless Earphones",
		Slug:          "yx1-wireless-earphones",
		Category:      "earphones",
		ColorVariants: []string{"black"},
		Price:         decimal.NewFromInt(599),
		Quantity:      200,
	},
}

func runCatalogSeeder(c context.Context) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyAppName, constants.AppCatalogSeeder).
		Str(log.KeyTag, "main runCatalogSeeder").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "init config").Logger()
	logger.Info().Msg("initializing config")
	c = logger.WithContext(c)
	cfg := config.Get(c, constants.AppStorefrontService)
	logger.Info().Msg("initialized config")

	logger = logger.With().Str(log.KeyProcess, "initializing database").Logger()
	logger.Info().Msg("initializing database")
	c = logger.WithContext(c)
	db := infra.NewDatabaseClient(c, cfg.Database)
	defer db.Close()
	logger.Info().Msg("initialized database")

	logger = logger.With().Str(log.KeyProcess, "initializing cache").Logger()
	logger.Info().Msg("initializing cache")
	c = logger.WithContext(c)
	cache := infra.NewCacheClient(c, cfg.Cache)
	defer cache.Close()
	logger.Info().Msg("initialized cache")

	queries := repository.New(db)
	productSvc := productService.NewProductService(db, queries, cache)

	logger = logger.With().Str(log.KeyProcess, "seeding catalog").Logger()
	for _, product := range catalog {
		lg := logger.With().Str(log.KeyProductName, product.Name).Logger()
		lg.Info().Msg("seeding product")
		c := lg.WithContext(c)
		inserted, err := productSvc.InsertProduct(c, product)
		if err != nil {
			if errors.Is(err, inErrors.ErrProductExist) {
				lg.Info().Msg("product already seeded")
				continue
			}
			err = fmt.Errorf("failed seeding product with error=%w", err)
			lg.Error().Err(err).Msg(err.Error())
			return
		}
		lg.Info().Str(log.KeyProductID, inserted.ID.String()).Msg("seeded product")
	}
	logger.Info().Msg("seeded catalog")
}
