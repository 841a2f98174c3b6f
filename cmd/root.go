package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Alturino/audiophile/internal/constants"
	"github.com/Alturino/audiophile/internal/log"
)

func Start() {
	logger := log.Get(fmt.Sprintf("/var/log/%s.log", constants.AppStorefrontService), os.Getenv("APP_ENV")).
		With().
		Str(log.KeyAppName, constants.AppStorefrontService).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: "audiophile"}
	commands := []*cobra.Command{
		{
			Use:   "storefront",
			Short: "Run the storefront service",
			Run: func(cmd *cobra.Command, args []string) {
				runStorefrontService(cmd.Context())
			},
		},
		{
			Use:   "seed",
			Short: "Seed the product catalog",
			Run: func(cmd *cobra.Command, args []string) {
				runCatalogSeeder(cmd.Context())
			},
		},
	}
	rootCmd.AddCommand(commands...)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
