package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"solarfleet/internal/apiclient"
	"solarfleet/internal/config"
	"solarfleet/internal/dashboard"
	httphandlers "solarfleet/internal/http"
	"solarfleet/internal/prefs"
	"solarfleet/internal/registry"
	"solarfleet/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	rootCmd := &cobra.Command{
		Use:   "solarfleet",
		Short: "Solar plant fleet monitor",
		Long:  "Monitoring dashboard for solar power installations",
	}

	rootCmd.AddCommand(apiCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(fixturesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func apiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}

			store, err := prefs.NewStore(config.PrefsPath())
			if err != nil {
				return fmt.Errorf("preferences store: %w", err)
			}

			svcs := service.New(service.Config{
				PrefsStore:   store,
				ReplyDelay:   config.ChatReplyDelay(),
				ConnectDelay: config.IntegrationDelay(),
			})

			app := fiber.New()
			httphandlers.Register(app, svcs)

			addr := config.APIAddr()
			log.Info().Str("addr", addr).Msg("api listening")
			return app.Listen(addr)
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Run the browser dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			api := apiclient.New(config.APIURL())
			srv, err := dashboard.New(ctx, api, config.TemplatesDir())
			if err != nil {
				return fmt.Errorf("dashboard setup: %w", err)
			}

			httpSrv := &http.Server{Addr: config.DashboardAddr(), Handler: srv}
			go func() {
				<-ctx.Done()
				httpSrv.Shutdown(context.Background())
			}()

			log.Info().Str("addr", config.DashboardAddr()).Str("api", config.APIURL()).Msg("dashboard listening")
			if err := httpSrv.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}

func fixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Print the fixture dataset as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New()
			out, err := json.MarshalIndent(map[string]any{
				"plants": reg.Plants(),
				"alerts": reg.Alerts(),
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
