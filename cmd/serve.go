package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/echobot/internal/adapter"
	"github.com/ziadkadry99/echobot/internal/auth"
	"github.com/ziadkadry99/echobot/internal/bot"
	"github.com/ziadkadry99/echobot/internal/config"
	"github.com/ziadkadry99/echobot/internal/connector"
	"github.com/ziadkadry99/echobot/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bot HTTP server",
	Long:  `Starts the echobot server exposing the channel connector webhook on /api/messages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

		// All collaborators are constructed explicitly and handed to
		// the adapter; there is no runtime container.
		validator := auth.NewValidator(auth.Config{
			AppID:     cfg.AppID,
			Secret:    cfg.AppSecret,
			ClockSkew: time.Duration(cfg.TokenClockSkewSeconds) * time.Second,
		})
		sender := connector.NewClient(nil, time.Duration(cfg.SendTimeoutSeconds)*time.Second)
		echo := bot.NewEchoBot(cfg.EchoPrefix)
		ad := adapter.New(validator, sender, echo, cfg.ApologyText, logger)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		})
		adapter.RegisterRoutes(srv.Router(), ad)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "echobot v%s starting on port %d\n", Version, cfg.Port)
		if !validator.Enabled() {
			fmt.Fprintln(os.Stderr, "  WARNING: no app_secret configured, credential validation is disabled")
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
