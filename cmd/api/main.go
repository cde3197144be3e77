package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/walkies/internal/booking"
	bookingStore "github.com/MrJamesThe3rd/walkies/internal/booking/store"
	"github.com/MrJamesThe3rd/walkies/internal/config"
	"github.com/MrJamesThe3rd/walkies/internal/database"
	walkiesHttp "github.com/MrJamesThe3rd/walkies/internal/http"
	"github.com/MrJamesThe3rd/walkies/internal/http/auth"
	bookingHandler "github.com/MrJamesThe3rd/walkies/internal/http/booking"
	invoiceHandler "github.com/MrJamesThe3rd/walkies/internal/http/invoice"
	rewardHandler "github.com/MrJamesThe3rd/walkies/internal/http/reward"
	"github.com/MrJamesThe3rd/walkies/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/walkies/internal/invoice/store"
	"github.com/MrJamesThe3rd/walkies/internal/reward"
	rewardStore "github.com/MrJamesThe3rd/walkies/internal/reward/store"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.App.LogLevel)})))

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	var (
		bookingService = booking.NewService(bookingStore.New(db), booking.WithLeadTime(cfg.Booking.LeadTime))
		rewardService  = reward.NewService(rewardStore.New(db))
		invoiceService = invoice.NewService(invoiceStore.New(db), rewardService)
	)

	var (
		bookingH = bookingHandler.NewHandler(bookingService)
		rewardH  = rewardHandler.NewHandler(rewardService)
		invoiceH = invoiceHandler.NewHandler(invoiceService)
	)

	router := walkiesHttp.New(
		walkiesHttp.Options{AllowedOrigins: cfg.CORS.AllowedOrigins},
		auth.New(cfg.Auth.JWTSecret, cfg.Auth.CookieName),
		bookingH, rewardH, invoiceH,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           http.TimeoutHandler(router, cfg.Server.Timeout, `{"error":"request timed out"}`),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "name", cfg.App.Name, "addr", srv.Addr, "lead_time", cfg.Booking.LeadTime)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}

	return level
}
