package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tnohrer/HBA/internal/app"
	"github.com/tnohrer/HBA/internal/catalog"
	"github.com/tnohrer/HBA/internal/clock"
	"github.com/tnohrer/HBA/internal/config"
	"github.com/tnohrer/HBA/internal/notify"
	"github.com/tnohrer/HBA/internal/storage/memory"
	transporthttp "github.com/tnohrer/HBA/internal/transport/http"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	log.Logger = logger

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	clk := clock.NewSystem()
	cat := catalog.New()
	holdStore := memory.NewHoldStore()
	bookingStore := memory.NewBookingStore()

	holdSvc := app.NewHoldService(holdStore, cat, clk,
		app.WithHoldTTL(cfg.HoldTTL),
		app.WithExtendBy(cfg.HoldExtendBy),
	)
	bookingSvc := app.NewBookingService(holdStore, bookingStore, cat, notify.NewEmailLogger(logger), clk)
	searchSvc := app.NewSearchService(cat, holdSvc)

	sweeper := app.NewSweeper(holdStore, clk, cfg.SweepInterval, logger)
	sweeper.Start()
	defer sweeper.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/holds", transporthttp.HandleCreateHold(holdSvc))
	mux.Handle("/holds/", transporthttp.HandleHoldByID(holdSvc, bookingSvc))
	mux.Handle("/availability", transporthttp.HandleAvailability(holdSvc))
	mux.Handle("/search", transporthttp.HandleSearch(searchSvc))
	mux.Handle("/hotels/", transporthttp.HandleHotels(searchSvc))
	mux.Handle("/destinations", transporthttp.HandleDestinations(searchSvc))
	mux.Handle("/cities", transporthttp.HandleCities(searchSvc))
	mux.Handle("/bookings", transporthttp.HandleBookings(bookingSvc))
	mux.Handle("/bookings/", transporthttp.HandleBookings(bookingSvc))
	mux.Handle("/admin/holds", transporthttp.HandleAdminHolds(holdSvc))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, mux), logger)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info().Str("addr", cfg.HTTPAddr).Msg("api listening")

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
		}
	case <-stopCtx.Done():
		logger.Info().Msg("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}
