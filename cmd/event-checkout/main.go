package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventCheckout/internal/config"
	"eventCheckout/internal/http-server/handlers/checkout/commitment"
	"eventCheckout/internal/http-server/handlers/checkout/createCheckout"
	"eventCheckout/internal/http-server/handlers/checkout/deleteCheckout"
	"eventCheckout/internal/http-server/handlers/checkout/getCheckout"
	"eventCheckout/internal/http-server/handlers/checkout/paymentReview"
	"eventCheckout/internal/http-server/handlers/checkout/updateCheckout"
	checkoutStatus "eventCheckout/internal/http-server/handlers/checkout/updateStatus"
	"eventCheckout/internal/http-server/handlers/event/createEvent"
	"eventCheckout/internal/http-server/handlers/event/getEvent"
	"eventCheckout/internal/http-server/handlers/event/listEvents"
	"eventCheckout/internal/http-server/handlers/event/updateEventStatus"
	"eventCheckout/internal/http-server/handlers/registration/createRegistration"
	"eventCheckout/internal/http-server/handlers/registration/deleteRegistration"
	"eventCheckout/internal/http-server/handlers/registration/updateRegistration"
	registrationStatus "eventCheckout/internal/http-server/handlers/registration/updateStatus"
	"eventCheckout/internal/http-server/handlers/report/exportEvent"
	"eventCheckout/internal/http-server/handlers/voucher/activateVoucher"
	"eventCheckout/internal/http-server/handlers/voucher/redeemVoucher"
	"eventCheckout/internal/http-server/handlers/voucher/validateVoucher"
	"eventCheckout/internal/http-server/middleware/mwauth"
	"eventCheckout/internal/http-server/middleware/mwlogger"
	"eventCheckout/internal/lib/logger/handlers/slogpretty"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/notification"
	"eventCheckout/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event checkout", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	notifier, err := notification.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID, log)
	if err != nil {
		log.Error("failed to init telegram notifier", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/api/events", listEvents.New(log, storage))
	router.Get("/api/events/{id}", getEvent.New(log, storage))
	router.Get("/api/voucher/{id}/validate", validateVoucher.New(log, storage))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, cfg.Auth.Secret))

		r.Post("/api/checkouts", createCheckout.New(log, storage, notifier))
		r.Get("/api/checkouts/{id}", getCheckout.New(log, storage))
		r.Put("/api/checkouts/{id}", updateCheckout.New(log, storage))
		r.Delete("/api/checkouts/{id}", deleteCheckout.New(log, storage))
		r.Post("/api/checkouts/{id}/commitment/{kind}", commitment.NewUpload(log, storage, notifier, cfg.Uploads.Dir))
		r.Delete("/api/checkouts/{id}/commitment/{kind}", commitment.NewRemove(log, storage, cfg.Uploads.Dir))

		r.Post("/api/registrations", createRegistration.New(log, storage))
		r.Put("/api/registrations/{id}", updateRegistration.New(log, storage))
		r.Patch("/api/registrations/{id}/status", registrationStatus.New(log, storage))
		r.Delete("/api/registrations/{id}", deleteRegistration.New(log, storage))

		r.Post("/api/voucher/{id}/registrate", redeemVoucher.New(log, storage))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.Admin(log))

			r.Post("/api/events", createEvent.New(log, storage))
			r.Patch("/api/events/{id}/status", updateEventStatus.New(log, storage))
			r.Get("/api/events/{id}/report", exportEvent.New(log, storage))
			r.Patch("/api/checkouts/{id}/status", checkoutStatus.New(log, storage))
			r.Patch("/api/checkouts/{id}/payment", paymentReview.New(log, storage))
			r.Patch("/api/voucher/{id}/activate", activateVoucher.New(log, storage))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
