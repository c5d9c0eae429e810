package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"roomBooker/internal/booking"
	"roomBooker/internal/calsync/lifecycle"
	"roomBooker/internal/calsync/reconcile"
	"roomBooker/internal/config"
	"roomBooker/internal/graph"
	"roomBooker/internal/http-server/handlers/booking/cancelBooking"
	"roomBooker/internal/http-server/handlers/booking/createBooking"
	"roomBooker/internal/http-server/handlers/booking/getBooking"
	"roomBooker/internal/http-server/handlers/booking/listRoomBookings"
	"roomBooker/internal/http-server/handlers/sync/disableSync"
	"roomBooker/internal/http-server/handlers/sync/enableSync"
	"roomBooker/internal/http-server/handlers/sync/listSubscriptions"
	"roomBooker/internal/http-server/handlers/sync/providerRooms"
	"roomBooker/internal/http-server/handlers/sync/removeAll"
	"roomBooker/internal/http-server/handlers/sync/removeSubscription"
	"roomBooker/internal/http-server/handlers/sync/resyncRoom"
	"roomBooker/internal/http-server/handlers/sync/subscribeAll"
	"roomBooker/internal/http-server/handlers/webhook/graphNotification"
	"roomBooker/internal/http-server/middleware/mwlogger"
	"roomBooker/internal/http-server/middleware/syncgate"
	"roomBooker/internal/lib/logger/handlers/slogpretty"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/notify"
	"roomBooker/internal/storage/postgres"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting room booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = storage.Migrate(context.Background()); err != nil {
		log.Error("failed to apply schema", sl.Err(err))
		os.Exit(1)
	}

	pub := setupPublisher(log, cfg.Broker)

	// Left as nil interfaces when sync is off; every consumer treats a nil
	// calendar as "not configured".
	var (
		client       *graph.Client
		bookingCal   booking.Calendar
		lifecycleCal lifecycle.Calendar
		reconcileCal reconcile.Calendar
	)

	syncEnabled := cfg.SyncEnabled()
	if syncEnabled {
		client, err = graph.New(context.Background(), cfg.Graph,
			graph.WithSubscriptionTTL(time.Duration(cfg.Sync.SubscriptionMinutes)*time.Minute),
		)
		if err != nil {
			log.Error("failed to init calendar client", sl.Err(err))
			os.Exit(1)
		}
		bookingCal, lifecycleCal, reconcileCal = client, client, client

		log.Info("calendar sync enabled", slog.String("notification_url", cfg.Sync.NotificationURL()))
	} else {
		log.Warn("calendar sync is not configured; provider calls are disabled")
	}

	bookings := booking.New(log, storage, bookingCal, pub)
	manager := lifecycle.New(log, storage, lifecycleCal, pub, cfg.Sync.NotificationURL(), cfg.Sync.RenewalLookahead)
	reconciler := reconcile.New(log, storage, reconcileCal, pub, cfg.Sync.ResyncWindow)
	renewer := lifecycle.NewRenewer(log, manager, cfg.Sync.StartupDelay, cfg.Sync.RenewalInterval)
	queue := reconcile.NewQueue(log, reconciler, cfg.Sync.QueueSize, cfg.Sync.QueueWorkers)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/bookings", createBooking.New(log, bookings))
	router.Get("/bookings/{id}", getBooking.New(log, bookings))
	router.Post("/bookings/{id}/cancel", cancelBooking.New(log, bookings))
	router.Get("/rooms/{id}/bookings", listRoomBookings.New(log, bookings))

	router.Route("/sync", func(r chi.Router) {
		r.Get("/subscriptions", listSubscriptions.New(log, manager))
		r.Delete("/subscriptions/{id}", removeSubscription.New(log, manager))
		r.Delete("/subscriptions", removeAll.New(log, manager))
		r.Delete("/rooms/{id}", disableSync.New(log, manager))

		r.Group(func(r chi.Router) {
			r.Use(syncgate.New(syncEnabled))

			r.Post("/rooms/{id}", enableSync.New(log, storage, manager))
			r.Post("/subscribe-all", subscribeAll.New(log, manager))
			r.Post("/rooms/{id}/resync", resyncRoom.New(log, reconciler))
			r.Get("/provider-rooms", providerRooms.New(log, client))
		})
	})

	router.With(syncgate.New(syncEnabled)).
		Post(cfg.Sync.WebhookPath, graphNotification.New(log, queue))

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

	if syncEnabled {
		queue.Start()
		renewer.Start(context.Background())
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	renewer.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	queue.Stop()

	log.Info("application stopped")

	if err = pub.Close(); err != nil {
		log.Error("failed to close publisher", sl.Err(err))
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupPublisher(log *slog.Logger, cfg config.Broker) notify.Publisher {
	if cfg.URL == "" {
		log.Info("no broker configured; changes are only logged")
		return notify.NewLogPublisher(log)
	}

	pub, err := notify.NewAMQPPublisher(cfg.URL, cfg.Exchange)
	if err != nil {
		log.Error("failed to connect to broker; falling back to log publisher", sl.Err(err))
		return notify.NewLogPublisher(log)
	}

	return pub
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
	default:
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
