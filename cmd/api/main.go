package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "stayoffers/internal/adapters/http_server"
	"stayoffers/internal/adapters/observability"
	redisad "stayoffers/internal/adapters/redis"
	"stayoffers/internal/app"
	"stayoffers/internal/bus"
	"stayoffers/internal/domain"
	"stayoffers/internal/memo"
	"stayoffers/internal/shared"
	mysqlrepo "stayoffers/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	repo := mysqlrepo.New(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	// event core: log every domain event and append it to storage
	b := bus.New(log.Logger)
	defer b.Clear()
	for _, name := range bus.Names {
		b.Subscribe(name, bus.LogHandler(log.Logger))
		b.Subscribe(name, storeEvents(repo))
	}

	// services
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	calc := memo.NewCalculator()
	search := app.NewSearchService(b)
	q := app.NewQueryService(search, cache, cfg.CacheTTL)
	booking := app.NewBookingService(b, calc)

	// http
	srv := server.New(cfg.RateRPS, cfg.RateBurst)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:       q,
		Booking: booking,
		Repo:    repo,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// storeEvents appends each published event through the repository.
func storeEvents(repo domain.SnapshotRepository) bus.Handler {
	return func(e domain.Event) {
		if _, err := repo.SaveEvent(context.Background(), e); err != nil {
			log.Warn().Err(err).Str("event", e.Name).Msg("persist event failed")
		}
	}
}
