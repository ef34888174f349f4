package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	filesessions "github.com/TECHBREW-hub/TravelSure/internal/adapters/file/sessionstore"
	"github.com/TECHBREW-hub/TravelSure/internal/adapters/httpapi"
	memidempotency "github.com/TECHBREW-hub/TravelSure/internal/adapters/memory/idempotency"
	memsessions "github.com/TECHBREW-hub/TravelSure/internal/adapters/memory/sessionstore"
	"github.com/TECHBREW-hub/TravelSure/internal/adapters/postgres"
	pgcatalog "github.com/TECHBREW-hub/TravelSure/internal/adapters/postgres/catalogsource"
	redissessions "github.com/TECHBREW-hub/TravelSure/internal/adapters/redis/sessionstore"
	"github.com/TECHBREW-hub/TravelSure/internal/adapters/simulated/authprovider"
	"github.com/TECHBREW-hub/TravelSure/internal/adapters/simulated/paymentprovider"
	staticcatalog "github.com/TECHBREW-hub/TravelSure/internal/adapters/static/catalogsource"
	"github.com/TECHBREW-hub/TravelSure/internal/app/bookings"
	"github.com/TECHBREW-hub/TravelSure/internal/app/search"
	"github.com/TECHBREW-hub/TravelSure/internal/app/session"
	"github.com/TECHBREW-hub/TravelSure/internal/app/store"
	platformclock "github.com/TECHBREW-hub/TravelSure/internal/platform/clock"
	"github.com/TECHBREW-hub/TravelSure/internal/platform/config"
	"github.com/TECHBREW-hub/TravelSure/internal/platform/logging"
	catalogport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/catalogsource"
	sessionport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/sessionstore"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logging.New("error").Error("invalid config", "err", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := platformclock.NewSystemClock()
	st := store.New()

	var catalogSource catalogport.Source
	var cleanup func()
	switch cfg.CatalogSource {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			log.Error("connect postgres", "err", err)
			os.Exit(1)
		}
		cleanup = pool.Close
		catalogSource = pgcatalog.NewSource(pool)
	default:
		catalogSource = staticcatalog.NewSource()
	}
	if cleanup != nil {
		defer cleanup()
	}

	catalog, err := catalogSource.Load(ctx)
	if err != nil {
		log.Error("load catalog", "err", err)
		os.Exit(1)
	}
	st.Dispatch(store.SetDestinations{Destinations: catalog.Destinations})
	st.Dispatch(store.SetPackages{Packages: catalog.Packages})
	st.Dispatch(store.SetHotels{Hotels: catalog.Hotels})
	st.Dispatch(store.SetExperiences{Experiences: catalog.Experiences})
	log.Info("catalog loaded",
		"source", cfg.CatalogSource,
		"destinations", len(catalog.Destinations),
		"packages", len(catalog.Packages),
		"hotels", len(catalog.Hotels),
		"experiences", len(catalog.Experiences),
	)

	var sessions sessionport.Store
	switch cfg.SessionStore {
	case "file":
		fs, err := filesessions.NewStore(cfg.SessionDir)
		if err != nil {
			log.Error("open session dir", "err", err)
			os.Exit(1)
		}
		sessions = fs
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() { _ = client.Close() }()
		sessions = redissessions.NewStore(client, cfg.SessionTTL)
	default:
		sessions = memsessions.NewStore()
	}

	sessionSvc := session.NewService(st, sessions, authprovider.NewProvider(cfg.AuthDelay))
	searchSvc := search.NewService(st)
	bookingSvc := bookings.NewService(st, paymentprovider.NewProvider(cfg.PaymentDelay, clk), clk)

	// Rehydrate whoever was signed in before the last restart.
	if u, ok, err := sessionSvc.Restore(ctx); err != nil {
		log.Error("restore session", "err", err)
		os.Exit(1)
	} else if ok {
		log.Info("session restored", "userId", string(u.ID), "email", u.Email)
	}

	api := httpapi.NewServer(st, sessionSvc, searchSvc, bookingSvc, memidempotency.NewStore(), log, cfg.JWTSecret, cfg.TokenTTL)
	handler := httpapi.NewRouter(api, cfg.JWTSecret)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("api listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
