package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/comitanigiacomo/progress-tracker/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/progress-tracker/internal/adapters/handler/http"
	"github.com/comitanigiacomo/progress-tracker/internal/adapters/repository"
	"github.com/comitanigiacomo/progress-tracker/internal/config"
	"github.com/comitanigiacomo/progress-tracker/internal/core/domain"
	"github.com/comitanigiacomo/progress-tracker/internal/core/services"
	"github.com/comitanigiacomo/progress-tracker/internal/core/workers"
	"github.com/comitanigiacomo/progress-tracker/internal/metrics"
)

type store struct {
	sessions domain.SessionRepository
	catalog  domain.ExerciseCatalog
	ping     adapterHTTP.PingFunc
	close    func(context.Context) error
}

type application struct {
	router *gin.Engine
	worker *workers.CatalogWorker
	store  *store
	redis  *redis.Client
}

// newApplication wires store, cache, services and router from cfg. The
// catalog worker is started on ctx.
func newApplication(ctx context.Context, cfg *config.Config, startTime time.Time) (*application, error) {
	cal := domain.NewCalendar(cfg.Timezone)

	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &application{store: st}

	registry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("progress", "api", registry)

	checks := map[string]adapterHTTP.PingFunc{"store": st.ping}

	var resultCache domain.ResultCache
	switch cfg.CacheDriver {
	case config.CacheRedis:
		rdb, err := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			_ = st.close(context.Background())
			return nil, err
		}
		app.redis = rdb
		resultCache = cache.NewRedisCache(rdb)
		checks["cache"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		logrus.WithField("addr", rdb.Options().Addr).Info("using redis result cache")
	default:
		resultCache = cache.NewMemoryCache(cfg.CacheSizeMB)
		logrus.WithField("size_mb", cfg.CacheSizeMB).Info("using in-process result cache")
	}
	resultCache = cache.NewInstrumentedCache(resultCache, metricsManager)

	catalog := repository.NewCachedExerciseCatalog(st.catalog, resultCache)

	app.worker = workers.NewCatalogWorker(st.sessions, catalog, resultCache, cal)
	if cfg.CatalogBackfill {
		if err := app.worker.Backfill(ctx); err != nil {
			logrus.WithError(err).Error("[WORKER] catalog backfill failed")
		}
	}
	app.worker.Start(ctx)

	sessionService := services.NewSessionService(st.sessions, resultCache, app.worker, cal)
	statsService := services.NewStatsService(st.sessions, catalog, resultCache, cal)
	exerciseService := services.NewExerciseService(st.sessions, catalog, resultCache, cal)

	deps := adapterHTTP.RouterDependencies{
		SessionHandler:  adapterHTTP.NewSessionHandler(sessionService, cal),
		StatsHandler:    adapterHTTP.NewStatsHandler(statsService),
		ExerciseHandler: adapterHTTP.NewExerciseHandler(exerciseService),
		HealthHandler:   adapterHTTP.NewHealthHandler(checks, startTime),
		RateLimit:       cfg.RateLimitPerMinute,
		Metrics:         metricsManager,
		MetricsGatherer: registry,
		EnableDocs:      cfg.EnableDocs,
	}
	if app.redis != nil {
		deps.Redis = app.redis
	}

	if cfg.AuthEnabled() {
		tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
		owner := domain.NewOwner(domain.DefaultOwnerName, cfg.OwnerPasswordHash)
		deps.AuthHandler = adapterHTTP.NewAuthHandler(services.NewAuthService(owner, tokens))
		deps.TokenValidator = tokens
	} else {
		logrus.Warn("JWT_SECRET or OWNER_PASSWORD_HASH not set, write endpoints are unauthenticated")
	}

	app.router = adapterHTTP.NewRouter(deps)
	return app, nil
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch cfg.StoreDriver {
	case config.StorePostgres:
		dsn := repository.PostgresDSN(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
		db, err := repository.OpenPostgres(connectCtx, cfg.DB.Driver, dsn)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"host": cfg.DB.Host, "driver": cfg.DB.Driver}).Info("database connected")
		return &store{
			sessions: repository.NewPostgresSessionRepository(db),
			catalog:  repository.NewPostgresExerciseCatalog(db),
			ping:     db.PingContext,
			close:    func(context.Context) error { return db.Close() },
		}, nil

	case config.StoreMongo:
		client, err := repository.OpenMongo(connectCtx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDB)
		if err := repository.EnsureMongoIndexes(connectCtx, db, cfg.MongoExercisesCollection); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		logrus.WithField("database", cfg.MongoDB).Info("mongo connected")
		return &store{
			sessions: repository.NewMongoSessionRepository(db),
			catalog:  repository.NewMongoExerciseCatalog(db, cfg.MongoExercisesCollection),
			ping:     func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
			close:    client.Disconnect,
		}, nil

	case config.StoreMemory:
		logrus.Warn("using in-memory store, data is lost on restart")
		return &store{
			sessions: repository.NewInMemorySessionRepository(),
			catalog:  repository.NewInMemoryExerciseCatalog(),
			ping:     func(context.Context) error { return nil },
			close:    func(context.Context) error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// close releases the store and cache. The worker must already be stopped.
func (a *application) close(ctx context.Context) error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	errs = append(errs, a.store.close(ctx))
	return errors.Join(errs...)
}
