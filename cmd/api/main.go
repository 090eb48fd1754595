package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/trasealla/crm-api/pkg/config"
	"github.com/trasealla/crm-api/pkg/httpserver"
	"github.com/trasealla/crm-api/pkg/logger"
	"github.com/trasealla/crm-api/pkg/pg"
	"github.com/trasealla/crm-api/pkg/redis"
	"github.com/trasealla/crm-api/pkg/requestid"
	"github.com/trasealla/crm-api/pkg/tenant"
)

type appConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	ServiceName  string `env:"APP_NAME" envDefault:"crm-api"`
	JWTSecret    string `env:"JWT_SECRET,required"`
	TenantCache  bool   `env:"TENANT_CACHE_ENABLED" envDefault:"false"`
	CacheTTLMins int    `env:"TENANT_CACHE_TTL_MINUTES" envDefault:"5"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("service terminated", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg   appConfig
		pgCfg    pg.Config
		redisCfg redis.Config
		httpCfg  httpserver.Config
	)
	if err := config.Load(&appCfg); err != nil {
		return err
	}
	if err := config.Load(&pgCfg); err != nil {
		return err
	}
	if err := config.Load(&httpCfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.ServiceName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			tenant.LoggerExtractor(),
		),
	)
	slog.SetDefault(log)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return err
	}

	deps := routerDeps{
		log:       log,
		store:     tenant.NewPGStore(pool),
		jwtSecret: appCfg.JWTSecret,
		probes:    []func(context.Context) error{pg.Healthcheck(pool)},
	}

	if appCfg.TenantCache {
		if err := config.Load(&redisCfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		deps.cache = tenant.NewRedisCache(client, "tenant")
		deps.cacheTTL = time.Duration(appCfg.CacheTTLMins) * time.Minute
		deps.probes = append(deps.probes, redis.Healthcheck(client))
		log.InfoContext(ctx, "tenant cache enabled")
	}

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(deps))
}
