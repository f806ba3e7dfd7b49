package app

import (
	"context"
	"net/http"
	gameAPI "slot_machine/internal/api/game"
	sessionAPI "slot_machine/internal/api/session"
	"slot_machine/internal/config"
	"slot_machine/internal/config/env"
	"slot_machine/internal/logger"
	"slot_machine/internal/middleware"
	"slot_machine/internal/random"
	"slot_machine/internal/repository"
	"slot_machine/internal/repository/session_pg_repo"
	"slot_machine/internal/repository/session_redis_repo"
	"slot_machine/internal/repository/session_repo"
	"slot_machine/internal/repository/stats_repo"
	"slot_machine/internal/service"
	"slot_machine/internal/service/game"
	"slot_machine/internal/service/session"
	"slot_machine/pkg/keylock"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	log *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Session store
	storeConfig config.StoreConfig
	sessionRepo repository.SessionRepository
	statsRepo   repository.StatsRepository
	locks       *keylock.KeyLock

	// Game bits
	gameCfg     config.GameConfig
	drawer      service.SymbolDrawer
	gameServ    service.GameService
	gameHand    *gameAPI.Handler
	sessionServ service.SessionService
	sessionHand *sessionAPI.Handler

	// Token, router and HTTP config
	tokenCfg config.TokenConfig
	httpCfg  config.HTTPConfig
	router   chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		l, err := logger.New(cfg)
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = session_pg_repo.Migrate(ctx, dbc)
		if err != nil {
			panic("failed to migrate db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		cfg := sp.RedisConfig()
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) StoreConfig() config.StoreConfig {
	if sp.storeConfig == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeConfig = cfg
	}
	return sp.storeConfig
}

// SessionRepository - хранилище по SESSION_STORE
func (sp *ServiceProvider) SessionRepository(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		kind := sp.StoreConfig().Kind()
		switch kind {
		case config.StorePostgres:
			sp.sessionRepo = session_pg_repo.NewSessionRepository(sp.DBClient(ctx), sp.TXManager(ctx))
		case config.StoreRedis:
			sp.sessionRepo = session_redis_repo.NewSessionRepository(sp.RedisClient(ctx), sp.RedisConfig().SessionTTL())
		default:
			sp.sessionRepo = session_repo.NewSessionRepository()
		}
		sp.Logger().Info("session store ready", zap.String("store", kind))
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.GameCfg().StatsWindow())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) Locks() *keylock.KeyLock {
	if sp.locks == nil {
		sp.locks = keylock.New()
	}
	return sp.locks
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Drawer() service.SymbolDrawer {
	if sp.drawer == nil {
		cfgTiers := sp.GameCfg().SuppressionTiers()
		tiers := make([]random.Tier, len(cfgTiers))
		for i, t := range cfgTiers {
			tiers[i] = random.Tier{
				MinCredits:  t.MinCredits,
				MaxCredits:  t.MaxCredits,
				Probability: t.Probability,
			}
		}

		g, err := random.New(tiers)
		if err != nil {
			panic("failed to create random generator: " + err.Error())
		}
		sp.drawer = g
	}
	return sp.drawer
}

func (sp *ServiceProvider) GameService(ctx context.Context) service.GameService {
	if sp.gameServ == nil {
		sp.gameServ = game.NewGameService(
			sp.GameCfg(),
			sp.SessionRepository(ctx),
			sp.StatsRepository(),
			sp.Drawer(),
			sp.Locks(),
			sp.Logger(),
		)
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv: sp.GameService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) SessionService(ctx context.Context) service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(
			sp.GameCfg(),
			sp.SessionRepository(ctx),
			sp.Locks(),
			sp.Logger(),
		)
	}
	return sp.sessionServ
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv:     sp.SessionService(ctx),
			TokenCfg: sp.TokenCfg(),
			Log:      sp.Logger(),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) TokenCfg() config.TokenConfig {
	if sp.tokenCfg == nil {
		cfg, err := env.NewTokenConfig()
		if err != nil {
			panic("failed to get token config: " + err.Error())
		}
		if env.IsDefaultSecret(cfg) {
			sp.Logger().Warn("TOKEN_SECRET is not set, using development secret")
		}
		sp.tokenCfg = cfg
	}
	return sp.tokenCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.Recover(sp.Logger()))
		r.Use(middleware.Observe(sp.Logger()))

		// CORS middleware. Cookie сессии требует AllowCredentials и явных источников
		r.Use(cors.Handler(cors.Options{
			AllowOriginFunc:  func(_ *http.Request, _ string) bool { return true },
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		r.Handle("/metrics", promhttp.Handler())

		sessionHandler := sp.SessionHandler(ctx)
		gameHandler := sp.GameHandler(ctx)
		withSession := middleware.Session(sp.TokenCfg().SecretKey(), sp.Logger())

		r.Route("/api", func(rr chi.Router) {
			rr.Post("/session/create", sessionHandler.Create)
			rr.Get("/stats", gameHandler.Stats)

			rr.Group(func(sr chi.Router) {
				sr.Use(withSession)
				sr.Get("/session/status", sessionHandler.Status)
				sr.Post("/session/cashout", sessionHandler.CashOut)
				sr.Delete("/session", sessionHandler.Delete)
				sr.Post("/game/roll", gameHandler.Roll)
			})
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает внешние подключения
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.redisClient != nil {
		_ = sp.redisClient.Close()
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}
