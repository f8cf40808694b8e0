package main

import (
	"context"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"camrental/internal/database"
	"camrental/internal/routes"
	"camrental/internal/views"
	"camrental/pkg/config"
	applogger "camrental/pkg/logger"
	appmw "camrental/pkg/middleware"
	"camrental/pkg/session"
	"camrental/pkg/validation"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	db, err := database.Connect(context.Background(), cfg.SQLite.Path)
	if err != nil {
		logger.Fatal("could not open the sqlite store", zap.Error(err))
	}
	defer db.Close()
	logger.Info("sqlite store ready", zap.String("path", cfg.SQLite.Path))

	sessions := session.NewManager(newSessionStore(cfg, logger), cfg.Session.TTL)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = views.NewRenderer()
	e.Validator = validation.NewEchoValidator()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
			)
			if !c.Response().Committed {
				return c.String(http.StatusInternalServerError, "Internal server error")
			}
			return err
		},
	}))
	e.Use(appmw.RequestLogger(logger))

	routes.InitRouter(e, db, sessions, logger)

	if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newSessionStore picks Redis when an address is configured, otherwise the
// in-process store. Sessions then survive restarts only in the Redis case.
func newSessionStore(cfg *config.Config, logger *zap.Logger) session.Store {
	if cfg.Redis.Address == "" {
		logger.Info("using in-memory session store")
		return session.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("could not connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	logger.Info("using Redis session store", zap.String("address", cfg.Redis.Address))
	return session.NewRedisStore(client)
}
