package main

import (
	"context"

	"go.uber.org/zap"

	"camrental/internal/database"
	"camrental/pkg/config"
	applogger "camrental/pkg/logger"
	"camrental/seeders"
)

func main() {
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()
	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.SQLite.Path)
	if err != nil {
		logger.Fatal("could not open the sqlite store", zap.Error(err))
	}
	defer db.Close()

	if err := seeders.New(db, logger).Run(ctx); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
}
