package main

import (
	"github.com/junctionlabs/junction-backend/internal/model"
	pgstore "github.com/junctionlabs/junction-backend/internal/store/postgres"
	"github.com/junctionlabs/junction-backend/internal/utils/config"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
)

func main() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)

	err := db.AutoMigrate(
		&model.Balance{},
		&model.SwapRequest{},
		&model.ChainAddress{},
		&model.WithdrawalReceipt{},
	)
	if err != nil {
		logger.Fatal("migration failed", map[string]string{
			"error": err.Error(),
		})
	}

	logger.Info("migration completed")
}
