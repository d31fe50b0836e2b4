package postgres

import (
	"log"

	"github.com/bundl-protocol/orderbook-service/internal/config"
	"github.com/bundl-protocol/orderbook-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.OrderbookConfig) *gorm.DB {
	dsn := cfg.OrderDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.ExtensionModel{}, &models.LimitOrderModel{})

	return db
}
