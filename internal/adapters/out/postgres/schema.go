package postgres

import (
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/settlementrepo"
	"marketplace/internal/adapters/out/postgres/walletrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service, children first, for TRUNCATE.
var Tables = []string{
	"order_item_images", "order_items", "orders",
	"wallet_transactions", "wallets",
	"settlements",
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	models := make([]any, 0, 6)
	models = append(models, orderrepo.Models()...)
	models = append(models, walletrepo.Models()...)
	models = append(models, settlementrepo.Models()...)
	return db.AutoMigrate(models...)
}
