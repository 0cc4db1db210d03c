package main

import (
	"github.com/spf13/viper"

	"moneylens/internal/config"
	"moneylens/internal/storage"
)

// defaultDBPath matches where the money-manager app drops its database.
const defaultDBPath = "./money_manager.db"

// openStore opens the configured money-manager database read-only.
func openStore() (*storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	return storage.NewSQLiteStore(config.ExpandPath(dbPath))
}
