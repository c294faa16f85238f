package cmd

import (
	"log"

	"github.com/prologistix/backend/db"
	"go.uber.org/zap"
)

// mustValidConfig halts when the loaded configuration is incomplete,
// the service must never come up with authentication degraded
func mustValidConfig() {
	if LoadedConfig == nil {
		TopLevelLogger.Fatal("No configuration loaded")
	}
	if err := LoadedConfig.Validate(); err != nil {
		TopLevelLogger.Fatal("Invalid configuration", zap.Error(err))
	}
}

func mustResolveUsableDataStore() *db.DataStore {
	mustValidConfig()
	var dataStore *db.DataStore
	var err error
	switch LoadedConfig.Database.Type {
	case "sqlite":
		dataStore, err = db.NewSqliteStore(TopLevelLogger.Named("database"), LoadedConfig.Database)
	case "mysql":
		dataStore, err = db.NewMysqlStore(TopLevelLogger.Named("database"), LoadedConfig.Database)
	case "pg":
		dataStore, err = db.NewPostgrestore(TopLevelLogger.Named("database"), LoadedConfig.Database)
	default:
		log.Fatal("Unknown database type")
	}
	if err != nil {
		TopLevelLogger.Fatal("Failed to create datastore", zap.Error(err))
	}
	err = dataStore.EnsureUsable()
	if err != nil {
		TopLevelLogger.Fatal("Datastore is unusable", zap.Error(err))
	}
	return dataStore
}
