package main

import (
	"github.com/hankosign/hankosign/internal/config"
	"github.com/hankosign/hankosign/internal/database"
	"github.com/hankosign/hankosign/internal/env"
	"github.com/hankosign/hankosign/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv()
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Token{},
		&model.Hanko{},
		&model.Document{},
		&model.Signature{},
		&model.Workflow{},
		&model.Approval{},
		&model.AuditLog{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	logger.Info("Migration complete")
}
