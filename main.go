package main

import (
	"api/internal/activity"
	"api/internal/configuration"
	"api/internal/core"
	"api/internal/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)

	profile := configuration.GetProfile(config.Profile)

	db := database.InitDB(config.Database)
	defer database.Close(db)

	cache := core.NewCache(config.Cache)
	activityLogger := activity.NewDatabaseClient(db)

	if profile.HTTPServer {
		core.CreateAdminUser(db, config)
	}

	appIdentity := uuid.New().String()

	if profile.Workers.AnyEnabled() {
		core.StartWorkers(profile, db, config, cache, appIdentity)
	}

	if profile.HTTPServer {
		core.StartHTTPServer(config, db, cache, activityLogger)
	} else if profile.Workers.AnyEnabled() {
		zap.L().Info("Running in worker-only mode")
		select {} // Block forever
	}
}
