// populatedb loads the CSV fixture files into the database.
//
// Usage:
//
//	populatedb -t category genre -s category.csv genre.csv
//	populatedb --full
//
// Targets and sources are processed strictly in the order supplied, so a
// join table has to come after the tables it references.
package main

import (
	"context"
	"log"

	"review-platform/internal/importer"
	"review-platform/pkg/database"
	"review-platform/pkg/utils"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	targets := pflag.StringSliceP("target", "t", nil, "model names to populate (case-insensitive)")
	sources := pflag.StringSliceP("source", "s", nil, "csv file names, looked up in the data dir")
	full := pflag.Bool("full", false, "load every table in dependency order")
	dataDir := pflag.String("data-dir", "data", "directory holding the csv files")
	pflag.Parse()

	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	steps, err := importer.BuildPlan(*targets, *sources, *full, *dataDir)
	if err != nil {
		logger.Fatal("Invalid arguments", zap.Error(err))
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	if err := importer.NewImporter(db, logger).Run(ctx, steps); err != nil {
		logger.Fatal("Population failed", zap.Error(err))
	}

	logger.Info("DB successfully populated")
}
