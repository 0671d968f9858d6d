package cmd

import (
	"fmt"
	"log"

	"review-listing/internal/data/repository"
	"review-listing/pkg/database"
	"review-listing/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is what every subcommand needs before doing its own work
type runtime struct {
	config *utils.Config
	logger *zap.Logger
	db     *gorm.DB
	repo   *repository.Repository
	close  func()
}

func bootstrap() (*runtime, error) {
	// Load config
	config, err := utils.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("db_driver", config.Database.Driver),
	)

	// Connect to database
	db, closeDB, err := database.InitDB(config.Database, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("Database connected successfully")

	return &runtime{
		config: config,
		logger: logger,
		db:     db,
		repo:   repository.NewRepository(db, logger),
		close: func() {
			closeDB()
			_ = logger.Sync()
		},
	}, nil
}

func (rt *runtime) migrate() error {
	if err := repository.Migrate(rt.db); err != nil {
		rt.logger.Error("Migration failed", zap.Error(err))
		return fmt.Errorf("migrate: %w", err)
	}
	rt.logger.Info("Database schema is up to date")
	return nil
}
