// Package database opens the GORM handle used by the repositories, either on
// top of a pgx pool (postgres) or a local SQLite file.
package database

import (
	"fmt"
	"strings"
	"time"

	"review-listing/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// InitDB opens the configured driver. The returned func releases the pool.
func InitDB(config utils.DatabaseConfig, log *zap.Logger) (*gorm.DB, func(), error) {
	switch strings.ToLower(config.Driver) {
	case DriverPostgres:
		return InitPostgres(config, log)
	case DriverSQLite, "":
		return InitSQLite(config.SQLitePath, log)
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}

func gormConfig(log *zap.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:  NewGormLogger(log, 200*time.Millisecond).LogMode(gormlogger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}
}
