package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Review   ReviewConfig
	View     ViewConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Driver      string // postgres | sqlite
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	SQLitePath  string
	AutoMigrate bool
}

// ReviewConfig drives the top reviews listing
type ReviewConfig struct {
	MinRating int
	ListLimit int
	MaxRating int
}

type ViewConfig struct {
	Dir    string
	Reload bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "review-listing")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_SQLITE_PATH", "reviews.db")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("REVIEW_MIN_RATING", 3)
	v.SetDefault("REVIEW_LIST_LIMIT", 10)
	v.SetDefault("REVIEW_MAX_RATING", 5)
	v.SetDefault("VIEW_DIR", "")
	v.SetDefault("VIEW_RELOAD", false)
}

// LoadConfig reads the given env file (".env" when empty) and overlays process
// environment variables. A missing file falls back to defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ".env"
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Driver:      v.GetString("DB_DRIVER"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			SQLitePath:  v.GetString("DB_SQLITE_PATH"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Review: ReviewConfig{
			MinRating: v.GetInt("REVIEW_MIN_RATING"),
			ListLimit: v.GetInt("REVIEW_LIST_LIMIT"),
			MaxRating: v.GetInt("REVIEW_MAX_RATING"),
		},
		View: ViewConfig{
			Dir:    v.GetString("VIEW_DIR"),
			Reload: v.GetBool("VIEW_RELOAD"),
		},
	}

	return config, nil
}
