// Package db opens the application database connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	feedentity "profiles_backend/internal/feature/feed/domain/entity"
	"profiles_backend/internal/feature/identity/adapters"
	identityentity "profiles_backend/internal/feature/identity/domain/entity"
)

// connectTimeout は起動時のDB接続リトライの上限時間です。
const connectTimeout = 30 * time.Second

// Config holds the database connection settings.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	// InstanceName is the Cloud SQL instance connection name. When set, the
	// connection goes over the unix socket instead of TCP.
	InstanceName string
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN はPostgres用のDSN文字列を組み立てます。
// InstanceNameが設定されている場合はCloud SQLのUnixソケット接続が優先されます。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("user=%s password=%s dbname=%s host=/cloudsql/%s sslmode=disable",
			cfg.User, cfg.Password, cfg.Name, cfg.InstanceName)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// Opener opens a GORM connection for the given DSN. Injected so retry logic
// can be tested without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// DefaultOpener connects via the Postgres driver with TranslateError enabled,
// letting the adapters rely on GORM's portable duplicate-key error in
// addition to the Postgres SQLSTATE.
func DefaultOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry はDBが起動するまで一定間隔で接続を試行します。
// コンテナ起動直後はDBがまだ受け付けないことがあるため必要です。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		lastErr = err
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database not reachable after %s: %w", timeout, lastErr)
		}
		log.Printf("database not ready, retrying: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB connects to Postgres using environment variables and runs the
// schema migration.
func OpenDB() *gorm.DB {
	dsn := BuildDSN(LoadConfigFromEnv())

	db, err := ConnectWithRetry(dsn, connectTimeout, DefaultOpener)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// マイグレーション（User, FeedItem, Token）
	if err := db.AutoMigrate(
		&identityentity.User{},
		&feedentity.FeedItem{},
		&adapters.TokenModel{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
