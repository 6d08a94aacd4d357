package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// PostgresConfig Postgres接続設定
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PostgresStore stores snapshot blobs in a single key-value table
type PostgresStore struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewPostgresStore opens the connection and ensures the snapshot table exists
func NewPostgresStore(config *PostgresConfig, logger *logrus.Logger) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// 接続をテスト
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// 接続プールの設定
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	schema := `
		CREATE TABLE IF NOT EXISTS keep_snapshots (
			key        TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	logger.Info("データベースに接続しました")

	return &PostgresStore{db: db, logger: logger}, nil
}

// Load reads the blob for the key; ErrNotFound when no row exists
func (p *PostgresStore) Load(key string) ([]byte, error) {
	var data string
	err := p.db.QueryRow(`SELECT data FROM keep_snapshots WHERE key = $1`, key).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return []byte(data), nil
}

// Save upserts the blob for the key
func (p *PostgresStore) Save(key string, data []byte) error {
	query := `
		INSERT INTO keep_snapshots (key, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET data = $2, updated_at = $3`
	if _, err := p.db.Exec(query, key, string(data), time.Now()); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"key":  key,
		"size": len(data),
	}).Debug("スナップショットをデータベースに保存しました")
	return nil
}

// Close closes the database connection
func (p *PostgresStore) Close() error {
	p.logger.Info("データベース接続を閉じています")
	return p.db.Close()
}
