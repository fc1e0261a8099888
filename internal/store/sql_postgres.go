package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/migrations"
)

const (
	postgresMaxOpenConns = 10
	postgresMaxIdleConns = 4
	postgresConnLifetime = 30 * time.Minute

	// the server may come up before Postgres accepts connections
	postgresPingAttempts = 5
	postgresPingBackoff  = time.Second
)

// NewConnectPostgres opens the pgx pool and waits until Postgres answers.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxLifetime(postgresConnLifetime)

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
		migrate:            migrations.Migrate,
	}

	if err = db.waitReady(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	log.Info().Str("func", "NewConnectPostgres").Msg("connected to postgres")
	return db, nil
}

func (db *DB) waitReady(ctx context.Context) error {
	backoff := postgresPingBackoff
	var err error
	for attempt := 1; attempt <= postgresPingAttempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}

		db.logger.Warn().Err(err).Str("func", "DB.waitReady").Int("attempt", attempt).Msg("postgres is not ready")
		if attempt == postgresPingAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("ping postgres: %w", err)
}
