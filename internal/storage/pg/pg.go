package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"
	_ "github.com/lib/pq"

	"github.com/cylin-dev/guestbook/internal/config"
	"github.com/cylin-dev/guestbook/internal/logger"
)

const opTimeout = 5 * time.Second

type Storage struct {
	db  *sql.DB
	cfg *config.Config
}

// Querier is satisfied by both *sql.DB and *sql.Tx so core query logic
// stays transaction-agnostic.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Public.Pg.Host, "dbname", cfg.Public.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	storage := &Storage{db, cfg}
	if cfg.Public.Pg.InitPath != "" {
		if err := storage.applySchema(cfg.Public.Pg.InitPath); err != nil {
			db.Close()
			return nil, err
		}
	}
	return storage, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Public.Pg.Host, cfg.Public.Pg.Port, cfg.Public.Pg.User, cfg.Public.Pg.Password, cfg.Public.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) applySchema(initPath string) error {
	schema, err := os.ReadFile(initPath)
	if err != nil {
		return fmt.Errorf("failed to read init script %s: %w", initPath, err)
	}
	ctx, cancel := opContext()
	defer cancel()
	if _, err := s.db.ExecContext(ctx, string(schema)); err != nil {
		return fmt.Errorf("failed to apply init script: %w", err)
	}
	return nil
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

// isUniqueViolation reports whether err is the postgres unique_violation
// error (SQLSTATE 23505). The unique index itself is the atomicity point for
// duplicate-email detection; there is deliberately no check-then-insert.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
