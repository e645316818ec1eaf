package store

import (
	"context"
	"database/sql"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const (
	sqliteLogPrefix = "sqlite"
	defaultTimeout  = 5 * time.Second
)

// ResultStore - interface for result database operations
type ResultStore interface {
	RunOperator
	ResultOperator
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type sqliteDB struct {
	db *sql.DB
}

// Ping - ping sqlite db
func (s *sqliteDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

// Close - close sqlite db connection
func (s *sqliteDB) Close() {
	log.WithField("prefix", sqliteLogPrefix).Info("closing sqlite db connection")
	_ = s.db.Close()
}

// NewSQLiteStore - open the result database at path and run migrations
func NewSQLiteStore(path string) (ResultStore, error) {
	db, err := sql.Open("sqlite", path)
	if nil != err {
		return nil, err
	}

	s := &sqliteDB{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sqliteDB) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMP,
			source TEXT,
			family TEXT,
			seed INTEGER,
			replicates INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			position INTEGER,
			cohort TEXT,
			label TEXT,
			value REAL,
			ci_low REAL,
			ci_high REAL,
			source TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
