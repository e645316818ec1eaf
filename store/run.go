package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/epireport/incubation-analysis/schema"
)

var (
	ErrRunNotFound = fmt.Errorf("run not found")
)

// RunOperator - persist and read back analysis run descriptors
type RunOperator interface {
	SaveRun(info schema.RunInfo) error
	GetRun(id string) (*schema.RunInfo, error)
	ListRuns(limit int) ([]schema.RunInfo, error)
}

// SaveRun - upsert one run descriptor keyed by run ID
func (s *sqliteDB) SaveRun(info schema.RunInfo) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `INSERT INTO runs(id, created_at, source, family, seed, replicates)
		VALUES(?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET created_at=excluded.created_at, source=excluded.source,
			family=excluded.family, seed=excluded.seed, replicates=excluded.replicates`,
		info.ID, info.CreatedAt, info.Source, info.Family, info.Seed, info.Replicates)
	return err
}

// GetRun - fetch one run descriptor, ErrRunNotFound when absent
func (s *sqliteDB) GetRun(id string) (*schema.RunInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `SELECT id, created_at, source, family, seed, replicates
		FROM runs WHERE id=?`, id)

	var info schema.RunInfo
	switch err := row.Scan(&info.ID, &info.CreatedAt, &info.Source, &info.Family, &info.Seed, &info.Replicates); err {
	case nil:
		return &info, nil
	case sql.ErrNoRows:
		return nil, ErrRunNotFound
	default:
		return nil, err
	}
}

// ListRuns - most recent runs first
func (s *sqliteDB) ListRuns(limit int) ([]schema.RunInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT id, created_at, source, family, seed, replicates
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if nil != err {
		return nil, err
	}
	defer rows.Close()

	var runs []schema.RunInfo
	for rows.Next() {
		var info schema.RunInfo
		if err := rows.Scan(&info.ID, &info.CreatedAt, &info.Source, &info.Family, &info.Seed, &info.Replicates); err != nil {
			return nil, err
		}
		runs = append(runs, info)
	}
	return runs, rows.Err()
}
