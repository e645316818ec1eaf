package store

import (
	"context"

	"github.com/epireport/incubation-analysis/schema"
)

// ResultOperator - persist and read back unified result tables
type ResultOperator interface {
	SaveResults(table schema.ResultsTable) error
	GetResults(runID string) ([]schema.ResultRow, error)
}

// SaveResults - replace the stored rows for the table's run. Row order is
// preserved so a read-back reproduces the table as written.
func (s *sqliteDB) SaveResults(table schema.ResultsTable) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if nil != err {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE run_id=?`, table.RunID); err != nil {
		_ = tx.Rollback()
		return err
	}
	for i, row := range table.Rows {
		if _, err := tx.ExecContext(ctx, `INSERT INTO results(run_id, position, cohort, label, value, ci_low, ci_high, source)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
			table.RunID, i, row.Cohort, row.Label, row.Value, row.Lo, row.Hi, row.Source); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// GetResults - rows for one run in their original table order
func (s *sqliteDB) GetResults(runID string) ([]schema.ResultRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT cohort, label, value, ci_low, ci_high, source
		FROM results WHERE run_id=? ORDER BY position ASC`, runID)
	if nil != err {
		return nil, err
	}
	defer rows.Close()

	var out []schema.ResultRow
	for rows.Next() {
		var r schema.ResultRow
		if err := rows.Scan(&r.Cohort, &r.Label, &r.Value, &r.Lo, &r.Hi, &r.Source); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
