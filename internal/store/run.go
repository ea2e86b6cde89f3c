package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

var runColumns = []string{
	"id", "started_at", "finished_at", "status", "use_case", "model", "labels",
	"sample_size", "batch_size", "output_path", "records", "error_message",
}

// runRepo implements RunRepo backed by the ent SQL driver.
type runRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

func (r *runRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *runRepo) StartRun(ctx context.Context, start RunStart) (string, error) {
	id := uuid.NewString()

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableRuns).
		Columns("id", "started_at", "status", "use_case", "model", "labels",
			"sample_size", "batch_size", "output_path").
		Values(
			id,
			formatTime(r.clock()),
			RunRunning,
			start.UseCase,
			start.Model,
			strings.Join(start.Labels, ","),
			start.SampleSize,
			start.BatchSize,
			start.OutputPath,
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	return id, nil
}

func (r *runRepo) FinishRun(ctx context.Context, id string, finish RunFinish) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Update(tableRuns).
		Set("finished_at", formatTime(r.clock())).
		Set("status", finish.Status).
		Set("records", finish.Records).
		Set("error_message", finish.ErrorMessage).
		Where(entsql.EQ("id", id)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("finish run %s: %w", id, err)
	}
	return nil
}

func (r *runRepo) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(runColumns...).
		From(entsql.Table(tableRuns)).
		OrderBy(entsql.Desc("started_at"))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(&rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func (r *runRepo) GetRun(ctx context.Context, id string) (*Run, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(runColumns...).
		From(entsql.Table(tableRuns)).
		Where(entsql.EQ("id", id)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanRun(&rows)
}

func scanRun(rows *entsql.Rows) (*Run, error) {
	var (
		run               Run
		started, finished string
		labels            string
	)
	err := rows.Scan(
		&run.ID, &started, &finished, &run.Status, &run.UseCase, &run.Model, &labels,
		&run.SampleSize, &run.BatchSize, &run.OutputPath, &run.Records, &run.ErrorMessage,
	)
	if err != nil {
		return nil, fmt.Errorf("scan run: %w", err)
	}
	if run.StartedAt, err = parseTime(started); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseTime(finished); err != nil {
		return nil, err
	}
	if labels != "" {
		run.Labels = strings.Split(labels, ",")
	}
	return &run, nil
}
