// Package menuboard is the storage side of the lunch menu pipeline:
// it ingests whole menu batches from the scraper and serves the most
// relevant stored batch for a given date.
package menuboard

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"lunchboard-backend/lib/menus"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/menuboard")

var ErrEmptyBatch = errors.New("refusing to store an empty batch")

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

// Insert persists a whole batch as one row, keyed by the min/max date
// across all of its day menus. Batches are never updated afterwards.
func (s Store) Insert(ctx context.Context, batch menus.MenuBatch) error {
	ctx, span := tracer.Start(ctx, "Insert")
	defer span.End()

	start, end := menus.BatchRange(batch)
	if start == "" {
		span.SetStatus(codes.Error, "empty batch")
		return ErrEmptyBatch
	}

	encoded, err := json.Marshal(batch)
	if err != nil {
		span.RecordError(err)
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		"INSERT INTO menus (start_date, end_date, menu) VALUES (?, ?, ?)",
		start, end, string(encoded),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.String("start_date", start),
		attribute.String("end_date", end),
		attribute.Int("restaurants", len(batch)),
	)
	return nil
}

// Query returns the newest stored batch whose date range covers the
// given ISO date. A miss is an empty batch, not an error.
func (s Store) Query(ctx context.Context, date string) (menus.MenuBatch, error) {
	ctx, span := tracer.Start(ctx, "Query")
	defer span.End()

	row := s.db.QueryRowContext(
		ctx,
		"SELECT menu FROM menus WHERE start_date <= ? AND end_date >= ? ORDER BY id DESC LIMIT 1",
		date, date,
	)

	var encoded string
	err := row.Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return menus.MenuBatch{}, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var batch menus.MenuBatch
	err = json.Unmarshal([]byte(encoded), &batch)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return batch, nil
}
