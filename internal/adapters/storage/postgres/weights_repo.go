package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"puppy-growth/internal/domain/weights"
)

type WeightsRepo struct {
	db *sql.DB
}

func NewWeightsRepo(db *sql.DB) *WeightsRepo {
	return &WeightsRepo{db: db}
}

const weightColumns = `id, pet_id, entry_date, weight_kg, notes, recorded_at`

// Upsert: (pet_id, entry_date) es único; un segundo registro del mismo día
// pisa peso/notas y conserva el id original.
func (r *WeightsRepo) Upsert(ctx context.Context, e weights.Entry) (weights.Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO weight_entries (`+weightColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (pet_id, entry_date) DO UPDATE
		SET
			weight_kg = EXCLUDED.weight_kg,
			notes = EXCLUDED.notes,
			recorded_at = EXCLUDED.recorded_at
		RETURNING `+weightColumns,
		e.ID,
		e.PetID,
		e.Date,
		e.WeightKg,
		e.Notes,
		e.RecordedAt,
	)
	return scanEntry(row)
}

func (r *WeightsRepo) GetByID(ctx context.Context, id string) (weights.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return weights.Entry{}, weights.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+weightColumns+` FROM weight_entries WHERE id = $1`, id)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return weights.Entry{}, weights.ErrNotFound
		}
		return weights.Entry{}, err
	}
	return e, nil
}

func (r *WeightsRepo) ListByPet(ctx context.Context, petID string, filter weights.ListFilter) ([]weights.Entry, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + weightColumns + ` FROM weight_entries WHERE pet_id = $1`)

	args := []any{petID}
	argN := 2

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND entry_date >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND entry_date <= $%d", argN))
		args = append(args, *filter.To)
	}

	sb.WriteString(" ORDER BY entry_date ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]weights.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *WeightsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM weight_entries WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return weights.ErrNotFound
	}
	return nil
}

func scanEntry(s scanner) (weights.Entry, error) {
	var e weights.Entry
	if err := s.Scan(
		&e.ID,
		&e.PetID,
		&e.Date,
		&e.WeightKg,
		&e.Notes,
		&e.RecordedAt,
	); err != nil {
		return weights.Entry{}, err
	}
	e.Date = e.Date.UTC()
	return e, nil
}
