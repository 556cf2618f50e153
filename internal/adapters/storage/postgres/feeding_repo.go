package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"puppy-growth/internal/domain/feeding"
)

type FeedingGuidesRepo struct {
	db *sql.DB
}

func NewFeedingGuidesRepo(db *sql.DB) *FeedingGuidesRepo {
	return &FeedingGuidesRepo{db: db}
}

const guideColumns = `id, name, brand, notes, source, entries, created_at`

func (r *FeedingGuidesRepo) Create(ctx context.Context, g feeding.Guide) error {
	// Las filas se guardan como JSONB: siempre se leen juntas.
	entries, err := json.Marshal(g.Entries)
	if err != nil {
		return fmt.Errorf("marshal guide entries: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO feeding_guides (`+guideColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		g.ID,
		g.Name,
		g.Brand,
		g.Notes,
		string(g.Source),
		string(entries),
		g.CreatedAt,
	)
	return err
}

func (r *FeedingGuidesRepo) GetByID(ctx context.Context, id string) (feeding.Guide, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return feeding.Guide{}, feeding.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+guideColumns+` FROM feeding_guides WHERE id = $1`, id)
	g, err := scanGuide(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return feeding.Guide{}, feeding.ErrNotFound
		}
		return feeding.Guide{}, err
	}
	return g, nil
}

func (r *FeedingGuidesRepo) List(ctx context.Context) ([]feeding.Guide, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+guideColumns+` FROM feeding_guides ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feeding.Guide, 0)
	for rows.Next() {
		g, err := scanGuide(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanGuide(s scanner) (feeding.Guide, error) {
	var g feeding.Guide
	var source string
	var raw []byte
	if err := s.Scan(
		&g.ID,
		&g.Name,
		&g.Brand,
		&g.Notes,
		&source,
		&raw,
		&g.CreatedAt,
	); err != nil {
		return feeding.Guide{}, err
	}

	g.Source = feeding.Source(source)
	if err := json.Unmarshal(raw, &g.Entries); err != nil {
		return feeding.Guide{}, fmt.Errorf("unmarshal guide entries: %w", err)
	}
	return g, nil
}
