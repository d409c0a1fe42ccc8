package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"bq/internal/core"
)

// FindAccount resolves a user-supplied account name: case-insensitive
// exact match first, then substring match. A single partial match wins;
// several yield an AmbiguousMatchError. Soft-deleted rows never match.
func (r *Repository) FindAccount(ctx context.Context, search string) (core.Match, error) {
	return r.findByName(ctx, "account", search)
}

// FindCategory resolves a category name with the same rules as
// FindAccount.
func (r *Repository) FindCategory(ctx context.Context, search string) (core.Match, error) {
	return r.findByName(ctx, "category", search)
}

func (r *Repository) findByName(ctx context.Context, kind, search string) (core.Match, error) {
	var m core.Match
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM `+kind+` WHERE LOWER(name) = LOWER(?) AND deletedAt IS NULL`,
		search,
	).Scan(&m.ID, &m.Name)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return core.Match{}, fmt.Errorf("find %s: %w", kind, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM `+kind+` WHERE LOWER(name) LIKE LOWER(?) AND deletedAt IS NULL ORDER BY id`,
		"%"+search+"%",
	)
	if err != nil {
		return core.Match{}, fmt.Errorf("find %s: %w", kind, err)
	}
	defer rows.Close()

	var matches []core.Match
	for rows.Next() {
		var pm core.Match
		if err := rows.Scan(&pm.ID, &pm.Name); err != nil {
			return core.Match{}, fmt.Errorf("scan %s: %w", kind, err)
		}
		matches = append(matches, pm)
	}
	if err := rows.Err(); err != nil {
		return core.Match{}, fmt.Errorf("find %s: %w", kind, err)
	}

	switch len(matches) {
	case 0:
		return core.Match{}, fmt.Errorf("%s %q: %w", kind, search, core.ErrNotFound)
	case 1:
		slog.Debug("resolved by partial match", "kind", kind, "query", search, "name", matches[0].Name)
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, pm := range matches {
			names[i] = pm.Name
		}
		return core.Match{}, &core.AmbiguousMatchError{Kind: kind, Query: search, Candidates: names}
	}
}

// DefaultAccount picks the account used when none is named on the
// command line: the configured preference when it resolves, else the
// first account that is not the host's "Outside source" bucket, else
// the first account at all.
func (r *Repository) DefaultAccount(ctx context.Context, preferred string) (core.Match, error) {
	if preferred != "" {
		if m, err := r.FindAccount(ctx, preferred); err == nil {
			return m, nil
		}
	}
	var m core.Match
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM account WHERE deletedAt IS NULL AND name != 'Outside source' ORDER BY id LIMIT 1`,
	).Scan(&m.ID, &m.Name)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return core.Match{}, fmt.Errorf("pick default account: %w", err)
	}
	err = r.db.QueryRowContext(ctx,
		`SELECT id, name FROM account WHERE deletedAt IS NULL ORDER BY id LIMIT 1`,
	).Scan(&m.ID, &m.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Match{}, fmt.Errorf("no accounts: %w", core.ErrNotFound)
	}
	if err != nil {
		return core.Match{}, fmt.Errorf("pick default account: %w", err)
	}
	return m, nil
}
