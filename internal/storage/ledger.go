package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bq/internal/core"
)

const recordColumns = `
	r.id, r.date, r.label, r.amount, r.isIncome, r.isTransfer,
	c.name, a.name, ta.name
FROM record r
LEFT JOIN category c ON r.categoryId = c.id
LEFT JOIN account a ON r.accountId = a.id
LEFT JOIN account ta ON r.transferToAccountId = ta.id`

// InsertRecord writes one ledger row and returns its id.
func (r *Repository) InsertRecord(ctx context.Context, n core.NewRecord) (int64, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}
	now := r.now().Format(timeLayout)
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO record (
			createdAt, updatedAt, label, amount, date,
			accountId, categoryId, isInProgress, isIncome, isTransfer, transferToAccountId
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		now, now, n.Label, n.Amount, n.Date.Format(timeLayout),
		n.AccountID, n.CategoryID, false, n.IsIncome, n.IsTransfer, n.TransferToID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert record id: %w", err)
	}
	slog.Debug("record inserted",
		"id", id, "label", n.Label, "amount", n.Amount,
		"income", n.IsIncome, "transfer", n.IsTransfer)
	return id, nil
}

// UpdateRecord applies a partial update; fields absent from the change
// set keep their stored values. updatedAt is always touched.
func (r *Repository) UpdateRecord(ctx context.Context, id int64, c core.RecordChanges) error {
	if err := c.Validate(); err != nil {
		return err
	}
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)
	if c.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *c.Amount)
	}
	if c.Label != nil {
		sets = append(sets, "label = ?")
		args = append(args, *c.Label)
	}
	if c.CategoryID != nil {
		sets = append(sets, "categoryId = ?")
		args = append(args, *c.CategoryID)
	}
	if c.AccountID != nil {
		sets = append(sets, "accountId = ?")
		args = append(args, *c.AccountID)
	}
	if c.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, c.Date.Format(timeLayout))
	}
	if c.IsIncome != nil {
		sets = append(sets, "isIncome = ?")
		args = append(args, *c.IsIncome)
	}
	sets = append(sets, "updatedAt = ?")
	args = append(args, r.now().Format(timeLayout), id)

	_, err := r.db.ExecContext(ctx,
		"UPDATE record SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update record: %w", err)
	}
	slog.Debug("record updated", "id", id, "fields", len(sets)-1)
	return nil
}

// DeleteRecord removes a single ledger row.
func (r *Repository) DeleteRecord(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM record WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	slog.Debug("record deleted", "id", id)
	return nil
}

// LastRecord returns the record at the given position counting back by
// creation time: offset 0 is the most recently created, regardless of
// its date field.
func (r *Repository) LastRecord(ctx context.Context, offset int) (core.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` ORDER BY r.createdAt DESC, r.id DESC LIMIT 1 OFFSET ?`, offset)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Record{}, fmt.Errorf("record at position %d: %w", offset+1, core.ErrNotFound)
	}
	if err != nil {
		return core.Record{}, fmt.Errorf("last record: %w", err)
	}
	return rec, nil
}

// GetRecord fetches one record by id.
func (r *Repository) GetRecord(ctx context.Context, id int64) (core.Record, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` WHERE r.id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Record{}, fmt.Errorf("record %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return core.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// RecentRecords lists records newest first (by date, then creation
// time). limit <= 0 lists everything.
func (r *Repository) RecentRecords(ctx context.Context, limit int) ([]core.Record, error) {
	q := `SELECT ` + recordColumns + ` ORDER BY r.date DESC, r.createdAt DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []core.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListAccounts returns all non-deleted accounts in id order.
func (r *Repository) ListAccounts(ctx context.Context) ([]core.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, beginningBalance FROM account WHERE deletedAt IS NULL ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []core.Account
	for rows.Next() {
		var a core.Account
		var desc sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &desc, &a.BeginningBalance); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.Description = desc.String
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListCategories returns all non-deleted categories, parents before
// children, alphabetical within each group.
func (r *Repository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, nature, parentCategoryId
		FROM category
		WHERE deletedAt IS NULL
		ORDER BY parentCategoryId IS NOT NULL, name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var c core.Category
		var nature sql.NullString
		var parent sql.NullInt64
		if err := rows.Scan(&c.ID, &c.Name, &nature, &parent); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Nature = nature.String
		if parent.Valid {
			p := parent.Int64
			c.ParentID = &p
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (core.Record, error) {
	var rec core.Record
	var date, cat, acc, transferTo sql.NullString
	err := row.Scan(&rec.ID, &date, &rec.Label, &rec.Amount,
		&rec.IsIncome, &rec.IsTransfer, &cat, &acc, &transferTo)
	if err != nil {
		return core.Record{}, err
	}
	if len(date.String) >= len(core.DateLayout) {
		rec.Date = date.String[:len(core.DateLayout)]
	} else {
		rec.Date = date.String
	}
	rec.Category = cat.String
	rec.Account = acc.String
	rec.TransferTo = transferTo.String
	return rec, nil
}
