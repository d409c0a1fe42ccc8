package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"bq/internal/core"
)

// activityQuery sums ledger movement for one account: income and
// expenses on non-transfer rows, transfers out keyed by source,
// transfers in keyed by destination.
const activityQuery = `
SELECT
	  (SELECT COALESCE(SUM(amount), 0) FROM record WHERE accountId = ?1 AND isIncome = 1 AND isTransfer = 0)
	- (SELECT COALESCE(SUM(amount), 0) FROM record WHERE accountId = ?1 AND isIncome = 0 AND isTransfer = 0)
	- (SELECT COALESCE(SUM(amount), 0) FROM record WHERE accountId = ?1 AND isTransfer = 1)
	+ (SELECT COALESCE(SUM(amount), 0) FROM record WHERE transferToAccountId = ?1)`

// AccountBalance derives the current balance: stored beginning balance
// plus summed ledger activity.
func (r *Repository) AccountBalance(ctx context.Context, accountID int64, beginning float64) (float64, error) {
	var activity float64
	if err := r.db.QueryRowContext(ctx, activityQuery, accountID).Scan(&activity); err != nil {
		return 0, fmt.Errorf("sum account activity: %w", err)
	}
	return beginning + activity, nil
}

// AccountWithBalance pairs an account with its derived balance.
type AccountWithBalance struct {
	core.Account
	Current float64
}

// AccountsWithBalances returns every non-deleted account with its
// current balance, in id order.
func (r *Repository) AccountsWithBalances(ctx context.Context) ([]AccountWithBalance, error) {
	accounts, err := r.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AccountWithBalance, 0, len(accounts))
	for _, a := range accounts {
		current, err := r.AccountBalance(ctx, a.ID, a.BeginningBalance)
		if err != nil {
			return nil, err
		}
		out = append(out, AccountWithBalance{Account: a, Current: current})
	}
	return out, nil
}

// CurrentBalance derives the balance for an account identified only by
// id, reading the stored beginning balance first.
func (r *Repository) CurrentBalance(ctx context.Context, accountID int64) (float64, error) {
	beginning, err := r.beginningBalance(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return r.AccountBalance(ctx, accountID, beginning)
}

// BalanceChange describes a beginning-balance mutation for display.
type BalanceChange struct {
	OldBeginning float64
	NewBeginning float64
	Current      float64 // derived balance after the change
}

// SetBalance back-solves the beginning balance so the account's current
// balance equals target.
func (r *Repository) SetBalance(ctx context.Context, accountID int64, target float64) (BalanceChange, error) {
	old, err := r.beginningBalance(ctx, accountID)
	if err != nil {
		return BalanceChange{}, err
	}
	current, err := r.AccountBalance(ctx, accountID, old)
	if err != nil {
		return BalanceChange{}, err
	}
	newBeginning := old + (target - current)
	if err := r.writeBeginningBalance(ctx, accountID, newBeginning); err != nil {
		return BalanceChange{}, err
	}
	slog.Debug("balance set", "account", accountID, "target", target,
		"old_beginning", old, "new_beginning", newBeginning)
	return BalanceChange{OldBeginning: old, NewBeginning: newBeginning, Current: target}, nil
}

// AdjustBalance shifts the beginning balance by delta, moving the
// current balance by exactly the same amount.
func (r *Repository) AdjustBalance(ctx context.Context, accountID int64, delta float64) (BalanceChange, error) {
	old, err := r.beginningBalance(ctx, accountID)
	if err != nil {
		return BalanceChange{}, err
	}
	newBeginning := old + delta
	if err := r.writeBeginningBalance(ctx, accountID, newBeginning); err != nil {
		return BalanceChange{}, err
	}
	current, err := r.AccountBalance(ctx, accountID, newBeginning)
	if err != nil {
		return BalanceChange{}, err
	}
	slog.Debug("balance adjusted", "account", accountID, "delta", delta,
		"new_beginning", newBeginning)
	return BalanceChange{OldBeginning: old, NewBeginning: newBeginning, Current: current}, nil
}

func (r *Repository) beginningBalance(ctx context.Context, accountID int64) (float64, error) {
	var v float64
	err := r.db.QueryRowContext(ctx,
		`SELECT beginningBalance FROM account WHERE id = ?`, accountID).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("account %d: %w", accountID, core.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("read beginning balance: %w", err)
	}
	return v, nil
}

func (r *Repository) writeBeginningBalance(ctx context.Context, accountID int64, v float64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE account SET beginningBalance = ?, updatedAt = ? WHERE id = ?`,
		v, r.now().Format(timeLayout), accountID)
	if err != nil {
		return fmt.Errorf("write beginning balance: %w", err)
	}
	return nil
}
