package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-day format accepted on the command line.
const DateLayout = "2006-01-02"

type (
	// Account mirrors a row of the host application's account table.
	// The current balance is derived from the ledger, never stored.
	Account struct {
		ID               int64
		Name             string
		Description      string
		BeginningBalance float64
	}

	// Category mirrors a row of the host application's category table.
	// Categories nest one level deep via ParentID.
	Category struct {
		ID       int64
		Name     string
		Nature   string
		ParentID *int64
	}

	// Record is a ledger row joined with the names it references,
	// as read back for display.
	Record struct {
		ID         int64
		Label      string
		Amount     float64
		Date       string // YYYY-MM-DD, empty when the row has no date
		IsIncome   bool
		IsTransfer bool
		Category   string
		Account    string
		TransferTo string
	}

	// NewRecord carries the fields of a record about to be inserted.
	NewRecord struct {
		Label        string
		Amount       float64
		Date         time.Time
		AccountID    int64
		CategoryID   *int64
		IsIncome     bool
		IsTransfer   bool
		TransferToID *int64
	}

	// RecordChanges is a partial update: nil fields are left untouched.
	RecordChanges struct {
		Amount     *float64
		Label      *string
		CategoryID *int64
		AccountID  *int64
		Date       *time.Time
		IsIncome   *bool
	}

	// Match is a resolved account or category: its row id plus the
	// canonical name as stored, which may differ in case or length
	// from what the user typed.
	Match struct {
		ID   int64
		Name string
	}
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidDate   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrEmptyLabel    = errors.New("empty label")
	ErrSameAccount   = errors.New("source and destination accounts must be different")
	ErrNoFields      = errors.New("no fields to edit")
	ErrNotFound      = errors.New("not found")
)

// AmbiguousMatchError reports a lookup that matched more than one row.
type AmbiguousMatchError struct {
	Kind       string // "account" or "category"
	Query      string
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple %ss match %q: %s", e.Kind, e.Query, strings.Join(e.Candidates, ", "))
}

func (n NewRecord) Validate() error {
	if n.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(n.Label) == "" {
		return ErrEmptyLabel
	}
	if n.IsTransfer {
		if n.TransferToID == nil {
			return errors.New("transfer without destination account")
		}
		if *n.TransferToID == n.AccountID {
			return ErrSameAccount
		}
		if n.CategoryID != nil {
			return errors.New("transfer cannot carry a category")
		}
	}
	return nil
}

// Empty reports whether the change set would be a no-op update.
func (c RecordChanges) Empty() bool {
	return c.Amount == nil && c.Label == nil && c.CategoryID == nil &&
		c.AccountID == nil && c.Date == nil && c.IsIncome == nil
}

func (c RecordChanges) Validate() error {
	if c.Empty() {
		return ErrNoFields
	}
	if c.Amount != nil && *c.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD command-line argument.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseAmount parses a positive decimal amount. A decimal comma is
// accepted alongside the dot.
func ParseAmount(s string) (float64, error) {
	v, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParseSignedAmount parses a decimal that may be negative or zero,
// for balance targets and adjustment deltas.
func ParseSignedAmount(s string) (float64, error) {
	return parseDecimal(s)
}

func parseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
