package storage

import (
	"context"
	"errors"
	"testing"

	"bq/internal/core"
)

func TestFindAccountExactMatch(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	id := seedAccount(t, r, "Checking", "", 0)
	seedAccount(t, r, "Savings", "", 0)

	m, err := r.FindAccount(ctx, "checking")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != id || m.Name != "Checking" {
		t.Fatalf("got %+v", m)
	}
}

func TestFindExactBeatsAmbiguousPartials(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	food := seedCategory(t, r, "Food", "NEED", nil)
	seedCategory(t, r, "Food Delivery", "WANT", nil)

	// "food" is a substring of both names, but an exact match exists.
	m, err := r.FindCategory(ctx, "food")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != food || m.Name != "Food" {
		t.Fatalf("exact match should win, got %+v", m)
	}
}

func TestFindSinglePartialMatch(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	id := seedAccount(t, r, "Main Checking", "", 0)
	seedAccount(t, r, "Savings", "", 0)

	m, err := r.FindAccount(ctx, "check")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != id {
		t.Fatalf("got %+v", m)
	}
}

func TestFindAmbiguousPartialMatch(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedAccount(t, r, "Credit One", "", 0)
	seedAccount(t, r, "Credit Two", "", 0)

	_, err := r.FindAccount(ctx, "credit")
	var amb *core.AmbiguousMatchError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguousMatchError, got %v", err)
	}
	if len(amb.Candidates) != 2 {
		t.Fatalf("candidates = %v", amb.Candidates)
	}
	if amb.Candidates[0] != "Credit One" || amb.Candidates[1] != "Credit Two" {
		t.Fatalf("candidates = %v", amb.Candidates)
	}
}

func TestFindNotFound(t *testing.T) {
	r := newTestRepo(t)
	seedAccount(t, r, "Checking", "", 0)

	_, err := r.FindAccount(context.Background(), "bitcoin")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindSkipsSoftDeleted(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedDeletedAccount(t, r, "Old Checking")
	live := seedAccount(t, r, "New Checking", "", 0)

	// Only the live row should resolve, so "checking" is unambiguous.
	m, err := r.FindAccount(ctx, "checking")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != live {
		t.Fatalf("resolved deleted account: %+v", m)
	}
}

func TestDefaultAccountPrefersConfigured(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedAccount(t, r, "Checking", "", 0)
	savings := seedAccount(t, r, "Savings", "", 0)

	m, err := r.DefaultAccount(ctx, "savings")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != savings {
		t.Fatalf("got %+v", m)
	}
}

func TestDefaultAccountSkipsOutsideSource(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedAccount(t, r, "Outside source", "", 0)
	checking := seedAccount(t, r, "Checking", "", 0)

	m, err := r.DefaultAccount(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != checking {
		t.Fatalf("got %+v", m)
	}
}

func TestDefaultAccountFallsBackToOnlyAccount(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	outside := seedAccount(t, r, "Outside source", "", 0)

	m, err := r.DefaultAccount(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != outside {
		t.Fatalf("got %+v", m)
	}
}

func TestDefaultAccountNoAccounts(t *testing.T) {
	r := newTestRepo(t)
	if _, err := r.DefaultAccount(context.Background(), ""); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDefaultAccountIgnoresStalePreference(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	checking := seedAccount(t, r, "Checking", "", 0)

	// Configured name no longer resolves; fall through to first account.
	m, err := r.DefaultAccount(ctx, "Deleted Wallet")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != checking {
		t.Fatalf("got %+v", m)
	}
}
