package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"50", 50, true},
		{"25.50", 25.5, true},
		{"25,50", 25.5, true},
		{" 12.34 ", 12.34, true},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for i, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("case %d: got %v, %v; want %v", i, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d: expected error for %q", i, tc.in)
		}
	}
}

func TestParseSignedAmount(t *testing.T) {
	got, err := ParseSignedAmount("-50")
	if err != nil || got != -50 {
		t.Fatalf("got %v, %v; want -50", got, err)
	}
	if _, err := ParseSignedAmount("x"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-03")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.January || d.Day() != 3 {
		t.Fatalf("unexpected date %v", d)
	}
	for _, bad := range []string{"03-01-2025", "2025/01/03", "yesterday", ""} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", bad, err)
		}
	}
}

func TestNewRecordValidate(t *testing.T) {
	to := int64(2)
	cat := int64(7)
	good := NewRecord{Label: "coffee", Amount: 3.5, AccountID: 1}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	goodTransfer := NewRecord{Label: "move", Amount: 10, AccountID: 1, IsTransfer: true, TransferToID: &to}
	if err := goodTransfer.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	same := int64(1)
	bads := []NewRecord{
		{Label: "x", Amount: 0, AccountID: 1},
		{Label: "  ", Amount: 1, AccountID: 1},
		{Label: "x", Amount: 1, AccountID: 1, IsTransfer: true},
		{Label: "x", Amount: 1, AccountID: 1, IsTransfer: true, TransferToID: &same},
		{Label: "x", Amount: 1, AccountID: 1, IsTransfer: true, TransferToID: &to, CategoryID: &cat},
	}
	for i, n := range bads {
		if err := n.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestRecordChanges(t *testing.T) {
	if err := (RecordChanges{}).Validate(); !errors.Is(err, ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
	bad := -1.0
	if err := (RecordChanges{Amount: &bad}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	label := "fixed"
	if err := (RecordChanges{Label: &label}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
}
