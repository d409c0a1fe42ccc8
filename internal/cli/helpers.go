package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"bq/internal/core"
	"bq/internal/storage"
)

// openRepo locates and opens the host database. Callers must Close.
func openRepo() (*storage.Repository, error) {
	path, err := storage.FindDBPath()
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}

// findAccount resolves an account name, turning a bare not-found into
// the user-facing hint.
func findAccount(ctx context.Context, repo *storage.Repository, name string) (core.Match, error) {
	m, err := repo.FindAccount(ctx, name)
	if errors.Is(err, core.ErrNotFound) {
		return core.Match{}, fmt.Errorf("account %q not found, run 'bq accs' to see available accounts", name)
	}
	return m, err
}

// findCategory is the category counterpart of findAccount.
func findCategory(ctx context.Context, repo *storage.Repository, name string) (core.Match, error) {
	m, err := repo.FindCategory(ctx, name)
	if errors.Is(err, core.ErrNotFound) {
		return core.Match{}, fmt.Errorf("category %q not found, run 'bq cats' to see available categories", name)
	}
	return m, err
}

// defaultCategory tries the configured default. A stale name is
// silently ignored; an ambiguous one is still an error.
func defaultCategory(ctx context.Context, repo *storage.Repository, preferred string) (*core.Match, error) {
	if preferred == "" {
		return nil, nil
	}
	m, err := repo.FindCategory(ctx, preferred)
	if errors.Is(err, core.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// confirm asks a y/N question on the terminal.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		return false
	}
	ans := strings.ToLower(strings.TrimSpace(sc.Text()))
	return ans == "y" || ans == "yes"
}
