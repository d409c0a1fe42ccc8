// Package config reads and writes the bq preferences file, a small JSON
// document under the user config directory. Settings missing from the
// file fall back to built-in defaults; keys bq does not know about are
// preserved across saves.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	KeyDefaultAccount      = "default_account"
	KeyDefaultCategory     = "default_category"
	KeyConfirmUndo         = "confirm_undo"
	KeyShowBalanceAfterAdd = "show_balance_after_add"
)

// ValidKeys lists the recognized setting names, in display order.
func ValidKeys() []string {
	return []string{KeyDefaultAccount, KeyDefaultCategory, KeyConfirmUndo, KeyShowBalanceAfterAdd}
}

type Config struct {
	DefaultAccount      string // empty means unset, stored as null
	DefaultCategory     string // empty means unset, stored as null
	ConfirmUndo         bool
	ShowBalanceAfterAdd bool

	extras map[string]json.RawMessage
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{ConfirmUndo: true}
}

// Path returns the config file location. BQ_CONFIG_PATH overrides the
// default of <user config dir>/bq/config.json.
func Path() string {
	if p := os.Getenv("BQ_CONFIG_PATH"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "bq", "config.json")
}

// Load reads the file at path and merges it over the defaults. A missing
// or unreadable file yields the defaults; so does a corrupt one.
func Load(path string) *Config {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg
	}
	for k, v := range raw {
		switch k {
		case KeyDefaultAccount:
			cfg.DefaultAccount = rawString(v)
		case KeyDefaultCategory:
			cfg.DefaultCategory = rawString(v)
		case KeyConfirmUndo:
			cfg.ConfirmUndo = rawBool(v, cfg.ConfirmUndo)
		case KeyShowBalanceAfterAdd:
			cfg.ShowBalanceAfterAdd = rawBool(v, cfg.ShowBalanceAfterAdd)
		default:
			if cfg.extras == nil {
				cfg.extras = make(map[string]json.RawMessage)
			}
			cfg.extras[k] = v
		}
	}
	return cfg
}

// Save writes the config atomically. Keys come out in stable (sorted)
// order, unknown keys included.
func (c *Config) Save(path string) error {
	out := make(map[string]any, len(c.extras)+4)
	for k, v := range c.extras {
		out[k] = v
	}
	out[KeyDefaultAccount] = nullable(c.DefaultAccount)
	out[KeyDefaultCategory] = nullable(c.DefaultCategory)
	out[KeyConfirmUndo] = c.ConfirmUndo
	out[KeyShowBalanceAfterAdd] = c.ShowBalanceAfterAdd

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Reset deletes the config file, restoring defaults on the next load.
func Reset(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove config: %w", err)
	}
	return nil
}

// ParseBool parses the boolean spellings accepted by `bq config set`.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("value must be 'true' or 'false', got %q", s)
}

func rawString(v json.RawMessage) string {
	var s *string
	if err := json.Unmarshal(v, &s); err != nil || s == nil {
		return ""
	}
	return *s
}

func rawBool(v json.RawMessage, fallback bool) bool {
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		return fallback
	}
	return b
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
