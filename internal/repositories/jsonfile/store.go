// Package jsonfile is a single-file storage backend. The whole dataset lives
// in one JSON document that is read into memory at startup and rewritten
// atomically on every mutation. It suits single-user deployments where
// running a database is not worth the trouble; the pgsql backend covers the
// rest.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// document is the on-disk shape of the store.
type document struct {
	Users         []jsonUser         `json:"users"`
	Expenses      []jsonExpense      `json:"expenses"`
	RateOverrides []jsonRateOverride `json:"rateOverrides"`
	Settings      []jsonSettings     `json:"settings"`
}

type jsonAudit struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

type jsonUser struct {
	UserID                 string     `json:"userID"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	AuthProvider           string     `json:"authProvider"`
	PasswordHash           string     `json:"passwordHash,omitempty"`
	RefreshTokenHash       string     `json:"refreshTokenHash,omitempty"`
	RefreshTokenExpiryTime *time.Time `json:"refreshTokenExpiryTime,omitempty"`
	jsonAudit
}

type jsonExpense struct {
	ExpenseID     string          `json:"expenseID"`
	UserID        string          `json:"userID"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Category      string          `json:"category"`
	Note          string          `json:"note,omitempty"`
	jsonAudit
}

type jsonRateOverride struct {
	UserID   string          `json:"userID"`
	MonthKey string          `json:"monthKey"`
	Rate     decimal.Decimal `json:"rate"`
	jsonAudit
}

type jsonSettings struct {
	UserID         string   `json:"userID"`
	PaymentMethods []string `json:"paymentMethods"`
	Categories     []string `json:"categories"`
	jsonAudit
}

// Store owns the document and serializes access to it. All repositories
// returned by NewRepositoryProvider share one Store.
type Store struct {
	path string

	mu  sync.Mutex
	doc document
}

// Open loads the document at path, creating an empty one when the file does
// not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
	}
	return s, nil
}

// flush rewrites the file atomically: write to a temp file in the same
// directory, then rename over the original. Callers must hold mu.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(&s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// update runs fn under the lock and flushes the document when fn succeeds.
func (s *Store) update(fn func(*document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.doc); err != nil {
		return err
	}
	return s.flush()
}

// read runs fn under the lock without writing.
func (s *Store) read(fn func(*document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.doc)
}
