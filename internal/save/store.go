// Package save persists whole-session snapshots. One monolithic document
// per save slot, no schema versioning, no partial recovery: loading
// anything that isn't a well-formed current-format document reports
// ErrNoSave and the caller starts fresh.
package save

import (
	"errors"
	"fmt"

	"github.com/babysitterd/chasm/internal/game"
)

// ErrNoSave is returned by Load when no usable save exists. Missing,
// unreadable and malformed documents are deliberately indistinguishable.
var ErrNoSave = errors.New("save: no saved game available")

// Store reads and writes session snapshots.
type Store interface {
	// Save replaces the stored document atomically. A failed save never
	// corrupts the previous document.
	Save(snap *game.Snapshot) error

	// Load reconstructs the stored snapshot, or returns ErrNoSave.
	Load() (*game.Snapshot, error)

	Close() error
}

// Open creates the store selected by the configuration.
func Open(cfg Config) (Store, error) {
	cfg = cfg.withDefaults()
	switch cfg.Driver {
	case DriverFile:
		return NewFileStore(cfg.Path), nil
	case DriverSQLite, DriverPostgres:
		return openSQLStore(cfg)
	default:
		return nil, fmt.Errorf("save: unknown driver %q", cfg.Driver)
	}
}
