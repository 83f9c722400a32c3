package save

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/babysitterd/chasm/internal/game"
)

// SQLStore keeps the snapshot in a single-row-per-slot table. The upsert
// runs as one statement, so a failed save leaves the previous document in
// place just like the file store's rename.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
	slot    string
}

// openSQLStore opens the database for the configured driver and ensures
// the schema exists.
func openSQLStore(cfg Config) (*SQLStore, error) {
	var d dialect
	var dsn string

	switch cfg.Driver {
	case DriverPostgres:
		d = postgresDialect{}
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User,
			cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)
	default:
		d = sqliteDialect{}
		dsn = cfg.Path
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("save: creating database directory: %w", err)
		}
	}

	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("save: opening database: %w", err)
	}

	for _, stmt := range d.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("save: initializing database: %w", err)
		}
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		saved_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("save: creating saves table: %w", err)
	}

	return &SQLStore{db: db, dialect: d, slot: cfg.Slot}, nil
}

// Save replaces the slot's document in a single upsert.
func (s *SQLStore) Save(snap *game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("save: encoding snapshot: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO saves (slot, data, saved_at) VALUES (%s, %s, CURRENT_TIMESTAMP)
		ON CONFLICT (slot) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		s.dialect.Placeholder(1), s.dialect.Placeholder(2))

	if _, err := s.db.Exec(query, s.slot, string(data)); err != nil {
		return fmt.Errorf("save: writing snapshot: %w", err)
	}
	return nil
}

// Load reads the slot's document back. Every failure mode collapses into
// ErrNoSave.
func (s *SQLStore) Load() (*game.Snapshot, error) {
	query := fmt.Sprintf("SELECT data FROM saves WHERE slot = %s", s.dialect.Placeholder(1))

	var data string
	if err := s.db.QueryRow(query, s.slot).Scan(&data); err != nil {
		return nil, ErrNoSave
	}

	var snap game.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, ErrNoSave
	}
	return &snap, nil
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
