package save

import "fmt"

// dialect abstracts the SQL syntax differences between the sqlite and
// postgres snapshot stores.
type dialect interface {
	// DriverName returns the driver name for sql.Open().
	DriverName() string

	// Placeholder returns the parameter placeholder for the given
	// 1-indexed position.
	Placeholder(position int) string

	// InitStatements returns statements run right after opening.
	InitStatements() []string
}

type sqliteDialect struct{}

func (sqliteDialect) DriverName() string              { return "sqlite" }
func (sqliteDialect) Placeholder(position int) string { return "?" }
func (sqliteDialect) InitStatements() []string {
	return []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

type postgresDialect struct{}

func (postgresDialect) DriverName() string { return "postgres" }
func (postgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}
func (postgresDialect) InitStatements() []string { return nil }
