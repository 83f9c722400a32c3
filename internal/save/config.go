package save

// Driver names for the snapshot store.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config selects and configures the snapshot store. The save location is
// explicit configuration, never a compiled-in constant.
type Config struct {
	// Driver is "file" (default), "sqlite" or "postgres".
	Driver string `yaml:"driver"`

	// Path is the save file for the file driver, or the database file
	// for the sqlite driver.
	Path string `yaml:"path"`

	// Slot distinguishes saves sharing one database.
	Slot string `yaml:"slot"`

	// Postgres holds connection settings for the postgres driver.
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// DefaultConfig returns a file store writing savegame.json in the data
// directory.
func DefaultConfig() Config {
	return Config{
		Driver: DriverFile,
		Path:   "data/savegame.json",
		Slot:   "default",
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Driver == "" {
		c.Driver = def.Driver
	}
	if c.Path == "" {
		c.Path = def.Path
	}
	if c.Slot == "" {
		c.Slot = def.Slot
	}
	if c.Postgres.Host == "" {
		c.Postgres.Host = "localhost"
	}
	if c.Postgres.Port == 0 {
		c.Postgres.Port = 5432
	}
	if c.Postgres.SSLMode == "" {
		c.Postgres.SSLMode = "disable"
	}
	return c
}
