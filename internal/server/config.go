package server

// Config holds the websocket front end settings.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr"`

	// AllowedOrigins is a list of origins allowed to connect.
	// Empty list enforces same-origin policy; "*" allows all origins
	// (not recommended outside local play).
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum websocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`

	// PasswordHash is an optional bcrypt hash gating access. Empty
	// disables authentication.
	PasswordHash string `yaml:"password_hash"`

	// MaxMessages is how many log messages each frame carries.
	MaxMessages int `yaml:"max_messages"`
}

// DefaultConfig returns a Config with local-play defaults.
func DefaultConfig() Config {
	return Config{
		ListenAddr:     ":4477",
		AllowedOrigins: []string{},
		MaxMessageSize: 4096,
		MaxMessages:    50,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ListenAddr == "" {
		c.ListenAddr = def.ListenAddr
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = def.MaxMessageSize
	}
	if c.MaxMessages <= 0 {
		c.MaxMessages = def.MaxMessages
	}
	return c
}

// IsOriginAllowed checks the Origin header value against the allow list.
// An empty request origin (non-browser clients) is always allowed.
func (c Config) IsOriginAllowed(origin, host string) bool {
	if origin == "" {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	// Same-origin fallback when no allow list is configured.
	if len(c.AllowedOrigins) == 0 {
		return origin == "http://"+host || origin == "https://"+host
	}
	return false
}
