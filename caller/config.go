package caller

import "time"

// Config holds caller configuration.
type Config struct {
	// URL is the NATS endpoint of the calculator server.
	URL string

	// Timeout bounds each call when the context has no deadline.
	Timeout time.Duration

	// Name identifies this connection to the NATS server.
	Name string

	// SubjectPrefix is prepended to operation names to form subjects.
	SubjectPrefix string
}

// DefaultConfig returns the configuration for a server on localhost.
func DefaultConfig() Config {
	return Config{
		URL:           "nats://localhost:4222",
		Timeout:       5 * time.Second,
		Name:          "rpc-calculator-caller",
		SubjectPrefix: "services.calculator.",
	}
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithURL sets the NATS endpoint.
func WithURL(url string) Option {
	return func(c *Config) {
		c.URL = url
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithName sets the connection name.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}
