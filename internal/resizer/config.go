package resizer

import "time"

const (
	DefaultPort          = ":8080"
	DefaultMaxUploadSize = "20M"
)

type Config struct {
	Port string

	// Body limit in echo notation, e.g. 20M
	MaxUploadSize string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (c Config) port() string {
	if c.Port == "" {
		return DefaultPort
	}

	return c.Port
}

func (c Config) maxUploadSize() string {
	if c.MaxUploadSize == "" {
		return DefaultMaxUploadSize
	}

	return c.MaxUploadSize
}
