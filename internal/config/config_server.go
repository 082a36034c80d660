package config

import "fmt"

// ServerConfig is the server-specific configuration view assembled from
// [StructuredConfig]. It drops the client-only groups so the server binary
// never depends on adapter or cache settings.
type ServerConfig struct {
	// App contains application-level settings (hash key, policy, version).
	App App
	// Storage contains the database settings.
	Storage Storage
	// Server contains the inbound HTTP settings.
	Server Server
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
