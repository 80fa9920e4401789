package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// API_ADDR points the scenario at a running node; tests skip when unset.
	APIAddr string `envconfig:"API_ADDR"`
	// AUTH_SECRET must match the node's AUTH_TOKEN_SECRET.
	AuthSecret string `envconfig:"AUTH_SECRET" default:"e2e-secret"`
	// E2E_DEBUG_JSON dumps full request/response bodies for troubleshooting.
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
