package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BaseURL  string `envconfig:"E2E_BASE_URL" default:"http://localhost:8080"`
	Username string `envconfig:"E2E_USERNAME" default:"Juanito"`
	Password string `envconfig:"E2E_PASSWORD" default:"carrito123"`
	// E2E_DEBUG_JSON allows dumping full HTTP request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
