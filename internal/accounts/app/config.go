package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is populated from the environment. Every variable carries the
// DASHDOCS_ prefix so the service can share an environment with others.
type Config struct {
	Env       string `env:"DASHDOCS_ENV" envDefault:"dev"`
	LogLevel  string `env:"DASHDOCS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"DASHDOCS_LOG_FORMAT" envDefault:"json"`

	Port                int           `env:"DASHDOCS_PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"DASHDOCS_SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	DatabaseFile string `env:"DASHDOCS_DATABASE_FILE" envDefault:"accounts.db"`
	PepperFile   string `env:"DASHDOCS_PEPPER_FILE" envDefault:"pepper"`

	// SessionSecret signs session tokens. Required; losing it logs every
	// user out, leaking it lets anyone mint sessions.
	SessionSecret string        `env:"DASHDOCS_SESSION_SECRET"`
	SessionIssuer string        `env:"DASHDOCS_SESSION_ISSUER" envDefault:"dashdocs-accounts"`
	SessionTTL    time.Duration `env:"DASHDOCS_SESSION_TTL" envDefault:"168h"`

	// BootstrapToken gates the one-time /v1/bootstrap endpoint.
	BootstrapToken string `env:"DASHDOCS_BOOTSTRAP_TOKEN"`

	// BaseURL is the public origin of the web app, used to build
	// registration links in invitation emails.
	BaseURL string `env:"DASHDOCS_BASE_URL" envDefault:"http://localhost:3000"`

	InviteTTL            time.Duration `env:"DASHDOCS_INVITE_TTL" envDefault:"24h"`
	HousekeepingInterval time.Duration `env:"DASHDOCS_HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	// ResendAPIKey enables real email delivery. When empty, invitation
	// emails are written to the log instead.
	ResendAPIKey string `env:"DASHDOCS_RESEND_API_KEY"`
	EmailDomain  string `env:"DASHDOCS_EMAIL_DOMAIN" envDefault:"dashdocs.io"`
}

// LoadConfig reads the environment and validates the result.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("DASHDOCS_SESSION_SECRET is required")
	}
	return cfg, nil
}
