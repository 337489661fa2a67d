package app

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/aussiebroadwan/pairing/pkg/jwtx"
	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultConfigFile is read from the working directory when neither --config
// nor CONFIG_PATH names a file.
const DefaultConfigFile = "pairing.yaml"

type Config struct {
	Env                  string        `yaml:"env" env:"ENV" env-default:"dev"`                                     // dev, staging, prod
	LogLevel             string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`                        // debug, info, warn, error
	LogFormat            string        `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`                      // json, text
	Port                 int           `yaml:"port" env:"PORT" env-default:"8080"`                                  // HTTP server port
	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period" env:"SHUTDOWN_GRACE_PERIOD" env-default:"10s"` // graceful shutdown timeout
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval" env:"HOUSEKEEPING_INTERVAL" env-default:"1m"`  // expiry sweep interval

	StoreDriver  string `yaml:"store_driver" env:"STORE_DRIVER" env-default:"sqlite"` // sqlite, postgres
	DatabaseFile string `yaml:"database_file" env:"DATABASE_FILE" env-default:"pairing.db"`
	DatabaseURL  string `yaml:"database_url" env:"DATABASE_URL"` // required for postgres

	CodeTTL        time.Duration `yaml:"code_ttl" env:"PAIRING_CODE_TTL" env-default:"5m"`
	SessionTTL     time.Duration `yaml:"session_ttl" env:"PAIRING_SESSION_TTL" env-default:"24h"`
	ClaimCacheSize int           `yaml:"claim_cache_size" env:"PAIRING_CLAIM_CACHE_SIZE" env-default:"4096"` // 0 disables the cache

	Issuer      string        `yaml:"auth_issuer" env:"AUTH_ISSUER"`
	Audience    []string      `yaml:"auth_audience" env:"AUTH_AUDIENCE" env-separator:","`
	Algorithm   string        `yaml:"auth_algorithm" env:"AUTH_ALGORITHM"` // empty accepts EdDSA, ES256 and RS256
	JWKSURL     string        `yaml:"auth_jwks_url" env:"AUTH_JWKS_URL"`   // empty only in dev: an ephemeral key is generated
	JWKSRefresh time.Duration `yaml:"auth_jwks_refresh" env:"AUTH_JWKS_REFRESH" env-default:"15m"`
}

// Load reads the configuration from, in order of preference, the explicit
// path, CONFIG_PATH, ./pairing.yaml, or the environment alone. Environment
// variables always override values read from a file.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}

	if path != "" {
		// ReadConfig overlays the environment after parsing the file.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case "sqlite":
		if c.DatabaseFile == "" {
			return errors.New("config: DATABASE_FILE is required for the sqlite driver")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	if c.CodeTTL <= 0 || c.SessionTTL <= 0 {
		return errors.New("config: PAIRING_CODE_TTL and PAIRING_SESSION_TTL must be positive")
	}
	if c.Algorithm != "" && !slices.Contains(jwtx.DefaultAlgorithms, c.Algorithm) {
		return fmt.Errorf("config: unsupported AUTH_ALGORITHM %q", c.Algorithm)
	}
	if c.JWKSURL == "" && !c.IsDev() {
		return errors.New("config: AUTH_JWKS_URL is required outside dev")
	}
	if c.JWKSURL != "" && c.JWKSRefresh < time.Second {
		return errors.New("config: AUTH_JWKS_REFRESH must be at least 1s")
	}

	return nil
}

func (c Config) IsDev() bool {
	return c.Env == "dev"
}
