package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	StorageLocal    = "local"
	StorageSupabase = "supabase"
)

type Config struct {
	Env            string        `env:"APP_ENV,default=development"`
	ServerAddress  string        `env:"SERVER_ADDRESS,default=0.0.0.0:8080"`
	PostgresConn   string        `env:"POSTGRES_CONN,required"`
	CORSOrigins    []string      `env:"CORS_ALLOWED_ORIGINS,default=*"`
	ShutdownPeriod time.Duration `env:"SHUTDOWN_TIMEOUT,default=30s"`
	MigrateOnStart bool          `env:"MIGRATE_ON_START,default=true"`

	JWT     JWT
	Log     Log
	Storage Storage
}

type JWT struct {
	Secret string        `env:"JWT_SECRET,required"`
	Expiry time.Duration `env:"JWT_EXPIRY,default=168h"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=json"`
}

type Storage struct {
	Driver         string `env:"STORAGE_DRIVER,default=local"`
	LocalDir       string `env:"STORAGE_LOCAL_DIR,default=./uploads"`
	PublicURL      string `env:"STORAGE_PUBLIC_URL,default=http://localhost:8080/uploads"`
	SupabaseURL    string `env:"SUPABASE_URL"`
	SupabaseKey    string `env:"SUPABASE_SERVICE_KEY"`
	SupabaseBucket string `env:"STORAGE_BUCKET,default=company-logos"`
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads envFile (or ./.env when empty and present) into the process
// environment, then decodes the configuration from it. Variables already set
// in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageLocal:
	case StorageSupabase:
		if c.Storage.SupabaseURL == "" || c.Storage.SupabaseKey == "" {
			return errors.New("STORAGE_DRIVER=supabase needs SUPABASE_URL and SUPABASE_SERVICE_KEY")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("unknown LOG_FORMAT %q", c.Log.Format)
	}

	return nil
}
