package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full server configuration. Everything that varies between
// deployments lives here; nothing reads viper after startup.
type Config struct {
	Addr string `mapstructure:"addr"`
	DB   DB     `mapstructure:"db"`
	Log  Log    `mapstructure:"log"`
	Auth Auth   `mapstructure:"auth"`
}

type DB struct {
	Driver string `mapstructure:"driver"` // sqlite|postgres|mysql
	DSN    string `mapstructure:"dsn"`
}

type Log struct {
	Level      string `mapstructure:"level"`  // debug|info|warn|error
	Format     string `mapstructure:"format"` // console|json
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type Auth struct {
	Secret    string `mapstructure:"secret"`
	TokenTTL  int    `mapstructure:"token_ttl_minutes"`
	Algorithm string `mapstructure:"algorithm"`
}

// TTL returns the token lifetime as a duration.
func (a Auth) TTL() time.Duration { return time.Duration(a.TokenTTL) * time.Minute }

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "gamestore.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
	// registered with an empty default so the env override is visible to Unmarshal
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl_minutes", 30)
	v.SetDefault("auth.algorithm", "HS256")
}

// Load reads the optional config file and the GAMESTORE_ environment,
// validates the result and returns a typed Config.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("GAMESTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("db.driver %q not supported", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("db.dsn required")
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth.secret required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl_minutes must be positive")
	}
	if !strings.HasPrefix(strings.ToUpper(c.Auth.Algorithm), "HS") {
		return fmt.Errorf("auth.algorithm %q not supported, HMAC only", c.Auth.Algorithm)
	}
	return nil
}
