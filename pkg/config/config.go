package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"iotdef.xyz/agro-dashboard-service/pkg/api"
	"iotdef.xyz/agro-dashboard-service/pkg/db"
)

const EnvPrefix = "DASH"

const (
	keyBaseURL          = "api_base_url"
	keyPollInterval     = "poll_interval"
	keyRefreshIndicator = "refresh_indicator"
	keyRequestTimeout   = "request_timeout"
	keyHttpHostPort     = "http_host_port"
	keyGrpcHostPort     = "grpc_host_port"
	keyDBType           = "db_type"
	keyDbPath           = "db_path"
	keyFetchRate        = "fetch_rate"
	keyFetchBurst       = "fetch_burst"
	keyRefreshRate      = "refresh_rate"
	keyRefreshBurst     = "refresh_burst"
)

type Config struct {
	BaseURL          string        `mapstructure:"api_base_url"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	RefreshIndicator time.Duration `mapstructure:"refresh_indicator"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`

	HttpHostPort string `mapstructure:"http_host_port"`
	GrpcHostPort string `mapstructure:"grpc_host_port"`

	DBType string `mapstructure:"db_type"`
	DbPath string `mapstructure:"db_path"`

	// FetchRate is requests per second per backend endpoint; 0 disables
	// the outbound throttle.
	FetchRate  float64 `mapstructure:"fetch_rate"`
	FetchBurst int     `mapstructure:"fetch_burst"`

	RefreshRate  float64 `mapstructure:"refresh_rate"`
	RefreshBurst int     `mapstructure:"refresh_burst"`
}

var configSchema = z.Struct(z.Shape{
	"BaseURL":      z.String().URL().Required(),
	"HttpHostPort": z.String().Required(),
	"DBType":       z.String().OneOf([]string{db.TypeMemory, db.TypeFile}),
	"FetchRate":    z.Float64().GTE(0),
	"FetchBurst":   z.Int().GTE(0),
	"RefreshRate":  z.Float64().GTE(0),
	"RefreshBurst": z.Int().GTE(1),
})

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyBaseURL, api.DefaultBaseURL)
	v.SetDefault(keyPollInterval, 10*time.Second)
	v.SetDefault(keyRefreshIndicator, 500*time.Millisecond)
	v.SetDefault(keyRequestTimeout, 15*time.Second)
	v.SetDefault(keyHttpHostPort, ":1080")
	v.SetDefault(keyGrpcHostPort, "")
	v.SetDefault(keyDBType, db.TypeMemory)
	v.SetDefault(keyDbPath, "")
	v.SetDefault(keyFetchRate, 0.0)
	v.SetDefault(keyFetchBurst, 0)
	v.SetDefault(keyRefreshRate, 1.0)
	v.SetDefault(keyRefreshBurst, 3)
}

// Load reads the given .env files (".env" when none are given) into the
// process environment, then binds every DASH_* variable over the defaults.
// Missing .env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if errs := configSchema.Validate(c); errs != nil {
		return fmt.Errorf("invalid config: %v", errs)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("invalid config: %s_%s must be positive", EnvPrefix, strings.ToUpper(keyPollInterval))
	}
	if c.RefreshIndicator < 0 || c.RequestTimeout < 0 {
		return errors.New("invalid config: durations must not be negative")
	}
	return nil
}

// FetchLimiter is nil when the outbound throttle is disabled.
func (c *Config) FetchLimiter() *api.RateLimiterStore {
	if c.FetchRate <= 0 {
		return nil
	}
	return api.NewRateLimiterStore(rate.Limit(c.FetchRate), max(c.FetchBurst, 1))
}

func (c *Config) RefreshLimiter() *api.RateLimiterStore {
	if c.RefreshRate <= 0 {
		return nil
	}
	return api.NewRateLimiterStore(rate.Limit(c.RefreshRate), c.RefreshBurst)
}
