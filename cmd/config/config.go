package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	_envPrefix  = "sensor_simulator"
	_configName = "simulator"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type AppConfig struct {
	General   GeneralConfig
	API       APIConfig
	Sensor    SensorConfig
	Run       RunConfig
	Telemetry TelemetryConfig
	Sandbox   SandboxConfig
}

type GeneralConfig struct {
	LogLevel string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SensorConfig keeps overrides as pointers: nil means the value was not
// provided by any source and the sensor type default applies.
type SensorConfig struct {
	Name      string
	Type      string
	Location  string
	BaseValue *float64
	Variance  *float64
}

type RunConfig struct {
	Interval    time.Duration
	Duration    time.Duration
	UseExisting bool
}

type TelemetryConfig struct {
	Enabled  bool
	Endpoint string
}

type SandboxConfig struct {
	Addr               string
	DSN                string
	InactivitySchedule string
	CheckInterval      time.Duration
	RedisAddr          string
	CacheTTL           time.Duration
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":    "general.log_level",
	"url":          "api.base_url",
	"timeout":      "api.timeout",
	"name":         "sensor.name",
	"type":         "sensor.type",
	"location":     "sensor.location",
	"base-value":   "sensor.base_value",
	"variance":     "sensor.variance",
	"interval":     "run.interval",
	"duration":     "run.duration",
	"use-existing": "run.use_existing",
	"metrics":      "telemetry.enabled",
	"addr":         "sandbox.addr",
	"dsn":          "sandbox.dsn",
	"redis-addr":   "sandbox.redis_addr",
}

// SimulatorFlags declares the command line of the simulator driver.
func SimulatorFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("simulator", pflag.ContinueOnError)
	flags.String("config", "", "Path to a YAML configuration file")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("url", "http://localhost:3000", "API base URL")
	flags.Duration("timeout", 10*time.Second, "Per request timeout against the API")
	flags.String("name", "", "Sensor name (default: auto-generated with timestamp)")
	flags.String("type", "Temperature", "Sensor type (Temperature, Humidity, Pressure, Light)")
	flags.String("location", "Simulation Lab", "Sensor location")
	flags.Int("interval", 10, "Seconds between readings")
	flags.Int("duration", 0, "Total duration in seconds (default: run indefinitely)")
	flags.Float64("base-value", 0, "Base sensor value (default: depends on the sensor type)")
	flags.Float64("variance", 0, "Value variance range (default: depends on the sensor type)")
	flags.Bool("use-existing", false, "Use existing sensor instead of registering new one")
	flags.Bool("metrics", false, "Export OpenTelemetry metrics over OTLP")
	return flags
}

// SandboxFlags declares the command line of the local collaborator API.
func SandboxFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("sandbox", pflag.ContinueOnError)
	flags.String("config", "", "Path to a YAML configuration file")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("addr", ":3000", "Listen address")
	flags.String("dsn", "", "PostgreSQL DSN (default: in-memory database)")
	flags.String("redis-addr", "", "Redis address for the sensor cache (default: in-process cache)")
	flags.Bool("metrics", false, "Export OpenTelemetry metrics over OTLP")
	return flags
}

// loadDotEnv loads .env files into the environment. A missing file is not an error.
func loadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// LoadConfig merges, from lowest to highest priority, defaults, the optional
// YAML file, the environment (.env included) and the parsed flags.
func LoadConfig(flags *pflag.FlagSet) (AppConfig, error) {
	if err := loadDotEnv(); err != nil {
		slog.Debug("ignoring .env file", slog.String("error", err.Error()))
	}

	v := viper.New()
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return AppConfig{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := readConfigFile(v, flags); err != nil {
		return AppConfig{}, err
	}

	cfg := AppConfig{
		General: GeneralConfig{
			LogLevel: strings.ToLower(v.GetString("general.log_level")),
		},
		API: APIConfig{
			BaseURL: v.GetString("api.base_url"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Sensor: SensorConfig{
			Name:      v.GetString("sensor.name"),
			Type:      v.GetString("sensor.type"),
			Location:  v.GetString("sensor.location"),
			BaseValue: optionalFloat(v, "sensor.base_value"),
			Variance:  optionalFloat(v, "sensor.variance"),
		},
		Run: RunConfig{
			Interval:    time.Duration(v.GetInt("run.interval")) * time.Second,
			Duration:    time.Duration(v.GetInt("run.duration")) * time.Second,
			UseExisting: v.GetBool("run.use_existing"),
		},
		Telemetry: TelemetryConfig{
			Enabled:  v.GetBool("telemetry.enabled"),
			Endpoint: v.GetString("telemetry.endpoint"),
		},
		Sandbox: SandboxConfig{
			Addr:               v.GetString("sandbox.addr"),
			DSN:                v.GetString("sandbox.dsn"),
			InactivitySchedule: v.GetString("sandbox.inactivity_schedule"),
			CheckInterval:      v.GetDuration("sandbox.check_interval"),
			RedisAddr:          v.GetString("sandbox.redis_addr"),
			CacheTTL:           v.GetDuration("sandbox.cache_ttl"),
		},
	}

	if err := cfg.validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("api.base_url", "http://localhost:3000")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("sensor.type", "Temperature")
	v.SetDefault("sensor.location", "Simulation Lab")
	v.SetDefault("run.interval", 10)
	v.SetDefault("run.duration", 0)
	v.SetDefault("run.use_existing", false)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4317")
	v.SetDefault("sandbox.addr", ":3000")
	v.SetDefault("sandbox.inactivity_schedule", "*/10 * * * *")
	v.SetDefault("sandbox.check_interval", "1m")
	v.SetDefault("sandbox.cache_ttl", "30s")
}

func readConfigFile(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags != nil {
		if path, err := flags.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config file %s: %w", path, err)
			}
			return nil
		}
	}

	v.SetConfigName(_configName)
	v.AddConfigPath("config")
	v.AddConfigPath("/config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	return nil
}

// optionalFloat distinguishes "not provided" from an explicit zero.
func optionalFloat(v *viper.Viper, key string) *float64 {
	if !v.IsSet(key) {
		return nil
	}
	value := v.GetFloat64(key)
	return &value
}

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func (c AppConfig) validate() error {
	if !knownLogLevels[c.General.LogLevel] {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.General.LogLevel)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("%w: api base url is required", ErrInvalidConfig)
	}
	if c.Run.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidConfig)
	}
	if c.Run.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidConfig)
	}
	if c.Sensor.Type == "" {
		return fmt.Errorf("%w: sensor type is required", ErrInvalidConfig)
	}
	if c.Sandbox.CheckInterval <= 0 {
		return fmt.Errorf("%w: sandbox check interval must be positive", ErrInvalidConfig)
	}
	return nil
}
