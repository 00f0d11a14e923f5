package config

import (
	"os"
	"strings"

	"codeberg.org/mutker/motormon/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const DefaultLogLevel = "info"

// Gains holds the per-channel convergence gains of the drift simulation.
// Temperature uses a lower gain so it lags the vibration channels.
type Gains struct {
	RMS      float64 `mapstructure:"rms"`
	Kurtosis float64 `mapstructure:"kurtosis"`
	Temp     float64 `mapstructure:"temp"`
	FanSpeed float64 `mapstructure:"fan_speed"`
}

// Noise holds the per-channel symmetric noise half-ranges.
type Noise struct {
	RMS      float64 `mapstructure:"rms"`
	Kurtosis float64 `mapstructure:"kurtosis"`
	Temp     float64 `mapstructure:"temp"`
	FanSpeed float64 `mapstructure:"fan_speed"`
}

// Upload holds the cloud uplink settings.
type Upload struct {
	URL      string `mapstructure:"url"`
	APIKey   string `mapstructure:"api_key"`
	Interval int    `mapstructure:"interval"`
}

type Config struct {
	Listen           string  `mapstructure:"listen"`
	Interval         int     `mapstructure:"interval"`
	LogLevel         string  `mapstructure:"log_level"`
	Telemetry        bool    `mapstructure:"telemetry"`
	TelemetryDB      string  `mapstructure:"database"`
	Model            string  `mapstructure:"model"`
	Seed             int64   `mapstructure:"seed"`
	BootDuration     float64 `mapstructure:"boot_duration"`
	DwellInterval    float64 `mapstructure:"dwell_interval"`
	FaultProbability float64 `mapstructure:"fault_probability"`
	Gain             Gains   `mapstructure:"gain"`
	Noise            Noise   `mapstructure:"noise"`
	Upload           Upload  `mapstructure:"upload"`
}

// Load reads configuration from file, environment and the given flag set,
// in increasing order of precedence. Pass nil when no command-line
// overrides apply.
func Load(flags *pflag.FlagSet) (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	setDefaults(v)

	if path := os.Getenv("MOTORMON_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("motormon")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MOTORMON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err).
				WithMessage("Failed to read config file")
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	errFactory := errors.New()

	for key, flagName := range map[string]string{
		"listen":    "listen",
		"interval":  "interval",
		"log_level": "log-level",
		"telemetry": "telemetry",
		"database":  "database",
		"model":     "model",
		"seed":      "seed",
	} {
		f := flags.Lookup(flagName)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	return nil
}

// Validate checks all simulation parameters and fails fast on the first
// malformed value. Runtime anomalies never abort; configuration errors do.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Interval <= 0 {
		return errFactory.WithData(ErrInvalidInterval, c.Interval)
	}
	if c.BootDuration <= 0 {
		return errFactory.WithData(ErrInvalidBoot, c.BootDuration)
	}
	if c.DwellInterval <= 0 {
		return errFactory.WithData(ErrInvalidDwell, c.DwellInterval)
	}
	if c.FaultProbability < 0 || c.FaultProbability > 1 {
		return errFactory.WithData(ErrInvalidProbability, c.FaultProbability)
	}
	for _, gain := range []float64{c.Gain.RMS, c.Gain.Kurtosis, c.Gain.Temp, c.Gain.FanSpeed} {
		if gain <= 0 || gain > 1 {
			return errFactory.WithData(ErrInvalidGain, gain)
		}
	}
	for _, noise := range []float64{c.Noise.RMS, c.Noise.Kurtosis, c.Noise.Temp, c.Noise.FanSpeed} {
		if noise < 0 {
			return errFactory.WithData(ErrInvalidNoise, noise)
		}
	}
	if c.Telemetry && c.TelemetryDB == "" {
		return errFactory.New(ErrInvalidDBPath)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", ":8080")
	v.SetDefault("interval", 2)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("telemetry", false)
	v.SetDefault("database", "/var/lib/motormon/telemetry.db")
	v.SetDefault("model", "")
	v.SetDefault("seed", 0)
	v.SetDefault("boot_duration", 10.0)
	v.SetDefault("dwell_interval", 60.0)
	v.SetDefault("fault_probability", 0.30)
	v.SetDefault("gain.rms", 0.05)
	v.SetDefault("gain.kurtosis", 0.05)
	v.SetDefault("gain.temp", 0.02)
	v.SetDefault("gain.fan_speed", 0.05)
	v.SetDefault("noise.rms", 0.005)
	v.SetDefault("noise.kurtosis", 0.1)
	v.SetDefault("noise.temp", 0.1)
	v.SetDefault("noise.fan_speed", 5.0)
	v.SetDefault("upload.url", "https://api.thingspeak.com/update")
	v.SetDefault("upload.api_key", "")
	v.SetDefault("upload.interval", 16)
}
