package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	dirFlag       = "dir"
	configFlag    = "config"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

// Config is the command configuration.
type Config struct {
	Dir       string `mapstructure:"dir"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

func addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(dirFlag, "wager-data", "the database directory")
	flags.String(configFlag, "", "an optional configuration file")
	flags.String(logLevelFlag, "info", "the log level (trace|debug|info|warn|error)")
	flags.String(logFormatFlag, "plain", "the log format (plain|json)")
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	// prepare viper
	v := viper.New()
	v.SetEnvPrefix("WAGER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// bind flags
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return Config{}, errors.Wrap(err, "bind flags")
	}

	// read config file
	if file := v.GetString(configFlag); file != "" {
		v.SetConfigFile(file)
		err = v.ReadInConfig()
		if err != nil {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	// decode config
	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}

	return cfg, nil
}

func newLogger(cfg Config, out io.Writer) (zerolog.Logger, error) {
	// parse level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	// select writer
	switch strings.ToLower(cfg.LogFormat) {
	case "plain":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	case "json":
	default:
		return zerolog.Logger{}, errors.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

func setup(cmd *cobra.Command) (Config, zerolog.Logger, error) {
	// load config
	cfg, err := loadConfig(cmd)
	if err != nil {
		return Config{}, zerolog.Logger{}, err
	}

	// create logger
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return Config{}, zerolog.Logger{}, err
	}

	return cfg, logger, nil
}
