package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type backend struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	ReadinessAttempts int           `mapstructure:"readiness_attempts"`
}

type classifier struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type Config struct {
	LogLevel   slog.Level `mapstructure:"log_level"`
	StatePath  string     `mapstructure:"state_path"`
	Backend    backend    `mapstructure:"backend"`
	Classifier classifier `mapstructure:"classifier"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	StatePath=%q

	Backend:
	BaseURL=%q
	Timeout=%q
	ReadinessAttempts=%d

	Classifier:
	Endpoint=%q
	Timeout=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.StatePath,
		c.Backend.BaseURL,
		c.Backend.Timeout,
		c.Backend.ReadinessAttempts,
		c.Classifier.Endpoint,
		c.Classifier.Timeout,
	)
}
