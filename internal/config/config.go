package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	defaultServiceTimeout = 3 * time.Second
)

type Config struct {
	RunAddress     string        `env:"RUN_ADDRESS"`
	DatabaseDSN    string        `env:"DATABASE_URI"`
	MigrationsDir  string        `env:"MIGRATIONS_DIR"`
	JWTUserSecret  string        `env:"JWT_SECRET"`
	PlansFile      string        `env:"PLANS_FILE"`
	StorageDriver  string        `env:"STORAGE_DRIVER"`
	ServiceTimeout time.Duration `env:"SERVICE_TIMEOUT"`
	AdminLogin     string        `env:"ADMIN_LOGIN"`
	AdminPassword  string        `env:"ADMIN_PASSWORD"`
}

// String не выводит секреты, используется при логировании конфига на старте.
func (c Config) String() string {
	return fmt.Sprintf(
		"{RunAddress:%s StorageDriver:%s MigrationsDir:%s PlansFile:%s ServiceTimeout:%s AdminLogin:%s}",
		c.RunAddress, c.StorageDriver, c.MigrationsDir, c.PlansFile, c.ServiceTimeout, c.AdminLogin,
	)
}

// LoadConfig собирает конфиг из .env файла (если есть), переменных окружения и флагов командной строки.
// Переменные окружения имеют приоритет, флаги задают значения по умолчанию.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}
	return Load(os.Args[1:])
}

// Load собирает конфиг из окружения и аргументов args.
func Load(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DatabaseDSN == "" {
			return errors.New("database DSN is not set")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.JWTUserSecret == "" {
		return errors.New("jwt secret is not set")
	}
	if c.ServiceTimeout <= 0 {
		return errors.New("service timeout must be positive")
	}
	if (c.AdminLogin == "") != (c.AdminPassword == "") {
		return errors.New("admin login and password must be set together")
	}
	return nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fl := flag.NewFlagSet("wallet", flag.ContinueOnError)
	fl.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fl.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fl.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fl.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT signing secret")
	fl.StringVar(&flagConfig.PlansFile, "p", "", "YAML file with investment plans, built-in plans if empty")
	fl.StringVar(&flagConfig.StorageDriver, "s", StorageDriverPostgres, "Storage driver: postgres or memory")
	fl.DurationVar(&flagConfig.ServiceTimeout, "t", defaultServiceTimeout, "Deadline of a single service call")

	return fl.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	timeout := envConfig.ServiceTimeout
	if timeout == 0 {
		timeout = flagsConfig.ServiceTimeout
	}
	return &Config{
		RunAddress:     defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:    defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:  defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:  defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		PlansFile:      defaultIfBlank(envConfig.PlansFile, flagsConfig.PlansFile),
		StorageDriver:  defaultIfBlank(envConfig.StorageDriver, flagsConfig.StorageDriver),
		ServiceTimeout: timeout,
		AdminLogin:     envConfig.AdminLogin,
		AdminPassword:  envConfig.AdminPassword,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
