package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Config is the runtime configuration of the API and the CLI.
//
// Sources, lowest precedence first: defaults, optional YAML file named by
// ROI_CONFIG_FILE, environment variables (including a .env file loaded by
// godotenv in main).
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	AWS     AWSConfig     `mapstructure:"aws"`
}

type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StorageConfig struct {
	Driver         string `mapstructure:"driver"`
	EstimatesTable string `mapstructure:"estimates_table"`
}

// AWSConfig targets DynamoDB. Local DynamoDB does not validate credentials,
// but the SDK requires them, hence the "local" defaults.
type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
}

// envBindings keeps the flat environment names used by the deployment
// manifests.
var envBindings = map[string]string{
	"server.port":             "PORT",
	"server.gin_mode":         "GIN_MODE",
	"log.level":               "LOG_LEVEL",
	"log.format":              "LOG_FORMAT",
	"storage.driver":          "STORAGE_DRIVER",
	"storage.estimates_table": "ESTIMATES_TABLE",
	"aws.region":              "AWS_REGION",
	"aws.access_key_id":       "AWS_ACCESS_KEY_ID",
	"aws.secret_access_key":   "AWS_SECRET_ACCESS_KEY",
	"aws.dynamodb_endpoint":   "DYNAMODB_ENDPOINT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("storage.driver", StorageDynamoDB)
	v.SetDefault("storage.estimates_table", "roi_estimates")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("aws.dynamodb_endpoint", "")
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path := strings.TrimSpace(os.Getenv("ROI_CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	switch c.Storage.Driver {
	case StorageDynamoDB, StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be %q or %q, got %q", StorageDynamoDB, StorageMemory, c.Storage.Driver))
	}
	if c.Storage.Driver == StorageDynamoDB && strings.TrimSpace(c.Storage.EstimatesTable) == "" {
		errs = append(errs, errors.New("storage.estimates_table is required for dynamodb storage"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}
