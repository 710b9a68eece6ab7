package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Jobs, report rows, regional data
	Postgres PostgresConfig

	// Redis - Job log stream
	Redis RedisConfig

	// MinIO - Uploaded CSV storage
	MinIO MinIOConfig

	// Kafka - Job lifecycle events (optional)
	Kafka KafkaConfig

	// Ollama - Extraction agent model
	Ollama OllamaConfig

	// Currency - Exchange rate provider
	Currency CurrencyConfig

	// Pipeline - Processing budgets and retry policy
	Pipeline PipelineConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host            string
	Port            int
	Mode            string
	ShutdownTimeout int // drain window on SIGINT/SIGTERM, in seconds
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// KafkaConfig is the configuration for Kafka. Leaving Brokers empty disables
// event publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// OllamaConfig is the configuration for the Ollama-backed extraction agent.
type OllamaConfig struct {
	BaseURL string
	Model   string
}

// CurrencyConfig is the configuration for the exchange-rate provider.
type CurrencyConfig struct {
	BaseURL string
	APIKey  string
}

// PipelineConfig bounds the external calls a processing run may make.
type PipelineConfig struct {
	JobTimeout    int // overall budget per job, in seconds
	LookupTimeout int // per store query, in seconds
	RateTimeout   int // rate fetch, in seconds
	AgentRetries  int // extra attempts after the first agent call
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("salesreport-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/salesreport/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetInt("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Ollama
	cfg.Ollama.BaseURL = viper.GetString("ollama.base_url")
	cfg.Ollama.Model = viper.GetString("ollama.model")

	// Currency
	cfg.Currency.BaseURL = viper.GetString("currency.base_url")
	cfg.Currency.APIKey = viper.GetString("currency.api_key")

	// Pipeline
	cfg.Pipeline.JobTimeout = viper.GetInt("pipeline.job_timeout")
	cfg.Pipeline.LookupTimeout = viper.GetInt("pipeline.lookup_timeout")
	cfg.Pipeline.RateTimeout = viper.GetInt("pipeline.rate_timeout")
	cfg.Pipeline.AgentRetries = viper.GetInt("pipeline.agent_retries")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", 15)

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "salesreport")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// MinIO (bucket holds raw CSV uploads)
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "salesreport-uploads")

	// Kafka
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "salesreport.jobs")

	// Ollama
	viper.SetDefault("ollama.base_url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3.2")

	// Currency (freecurrencyapi-compatible endpoint)
	viper.SetDefault("currency.base_url", "https://api.freecurrencyapi.com")

	// Pipeline
	viper.SetDefault("pipeline.job_timeout", 600)
	viper.SetDefault("pipeline.lookup_timeout", 10)
	viper.SetDefault("pipeline.rate_timeout", 10)
	viper.SetDefault("pipeline.agent_retries", 2)
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	if cfg.Ollama.BaseURL == "" {
		return fmt.Errorf("ollama.base_url is required")
	}

	if cfg.Currency.BaseURL == "" {
		return fmt.Errorf("currency.base_url is required")
	}
	if cfg.Currency.APIKey == "" {
		return fmt.Errorf("currency.api_key is required")
	}

	if cfg.Pipeline.JobTimeout <= 0 {
		return fmt.Errorf("pipeline.job_timeout must be greater than 0")
	}
	if cfg.Pipeline.LookupTimeout <= 0 {
		return fmt.Errorf("pipeline.lookup_timeout must be greater than 0")
	}
	if cfg.Pipeline.RateTimeout <= 0 {
		return fmt.Errorf("pipeline.rate_timeout must be greater than 0")
	}
	if cfg.Pipeline.AgentRetries < 0 {
		return fmt.Errorf("pipeline.agent_retries must not be negative")
	}
	if cfg.HTTPServer.ShutdownTimeout <= 0 {
		return fmt.Errorf("http_server.shutdown_timeout must be greater than 0")
	}

	return nil
}
