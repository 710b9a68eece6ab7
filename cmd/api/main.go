package main

import (
	"context"
	"fmt"

	"salesreport-srv/config"
	configKafka "salesreport-srv/config/kafka"
	configMinio "salesreport-srv/config/minio"
	configPostgre "salesreport-srv/config/postgre"
	configRedis "salesreport-srv/config/redis"
	_ "salesreport-srv/docs" // Import swagger docs
	"salesreport-srv/internal/httpserver"
	"salesreport-srv/pkg/currency"
	"salesreport-srv/pkg/log"
	"salesreport-srv/pkg/ollama"
)

// @title       Sales Report Service API
// @description Upload CSV sales data, extract products with an AI agent and produce consolidated EUR reports.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize PostgreSQL and run migrations
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if err := configPostgre.Migrate(postgresDB); err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		return
	}
	logger.Info(ctx, "Database migrations applied")

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize MinIO and ensure the upload bucket exists
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)

	// 6. Initialize Kafka producer (optional)
	producer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Kafka: ", err)
		return
	}
	if producer != nil {
		defer producer.Close()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		logger.Info(ctx, "Kafka not configured, job events disabled")
	}

	// 7. Initialize the extraction model client
	ollamaClient, err := ollama.NewOllama(ollama.OllamaConfig{
		BaseURL: cfg.Ollama.BaseURL,
		Model:   cfg.Ollama.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Ollama client: ", err)
		return
	}
	logger.Infof(ctx, "Ollama client initialized (model %s)", cfg.Ollama.Model)

	// 8. Initialize the exchange-rate client
	currencyClient, err := currency.NewCurrency(currency.CurrencyConfig{
		BaseURL: cfg.Currency.BaseURL,
		APIKey:  cfg.Currency.APIKey,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize currency client: ", err)
		return
	}

	// 9. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Storage Configuration
		MinIO: minioClient,

		// External Clients
		Ollama:   ollamaClient,
		Currency: currencyClient,
		Producer: producer,

		Config: cfg,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
