package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"salesreport-srv/config"
	"salesreport-srv/pkg/currency"
	"salesreport-srv/pkg/kafka"
	"salesreport-srv/pkg/log"
	"salesreport-srv/pkg/minio"
	"salesreport-srv/pkg/ollama"
	pkgRedis "salesreport-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Storage Configuration
	minioClient minio.MinIO

	// External Clients
	ollamaClient   ollama.IOllama
	currencyClient currency.ICurrency
	producer       kafka.IProducer // nil when event publishing is disabled

	config *config.Config
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Storage Configuration
	MinIO minio.MinIO

	// External Clients
	Ollama   ollama.IOllama
	Currency currency.ICurrency
	Producer kafka.IProducer

	Config *config.Config
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Storage Configuration
		minioClient: cfg.MinIO,

		// External Clients
		ollamaClient:   cfg.Ollama,
		currencyClient: cfg.Currency,
		producer:       cfg.Producer,

		config: cfg.Config,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.ollamaClient == nil {
		return errors.New("ollamaClient is required")
	}
	if srv.currencyClient == nil {
		return errors.New("currencyClient is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// producer is optional: nil disables event publishing

	return nil
}
