package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EventsModeInline = "inline"
	EventsModeKafka  = "kafka"
)

type (
	Tasks struct {
		DeliveryStatsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill per caller
		RateLimiterBurst int           // middleware rate limiter capacity per caller
		PprofEnabled     bool
		PprofPort        string
	}

	Log struct {
		Level string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	// Redis пустой Addr отключает поддержку Idempotency-Key.
	Redis struct {
		Addr           string
		Password       string
		DB             int
		IdempotencyTTL time.Duration
	}

	Events struct {
		Mode            string
		DispatchTimeout time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		DeliveryEvent DeliveryEvent
	}

	DeliveryEvent struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Log      Log
		Database Database
		Redis    Redis
		Events   Events
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker - конфиг процесса-консьюмера: HTTP сервер и задачи ему не нужны, kafka обязательна.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	if err := validateKafka(&cfg.Kafka); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase - конфиг для cmd/migrate, остальные секции не читаются.
func LoadDatabase() (*Database, error) {
	cfg := &Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}

	if err := validateDatabase(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	statsInterval, err := osGetEnvDuration("BACKGROUND_DELIVERY_STATS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	deliveryEventTimeout, err := osGetEnvDuration("KAFKA_HANDLER_DELIVERY_EVENT_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	idempotencyTTL, err := osGetEnvDuration("IDEMPOTENCY_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if idempotencyTTL == 0 {
		idempotencyTTL = 24 * time.Hour
	}

	dispatchTimeout, err := osGetEnvDuration("EVENTS_DISPATCH_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if dispatchTimeout == 0 {
		dispatchTimeout = 5 * time.Second
	}

	eventsMode := os.Getenv("EVENTS_MODE")
	if eventsMode == "" {
		eventsMode = EventsModeInline
	}

	return &Config{
		Tasks: Tasks{
			DeliveryStatsInterval: statsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:           os.Getenv("REDIS_ADDR"),
			Password:       os.Getenv("REDIS_PASSWORD"),
			DB:             redisDB,
			IdempotencyTTL: idempotencyTTL,
		},
		Events: Events{
			Mode:            eventsMode,
			DispatchTimeout: dispatchTimeout,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				DeliveryEvent: DeliveryEvent{
					ProcessTimeout: deliveryEventTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Tasks.DeliveryStatsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DELIVERY_STATS_INTERVAL is required")
	}

	switch cfg.Events.Mode {
	case EventsModeInline:
	case EventsModeKafka:
		if err := validateKafka(&cfg.Kafka); err != nil {
			return fmt.Errorf("EVENTS_MODE=kafka: %w", err)
		}
	default:
		return fmt.Errorf("EVENTS_MODE must be %q or %q, got %q", EventsModeInline, EventsModeKafka, cfg.Events.Mode)
	}

	return nil
}

func validateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateKafka(cfg *Kafka) error {
	if cfg.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Handlers.DeliveryEvent.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_DELIVERY_EVENT_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
