package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
)

// EnvConfigPath переменная окружения с путем к TOML-конфигу
const EnvConfigPath = "CONFIG_PATH"

// DefaultPath путь к конфигу по умолчанию
const DefaultPath = "config.toml"

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Tracing  TracingConfig  `toml:"tracing"`
	Workflow WorkflowConfig `toml:"workflow"`
	Services ServicesConfig `toml:"services"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`

	CORSOrigins []string `toml:"cors_origins" validate:"dive,url"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
}

type TracingConfig struct {
	Enabled     bool `toml:"enabled"`
	PrettyPrint bool `toml:"pretty_print"`
}

// WorkflowConfig параметры workflow бронирования
type WorkflowConfig struct {
	FeedbackWindowSeconds int    `toml:"feedback_window_seconds" validate:"min=1"`
	CheckOutTime          string `toml:"check_out_time" validate:"datetime=15:04:05"`
	SessionTTLMinutes     int    `toml:"session_ttl_minutes" validate:"min=1"`
	SweepInterval         string `toml:"sweep_interval" validate:"required"` // "@every 1m"
}

// FeedbackWindow окно показа сообщений об успехе/ошибке
func (w WorkflowConfig) FeedbackWindow() time.Duration {
	return time.Duration(w.FeedbackWindowSeconds) * time.Second
}

// SessionTTL время бездействия, после которого сессия закрывается
func (w WorkflowConfig) SessionTTL() time.Duration {
	return time.Duration(w.SessionTTLMinutes) * time.Minute
}

// ServiceConfig адрес и таймаут backend-сервиса
type ServiceConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Timeout int    `toml:"timeout" validate:"min=1"` // секунды
}

// TimeoutDuration таймаут в виде time.Duration
func (s ServiceConfig) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// ServicesConfig backend-сервисы платформы
type ServicesConfig struct {
	Auth          ServiceConfig `toml:"auth"`
	Accommodation ServiceConfig `toml:"accommodation"`
	Profile       ServiceConfig `toml:"profile"`
	Reservation   ServiceConfig `toml:"reservation"`
	Rating        ServiceConfig `toml:"rating"`
	Notification  ServiceConfig `toml:"notification"`
}

// Endpoints базовые адреса сервисов по имени (для браузерного приложения)
func (s ServicesConfig) Endpoints() map[string]string {
	return map[string]string{
		"auth":          s.Auth.URL,
		"accommodation": s.Accommodation.URL,
		"profile":       s.Profile.URL,
		"reservation":   s.Reservation.URL,
		"rating":        s.Rating.URL,
		"notification":  s.Notification.URL,
	}
}

// Default конфигурация с локальными адресами сервисов
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8090,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			CORSOrigins:     []string{"http://localhost:4200"},
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "reservation-client",
			Path:        "/metrics",
		},
		Workflow: WorkflowConfig{
			FeedbackWindowSeconds: int(domain.DefaultFeedbackWindow / time.Second),
			CheckOutTime:          domain.DefaultCheckOutTime,
			SessionTTLMinutes:     30,
			SweepInterval:         "@every 1m",
		},
		Services: ServicesConfig{
			Auth:          ServiceConfig{URL: "https://localhost:8080/api", Timeout: 5},
			Reservation:   ServiceConfig{URL: "https://localhost:8082/api", Timeout: 5},
			Accommodation: ServiceConfig{URL: "https://localhost:8083/api", Timeout: 5},
			Profile:       ServiceConfig{URL: "https://localhost:8084/api", Timeout: 5},
			Rating:        ServiceConfig{URL: "https://localhost:8085/api", Timeout: 5},
			Notification:  ServiceConfig{URL: "https://localhost:8086/api", Timeout: 5},
		},
	}
}

// Load читает .env (если есть), затем TOML-файл поверх значений по умолчанию.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфиг из строки поверх значений по умолчанию
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
