package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        DatabaseConfig    `toml:"database"`
	Logs            LogsConfig        `toml:"logs"`
	Metrics         MetricsConfig     `toml:"metrics"`
	Schedule        ScheduleConfig    `toml:"schedule"`
	CatalogService  IntegrationConfig `toml:"catalog_service"`
	CustomerService IntegrationConfig `toml:"customer_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig границы рабочего дня и шаг сетки слотов
// Вынесено в конфигурацию, чтобы границы были заданы ровно в одном месте
type ScheduleConfig struct {
	DayStart        string `toml:"day_start"`         // "08:00"
	DayEnd          string `toml:"day_end"`           // "20:00"
	SlotStepMinutes int    `toml:"slot_step_minutes"` // 30
}

// IntegrationConfig настройки внешнего HTTP сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "sbm-scheduling-service"
	}
	if c.Schedule.DayStart == "" {
		c.Schedule.DayStart = domain.DefaultDayStart
	}
	if c.Schedule.DayEnd == "" {
		c.Schedule.DayEnd = domain.DefaultDayEnd
	}
	if c.Schedule.SlotStepMinutes == 0 {
		c.Schedule.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if c.CatalogService.Timeout == 0 {
		c.CatalogService.Timeout = 5
	}
	if c.CustomerService.Timeout == 0 {
		c.CustomerService.Timeout = 5
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.CatalogService.URL == "" {
		return fmt.Errorf("config: catalog_service.url is required")
	}
	if c.CustomerService.URL == "" {
		return fmt.Errorf("config: customer_service.url is required")
	}
	if c.Schedule.SlotStepMinutes <= 0 {
		return fmt.Errorf("config: schedule.slot_step_minutes must be positive")
	}
	return nil
}
