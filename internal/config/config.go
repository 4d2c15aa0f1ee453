package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/st-neumann/SNR-BookingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig политика движка доступности
type BookingConfig struct {
	// Дефолтная вместимость по типу дня недели
	WeekdayOpenSlots  int `toml:"weekday_open_slots"`
	SaturdayOpenSlots int `toml:"saturday_open_slots"`
	SundayOpenSlots   int `toml:"sunday_open_slots"`

	// MaxRangeDays верхняя граница длины запрашиваемого диапазона
	MaxRangeDays int `toml:"max_range_days"`

	// UrgentWindowDays длина скользящего окна срочного канала
	UrgentWindowDays int `toml:"urgent_window_days"`
}

// DayDefaults конвертирует настройки вместимости в доменную политику
func (b *BookingConfig) DayDefaults() domain.DayDefaults {
	return domain.DayDefaults{
		Weekday:  b.WeekdayOpenSlots,
		Saturday: b.SaturdayOpenSlots,
		Sunday:   b.SundayOpenSlots,
	}
}

// Load загружает конфигурацию из TOML файла и применяет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}

	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}

	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "snr-booking-service"
	}

	if cfg.Booking.WeekdayOpenSlots == 0 {
		cfg.Booking.WeekdayOpenSlots = domain.DefaultWeekdayOpenSlots
	}
	if cfg.Booking.SaturdayOpenSlots == 0 {
		cfg.Booking.SaturdayOpenSlots = domain.DefaultSaturdayOpenSlots
	}
	if cfg.Booking.SundayOpenSlots == 0 {
		cfg.Booking.SundayOpenSlots = domain.DefaultSundayOpenSlots
	}
	if cfg.Booking.MaxRangeDays == 0 {
		cfg.Booking.MaxRangeDays = domain.DefaultMaxRangeDays
	}
	if cfg.Booking.UrgentWindowDays == 0 {
		cfg.Booking.UrgentWindowDays = domain.DefaultUrgentWindowDays
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}

	for _, v := range []int{cfg.Booking.WeekdayOpenSlots, cfg.Booking.SaturdayOpenSlots, cfg.Booking.SundayOpenSlots} {
		if v < 0 || v > domain.SlotsPerDay {
			return fmt.Errorf("config: booking open slots must be within 0..%d", domain.SlotsPerDay)
		}
	}

	return nil
}
