package configsenv

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"chodae.link/configs/configslog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config uygulamanın ortam değişkenlerinden okunan ayarlarıdır.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	AppPort     int    `env:"APP_PORT" envDefault:"3000"`
	AppBaseURL  string `env:"APP_BASE_URL"`
	AppTimezone string `env:"APP_TIMEZONE" envDefault:"Asia/Seoul"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	DB DatabaseConfig

	AuthUserHeader string `env:"AUTH_USER_HEADER" envDefault:"X-User-Id"`

	RateLimitDefault int           `env:"RATE_LIMIT_DEFAULT" envDefault:"20"`
	RateLimitWindow  time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// DatabaseConfig PostgreSQL bağlantı ayarları.
type DatabaseConfig struct {
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        int    `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"postgres"`
	Password    string `env:"DB_PASSWORD"`
	Name        string `env:"DB_NAME" envDefault:"chodae"`
	SSLMode     string `env:"DB_SSLMODE" envDefault:"disable"`
	Timezone    string `env:"DB_TIMEZONE" envDefault:"UTC"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

// DSN gorm postgres sürücüsü için bağlantı cümlesini üretir.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.Timezone)
}

// IsProduction origin kontrolünün katı modda çalışıp çalışmayacağını belirler.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

// Location APP_TIMEZONE değerini çözer, geçersizse UTC döner.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AppTimezone)
	if err != nil {
		configslog.Log.Warn("Invalid APP_TIMEZONE, falling back to UTC", zap.String("timezone", c.AppTimezone), zap.Error(err))
		return time.UTC
	}
	return loc
}

// Load .env dosyasını (varsa) yükler ve ortamı Config'e ayrıştırır.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RateLimitDefault <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_DEFAULT must be positive, got %d", cfg.RateLimitDefault)
	}
	if cfg.RateLimitWindow <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimitWindow)
	}
	return cfg, nil
}
