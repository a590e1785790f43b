package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "CLOUDBOX"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Trash    TrashConfig    `mapstructure:"trash"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	GRPCPort        string        `mapstructure:"grpc_port"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	Name           string `mapstructure:"name"`
	SSLMode        string `mapstructure:"sslmode"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type StorageConfig struct {
	QuotaBytes int64  `mapstructure:"quota_bytes"`
	SeedFile   string `mapstructure:"seed_file"`
}

type TrashConfig struct {
	RetentionPeriod string        `mapstructure:"retention_period"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// SetDefaults регистрирует значения по умолчанию для всех ключей.
// Viper подхватывает переменные окружения только для известных ключей.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "2525")
	v.SetDefault("server.grpc_port", "50051")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "cloudbox")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.migrations_path", "migrations")

	v.SetDefault("storage.quota_bytes", int64(50)<<30) // 50GB
	v.SetDefault("storage.seed_file", "")

	v.SetDefault("trash.retention_period", "720h")
	v.SetDefault("trash.cleanup_interval", time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)
}

// LoadEnvFiles загружает .env файлы из текущего каталога и каталога конфигурации.
// Отсутствующие файлы пропускаются.
func LoadEnvFiles(configPath string) {
	envFiles := []string{".env", ".env.local"}
	dirs := []string{"."}
	if configPath != "" {
		dirs = append(dirs, filepath.Dir(configPath))
	}
	for _, dir := range dirs {
		for _, name := range envFiles {
			_ = godotenv.Load(filepath.Join(dir, name))
		}
	}
}

// Load читает конфигурацию из файла (если указан), окружения и флагов, уже привязанных к v
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	LoadEnvFiles(path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.cloudbox")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewConfig загружает конфигурацию в новом экземпляре viper
func NewConfig(path string) (*Config, error) {
	return Load(viper.New(), path)
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Storage.QuotaBytes <= 0 {
		return fmt.Errorf("storage quota must be positive, got %d", c.Storage.QuotaBytes)
	}
	if d, err := time.ParseDuration(c.Trash.RetentionPeriod); err != nil || d <= 0 {
		return fmt.Errorf("invalid trash retention period %q", c.Trash.RetentionPeriod)
	}
	if c.Trash.CleanupInterval <= 0 {
		return fmt.Errorf("trash cleanup interval must be positive")
	}

	// База данных необязательна, но если указан хост - нужны остальные поля
	if c.Database.Enabled() && (c.Database.User == "" || c.Database.Name == "") {
		return fmt.Errorf("database configuration is incomplete: host=%s, port=%s, user=%s, name=%s",
			c.Database.Host, c.Database.Port, c.Database.User, c.Database.Name)
	}
	return nil
}

// Enabled сообщает, настроено ли подключение к базе данных
func (c *DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
		c.SSLMode,
	)
}

// GetURL возвращает строку подключения в формате URL для migrate
func (c *DatabaseConfig) GetURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}
