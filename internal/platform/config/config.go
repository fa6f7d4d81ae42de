package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// StorageDriver はブックマーク集合の保存先です。
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"
	StorageSQLite   StorageDriver = "sqlite"
	StoragePostgres StorageDriver = "postgres"
	StorageRedis    StorageDriver = "redis"
)

const (
	defaultPeopleBaseURL = "https://dummyjson.com"
	defaultPageSize      = 20
	defaultSQLitePath    = "hrdash.db"
	defaultRedisPrefix   = "hrdash:"
	defaultLogLevel      = "info"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Ops          OpsConfig          `yaml:"ops"`
	PeopleSource PeopleSourceConfig `yaml:"people_source"`
	Storage      StorageConfig      `yaml:"storage"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"HRDASH_LISTEN_ADDR"`
}

// OpsConfig はヘルスチェックとメトリクスを公開する HTTP サーバーの設定です。空の場合は起動しません。
type OpsConfig struct {
	ListenAddr string `yaml:"listen_addr" env:"HRDASH_OPS_LISTEN_ADDR"`
}

// PeopleSourceConfig は社員データ取得元の設定です。
type PeopleSourceConfig struct {
	BaseURL    string        `yaml:"base_url" env:"HRDASH_PEOPLE_BASE_URL"`
	PageSize   int           `yaml:"page_size" env:"HRDASH_PEOPLE_PAGE_SIZE"`
	Timeout    time.Duration `yaml:"-"`
	TimeoutRaw string        `yaml:"timeout" env:"HRDASH_PEOPLE_TIMEOUT"`
}

// StorageConfig はブックマーク保存先の設定です。
type StorageConfig struct {
	Driver   StorageDriver  `yaml:"driver" env:"HRDASH_STORAGE_DRIVER"`
	Key      string         `yaml:"key" env:"HRDASH_STORAGE_KEY"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
}

// SQLiteConfig はクライアントローカル保存先の設定です。
type SQLiteConfig struct {
	Path string `yaml:"path" env:"HRDASH_SQLITE_PATH"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host" env:"HRDASH_DB_HOST"`
	Port               int           `yaml:"port" env:"HRDASH_DB_PORT"`
	User               string        `yaml:"user" env:"HRDASH_DB_USER"`
	Password           string        `yaml:"password" env:"HRDASH_DB_PASSWORD"`
	Name               string        `yaml:"name" env:"HRDASH_DB_NAME"`
	SSLMode            string        `yaml:"ssl_mode" env:"HRDASH_DB_SSL_MODE"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// RedisConfig は Redis 接続に関する設定です。
type RedisConfig struct {
	Addr      string `yaml:"addr" env:"HRDASH_REDIS_ADDR"`
	Password  string `yaml:"password" env:"HRDASH_REDIS_PASSWORD"`
	DB        int    `yaml:"db" env:"HRDASH_REDIS_DB"`
	KeyPrefix string `yaml:"key_prefix" env:"HRDASH_REDIS_KEY_PREFIX"`
}

// LoggingConfig はロガーの設定です。
type LoggingConfig struct {
	Level       string `yaml:"level" env:"HRDASH_LOG_LEVEL"`
	Development bool   `yaml:"development" env:"HRDASH_LOG_DEVELOPMENT"`
}

// Load は指定されたパスから設定ファイルを読み込み、環境変数で上書きします。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.PeopleSource.validateAndNormalize(); err != nil {
		return err
	}

	if err := c.Storage.validateAndNormalize(); err != nil {
		return err
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	return nil
}

func (p *PeopleSourceConfig) validateAndNormalize() error {
	if p.BaseURL == "" {
		p.BaseURL = defaultPeopleBaseURL
	}
	if _, err := url.ParseRequestURI(p.BaseURL); err != nil {
		return fmt.Errorf("config: people_source.base_url: %w", err)
	}
	if p.PageSize < 0 {
		return fmt.Errorf("config: people_source.page_size must not be negative")
	}
	if p.PageSize == 0 {
		p.PageSize = defaultPageSize
	}

	timeout, err := parseDurationAllowEmpty(p.TimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: people_source.timeout: %w", err)
	}
	p.Timeout = timeout

	return nil
}

func (s *StorageConfig) validateAndNormalize() error {
	if s.Driver == "" {
		s.Driver = StorageSQLite
	}

	switch s.Driver {
	case StorageMemory:
		return nil
	case StorageSQLite:
		if s.SQLite.Path == "" {
			s.SQLite.Path = defaultSQLitePath
		}
		return nil
	case StoragePostgres:
		return s.Database.validateAndNormalize()
	case StorageRedis:
		if s.Redis.Addr == "" {
			return fmt.Errorf("config: storage.redis.addr must be set")
		}
		if s.Redis.KeyPrefix == "" {
			s.Redis.KeyPrefix = defaultRedisPrefix
		}
		return nil
	default:
		return fmt.Errorf("config: storage.driver %q is not supported", s.Driver)
	}
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// FilePath は sqlite:// 接頭辞を取り除いたデータベースファイルのパスを返します。
func (s SQLiteConfig) FilePath() string {
	return strings.TrimPrefix(s.Path, "sqlite://")
}

// SQLiteURL は golang-migrate 用の接続文字列を返します。
func (s SQLiteConfig) SQLiteURL() string {
	return "sqlite://" + s.FilePath()
}
