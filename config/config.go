package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Internal    InternalConfig    `mapstructure:"internal"`
	Games       GamesConfig       `mapstructure:"games"`
	Deposits    DepositsConfig    `mapstructure:"deposits"`
	Withdrawals WithdrawalsConfig `mapstructure:"withdrawals"`
	Payout      PayoutConfig      `mapstructure:"payout"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// InternalConfig configures the bridge-facing internal API.
type InternalConfig struct {
	// ServiceKey authenticates the deposit watcher and payout bridge
	// callbacks on /api/v1/internal routes.
	ServiceKey string `mapstructure:"service_key"`
}

// GameConfig holds per-game bounds. Bets are in whole G$; multipliers in
// hundredths of 1x (500 = 5.00x).
type GameConfig struct {
	MaxPlaysPerDay int   `mapstructure:"max_plays_per_day"`
	MinBet         int64 `mapstructure:"min_bet"`
	MaxBet         int64 `mapstructure:"max_bet"`
	MinMultiplier  int   `mapstructure:"min_multiplier"`
	MaxMultiplier  int   `mapstructure:"max_multiplier"`
	WinMultiplier  int   `mapstructure:"win_multiplier"`
}

type GamesConfig struct {
	CrashGame GameConfig `mapstructure:"crash_game"`
	CoinFlip  GameConfig `mapstructure:"coin_flip"`
}

// DepositsConfig bounds deposit crediting, in whole G$.
type DepositsConfig struct {
	Minimum  int64 `mapstructure:"minimum"`
	DailyMax int64 `mapstructure:"daily_max"`
}

// WithdrawalsConfig bounds withdrawal requests, in whole G$.
type WithdrawalsConfig struct {
	Minimum int64 `mapstructure:"minimum"`
	Maximum int64 `mapstructure:"maximum"`
}

// PayoutConfig configures the blockchain bridge client.
type PayoutConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	ServiceKey string        `mapstructure:"service_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GDA_ (G$ Arcade).
// Nested keys use underscore: GDA_DATABASE_HOST, GDA_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "gd_arcade")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "gd-arcade")
	v.SetDefault("internal.service_key", "")

	// Game bounds from the production reward policy.
	v.SetDefault("games.crash_game.max_plays_per_day", 20)
	v.SetDefault("games.crash_game.min_bet", 50)
	v.SetDefault("games.crash_game.max_bet", 250)
	v.SetDefault("games.crash_game.min_multiplier", 120)
	v.SetDefault("games.crash_game.max_multiplier", 500)
	v.SetDefault("games.coin_flip.max_plays_per_day", 20)
	v.SetDefault("games.coin_flip.min_bet", 50)
	v.SetDefault("games.coin_flip.max_bet", 250)
	v.SetDefault("games.coin_flip.win_multiplier", 200)

	v.SetDefault("deposits.minimum", 100)
	v.SetDefault("deposits.daily_max", 500)
	v.SetDefault("withdrawals.minimum", 100)
	v.SetDefault("withdrawals.maximum", 10000)

	v.SetDefault("payout.base_url", "http://localhost:9090")
	v.SetDefault("payout.service_key", "")
	v.SetDefault("payout.timeout", "15s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: GDA_DATABASE_HOST -> database.host
	v.SetEnvPrefix("GDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
