package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Postgres PostgresConfig `yaml:"postgres" validate:"required"`
	Redis    RedisConfig    `yaml:"redis"    validate:"required"`
	JWT      JWTConfig      `yaml:"jwt"      validate:"required"`
	Payments PaymentsConfig `yaml:"payments"`
	Reaper   ReaperConfig   `yaml:"reaper"   validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"edu_api"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"      env-default:"localhost:6379" validate:"required"`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"  env-default:""`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"              validate:"min=0"`
	LockTTL  time.Duration `yaml:"lock_ttl"  env:"REDIS_LOCK_TTL"  env-default:"5s"             validate:"gt=0"`
	LockWait time.Duration `yaml:"lock_wait" env:"REDIS_LOCK_WAIT" env-default:"3s"             validate:"gt=0"`
}

type JWTConfig struct {
	Secret string        `yaml:"secret" env:"JWT_SECRET" validate:"required"`
	TTL    time.Duration `yaml:"ttl"    env:"JWT_TTL"    env-default:"24h" validate:"gt=0"`
}

// PaymentsConfig drives the payment simulator: flip the flags to exercise
// charge and refund failures without a real gateway.
type PaymentsConfig struct {
	ApproveCharges bool `yaml:"approve_charges" env:"PAYMENTS_APPROVE_CHARGES" env-default:"true"`
	ApproveRefunds bool `yaml:"approve_refunds" env:"PAYMENTS_APPROVE_REFUNDS" env-default:"true"`
}

type ReaperConfig struct {
	Interval time.Duration `yaml:"interval" env:"REAPER_INTERVAL" env-default:"1m"  validate:"required,gt=0"`
	MaxAge   time.Duration `yaml:"max_age"  env:"REAPER_MAX_AGE"  env-default:"10m" validate:"required,gt=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
