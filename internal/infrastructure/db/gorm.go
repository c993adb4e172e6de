package db

import (
	"fmt"
	"log/slog"
	"time"

	"ngo-backoffice/internal/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool holds connection pool limits. Zero values keep the driver defaults.
type Pool struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
}

var defaultPool = Pool{
	MaxOpen:     30,
	MaxIdle:     10,
	MaxLifetime: 30 * time.Minute,
	MaxIdleTime: 10 * time.Minute,
}

// Dialector picks the gorm driver for the configured backend.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return mysql.Open(cfg.MySQLDSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.PostgresDSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}

// Open connects using the configured driver, pool and SQL log level.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	pool := defaultPool
	if cfg.DBDriver == config.DriverSQLite {
		// a single writer avoids SQLITE_BUSY on the file
		pool.MaxOpen, pool.MaxIdle = 1, 1
	}
	return OpenGormWithDialector(dial, WithLogLevel(ParseLogLevel(cfg.DBLogLevel)), WithPool(pool))
}

// ParseLogLevel maps DB_LOG_LEVEL onto gorm's SQL logger levels.
func ParseLogLevel(s string) logger.LogLevel {
	switch s {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	}
	return logger.Warn
}

type Option func(*options)

type options struct {
	cfg  *gorm.Config
	pool Pool
}

func WithLogLevel(level logger.LogLevel) Option {
	return func(o *options) { o.cfg.Logger = logger.Default.LogMode(level) }
}

func WithPool(p Pool) Option {
	return func(o *options) { o.pool = p }
}

// OpenGormWithDialector opens gorm on an arbitrary dialector, applies the
// pool limits and pings before returning.
func OpenGormWithDialector(dial gorm.Dialector, opts ...Option) (*gorm.DB, error) {
	o := &options{
		cfg:  &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)},
		pool: defaultPool,
	}
	for _, fn := range opts {
		fn(o)
	}

	db, err := gorm.Open(dial, o.cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if o.pool.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(o.pool.MaxOpen)
	}
	if o.pool.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(o.pool.MaxIdle)
	}
	if o.pool.MaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(o.pool.MaxLifetime)
	}
	if o.pool.MaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(o.pool.MaxIdleTime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	slog.Info("gorm: connected", "dialect", dial.Name())
	return db, nil
}
