package config

import (
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppPort string

	DBDriver     string
	DBLogLevel   string
	TxIsolation  string
	MySQLHost    string
	MySQLPort    string
	MySQLDB      string
	MySQLUser    string
	MySQLPass    string
	PostgresHost string
	PostgresPort string
	PostgresDB   string
	PostgresUser string
	PostgresPass string
	PostgresSSL  string
	SQLitePath   string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	JWTSecret string
	JWTTTL    time.Duration

	PublicBaseURL    string
	CORSAllowOrigins []string

	LogLevel  string
	LogFormat string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvDuration(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			return dur
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),

		DBDriver:     strings.ToLower(getenv("DB_DRIVER", DriverPostgres)),
		DBLogLevel:   strings.ToLower(getenv("DB_LOG_LEVEL", "warn")),
		TxIsolation:  strings.ToLower(getenv("DB_TX_ISOLATION", "repeatable_read")),
		MySQLHost:    getenv("MYSQL_HOST", "mysql"),
		MySQLPort:    getenv("MYSQL_PORT", "3306"),
		MySQLDB:      getenv("MYSQL_DB", "ngo"),
		MySQLUser:    getenv("MYSQL_USER", "ngo"),
		MySQLPass:    getenv("MYSQL_PASS", "ngo"),
		PostgresHost: getenv("POSTGRES_HOST", "postgres"),
		PostgresPort: getenv("POSTGRES_PORT", "5432"),
		PostgresDB:   getenv("POSTGRES_DB", "ngo"),
		PostgresUser: getenv("POSTGRES_USER", "ngo"),
		PostgresPass: getenv("POSTGRES_PASSWORD", "ngo"),
		PostgresSSL:  getenv("POSTGRES_SSLMODE", "disable"),
		SQLitePath:   getenv("SQLITE_PATH", "./data/ngo.db"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getenvDuration("JWT_TTL", 24*time.Hour),

		PublicBaseURL: strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")),

		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getenv("LOG_FORMAT", "text")),
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.CORSAllowOrigins = append(c.CORSAllowOrigins, o)
			}
		}
	}
	return c
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.AppPort == "" {
		errs = append(errs, errors.New("missing APP_PORT"))
	} else if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		errs = append(errs, fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err))
	}

	switch c.DBDriver {
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			errs = append(errs, errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)"))
		} else if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			errs = append(errs, fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err))
		}
	case DriverPostgres:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDB == "" || c.PostgresUser == "" {
			errs = append(errs, errors.New("missing Postgres config (POSTGRES_HOST/PORT/DB/USER)"))
		} else if _, err := net.LookupPort("tcp", c.PostgresPort); err != nil {
			errs = append(errs, fmt.Errorf("invalid POSTGRES_PORT %q: %w", c.PostgresPort, err))
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("missing SQLITE_PATH"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid DB_DRIVER %q: must be mysql, postgres or sqlite", c.DBDriver))
	}

	if _, err := c.Isolation(); err != nil {
		errs = append(errs, err)
	}

	if len(c.JWTSecret) < 16 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 16 characters"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.IdempTTLSecs <= 0 {
		errs = append(errs, errors.New("IDEMPOTENCY_TTL_SECONDS must be positive"))
	}

	if c.PublicBaseURL != "" {
		if u, err := url.Parse(c.PublicBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("invalid PUBLIC_BASE_URL %q", c.PublicBaseURL))
		}
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", c.LogFormat))
	}

	return errors.Join(errs...)
}

// Isolation maps DB_TX_ISOLATION onto database/sql levels.
func (c *Config) Isolation() (sql.IsolationLevel, error) {
	switch c.TxIsolation {
	case "", "default":
		return sql.LevelDefault, nil
	case "read_committed":
		return sql.LevelReadCommitted, nil
	case "repeatable_read":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	}
	return sql.LevelDefault, fmt.Errorf("invalid DB_TX_ISOLATION %q", c.TxIsolation)
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME/DATE columns
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPass, c.PostgresDB, c.PostgresSSL)
}
