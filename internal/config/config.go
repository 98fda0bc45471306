package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

var (
	// ErrUnsupportedColor is returned when APP_COLOR names a color outside the theme table.
	ErrUnsupportedColor = errors.New("unsupported color")
	// ErrInvalidConfig is returned for any other out-of-range setting.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// DefaultBackgroundImage is served from the static directory when BG_IMAGE_URL
// is not a web URL (for example an s3:// object).
const DefaultBackgroundImage = "/static/background.jpg"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the configuration values for the application.
// It is built once at startup and never mutated afterwards.
type Config struct {
	ListenAddr      string        `env:"LISTEN_ADDR" envDefault:"0.0.0.0:81"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"./static"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Database DatabaseConfig
	Theme    ThemeConfig
	Logging  LoggingConfig
}

// DatabaseConfig describes the relational database and its connection pool.
type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER" envDefault:"mysql"`
	Host            string        `env:"DBHOST" envDefault:"localhost"`
	Port            int           `env:"DBPORT" envDefault:"3306"`
	User            string        `env:"DBUSER" envDefault:"root"`
	Password        string        `env:"DBPWD" envDefault:"password"`
	Name            string        `env:"DATABASE" envDefault:"employees"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// ThemeConfig holds the cosmetic settings shared by every rendered page.
type ThemeConfig struct {
	Color              string `env:"APP_COLOR" envDefault:"lime"`
	StudentName        string `env:"STUDENT_NAME" envDefault:"Student"`
	BackgroundImageURL string `env:"BG_IMAGE_URL"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig loads configuration from environment variables or uses default values.
// A .env file in the working directory is read first when present; variables
// already set in the environment win.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if _, ok := colorCodes[c.Theme.Color]; !ok {
		return fmt.Errorf("%w %q, supported: %s", ErrUnsupportedColor, c.Theme.Color, strings.Join(SupportedColors(), ", "))
	}

	if c.ListenAddr == "" {
		return fmt.Errorf("%w: LISTEN_ADDR is required", ErrInvalidConfig)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: GIN_MODE must be one of: debug, release, test", ErrInvalidConfig)
	}

	for _, origin := range c.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("%w: CORS origin %q must be \"*\" or start with http:// or https://", ErrInvalidConfig, origin)
		}
	}

	if !isValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("%w: LOG_LEVEL must be one of: debug, info, warn, error", ErrInvalidConfig)
	}

	return c.Database.Validate()
}

// Validate checks the driver name and the pool bounds.
func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DriverMySQL, DriverPostgres:
		if d.Port <= 0 || d.Port > 65535 {
			return fmt.Errorf("%w: DBPORT must be between 1 and 65535", ErrInvalidConfig)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("%w: DB_DRIVER must be one of: mysql, postgres, sqlite", ErrInvalidConfig)
	}

	if d.Name == "" {
		return fmt.Errorf("%w: DATABASE is required", ErrInvalidConfig)
	}

	if d.MaxOpenConns < 1 || d.MaxOpenConns > 100 {
		return fmt.Errorf("%w: DB_MAX_OPEN_CONNS must be between 1 and 100", ErrInvalidConfig)
	}

	if d.MaxIdleConns < 0 || d.MaxIdleConns > d.MaxOpenConns {
		return fmt.Errorf("%w: DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS", ErrInvalidConfig)
	}

	if d.ConnMaxLifetime < 0 {
		return fmt.Errorf("%w: DB_CONN_MAX_LIFETIME must not be negative", ErrInvalidConfig)
	}

	return nil
}

// DSN builds the driver-specific data source name.
func (d *DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgresql",
			User:     url.UserPassword(d.User, d.Password),
			Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
			Path:     "/" + d.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	case DriverSQLite:
		return d.Name
	default:
		mc := mysql.NewConfig()
		mc.User = d.User
		mc.Passwd = d.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
		mc.DBName = d.Name
		mc.ParseTime = true
		mc.Loc = time.Local
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()
	}
}

// BackgroundImage returns the URL pages should use for the background image.
// Only http(s) and relative URLs can be rendered into a page; any other
// configured value falls back to the downloaded copy under /static.
func (t *ThemeConfig) BackgroundImage() string {
	if t.BackgroundImageURL == "" || t.BackgroundImageRenderable() {
		return t.BackgroundImageURL
	}
	return DefaultBackgroundImage
}

// BackgroundImageRenderable reports whether BG_IMAGE_URL can be used as is.
func (t *ThemeConfig) BackgroundImageRenderable() bool {
	u, err := url.Parse(t.BackgroundImageURL)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return true
	case "":
		return u.Host == ""
	}
	return false
}

// ColorHex returns the hex code of the configured theme color.
func (c *Config) ColorHex() string {
	return colorCodes[c.Theme.Color]
}

// String returns a representation safe for logging (no password).
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{ListenAddr=%s, StaticDir=%s, DBDriver=%s, DBHost=%s, DBPort=%d, DBName=%s, "+
			"MaxOpenConns=%d, Color=%s, StudentName=%s, LogLevel=%s}",
		c.ListenAddr,
		c.StaticDir,
		c.Database.Driver,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.MaxOpenConns,
		c.Theme.Color,
		c.Theme.StudentName,
		c.Logging.Level,
	)
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
