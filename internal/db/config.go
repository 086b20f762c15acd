package db

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Supported driver names as they appear in configuration.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config describes one database connection. The password is injected from
// the environment or the config file; there is no flag for it and it never
// appears in output.
type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Database string

	// Path is the database file for the sqlite driver; the other fields
	// except Driver are ignored there.
	Path string
}

// DSN builds the connection string for the configured driver. Credentials
// are escaped by the driver's own formatter, so passwords with special
// characters survive intact.
func (c Config) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = c.addr()
		mc.DBName = c.Database
		return mc.FormatDSN(), nil
	case DriverPostgres:
		u := url.URL{
			Scheme: "postgres",
			Host:   c.addr(),
			Path:   "/" + c.Database,
		}
		switch {
		case c.User != "" && c.Password != "":
			u.User = url.UserPassword(c.User, c.Password)
		case c.User != "":
			u.User = url.User(c.User)
		}
		return u.String(), nil
	case DriverSQLite:
		if strings.TrimSpace(c.Path) == "" {
			return "", fmt.Errorf("sqlite driver requires a database path (set db.path)")
		}
		return c.Path, nil
	default:
		return "", fmt.Errorf("unsupported driver %q (expected mysql, postgres, or sqlite)", c.Driver)
	}
}

// Redacted returns a connection preview safe for logs and terminal output:
// the password, when set, is shown as <hidden>.
func (c Config) Redacted() string {
	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s@tcp(%s)/%s", c.redactedUser(), c.addr(), c.Database)
	case DriverPostgres:
		return fmt.Sprintf("postgres://%s@%s/%s", c.redactedUser(), c.addr(), c.Database)
	case DriverSQLite:
		return "sqlite:" + c.Path
	default:
		return c.Driver
	}
}

func (c Config) redactedUser() string {
	if c.Password == "" {
		return c.User
	}
	return c.User + ":<hidden>"
}

func (c Config) addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// driverName maps the configured driver to its database/sql registration
// name. pgx registers its stdlib adapter as "pgx".
func (c Config) driverName() string {
	if c.Driver == DriverPostgres {
		return "pgx"
	}
	return c.Driver
}
