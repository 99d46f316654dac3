package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DBConfig holds database configuration
type DBConfig struct {
	Driver            string
	URL               string
	Host              string
	Port              string
	User              string
	Password          string
	Name              string
	SSLMode           string
	Path              string
	MaxOpenConns      int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	ConnectRetries    int
	ConnectRetryDelay time.Duration
	AutoMigrate       bool
}

// GetConfig returns database configuration with defaults
func GetConfig() *DBConfig {
	viper.SetDefault("database.driver", DriverPostgres)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.name", "fuel")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.path", "fuel.db")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", time.Minute*5)
	viper.SetDefault("database.connect_retries", 5)
	viper.SetDefault("database.connect_retry_delay", 2*time.Second)
	viper.SetDefault("database.auto_migrate", true)

	return &DBConfig{
		Driver:            viper.GetString("database.driver"),
		URL:               viper.GetString("database.url"),
		Host:              viper.GetString("database.host"),
		Port:              viper.GetString("database.port"),
		User:              viper.GetString("database.user"),
		Password:          viper.GetString("database.password"),
		Name:              viper.GetString("database.name"),
		SSLMode:           viper.GetString("database.ssl_mode"),
		Path:              viper.GetString("database.path"),
		MaxOpenConns:      viper.GetInt("database.max_open_conns"),
		MaxIdleConns:      viper.GetInt("database.max_idle_conns"),
		ConnMaxLifetime:   viper.GetDuration("database.conn_max_lifetime"),
		ConnectRetries:    viper.GetInt("database.connect_retries"),
		ConnectRetryDelay: viper.GetDuration("database.connect_retry_delay"),
		AutoMigrate:       viper.GetBool("database.auto_migrate"),
	}
}

// DSN returns the postgres connection string. DATABASE_URL wins over the
// discrete settings.
func (c *DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// MigrationDSN is the data source the migration handle opens: the file path
// for sqlite, DSN otherwise.
func (c *DBConfig) MigrationDSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return c.DSN()
}

// InitDB opens the configured database and waits for it to answer.
func InitDB(ctx context.Context, config *DBConfig) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch config.Driver {
	case DriverPostgres:
		db, err = sqlx.Open(DriverPostgres, config.DSN())
		if err != nil {
			return nil, fmt.Errorf("error opening database: %w", err)
		}
		db.SetMaxOpenConns(config.MaxOpenConns)
		db.SetMaxIdleConns(config.MaxIdleConns)
		db.SetConnMaxLifetime(config.ConnMaxLifetime)
	case DriverSQLite:
		db, err = OpenSQLite(config.Path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	log := logrus.WithFields(logrus.Fields{"component": "database", "driver": config.Driver})
	err = retry(ctx, config.ConnectRetries, config.ConnectRetryDelay, func(ctx context.Context, attempt int) error {
		if err := db.PingContext(ctx); err != nil {
			log.WithError(err).WithField("attempt", attempt).Warn("database not reachable")
			return err
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if config.AutoMigrate {
		if err := Migrate(config.Driver, config.MigrationDSN()); err != nil {
			db.Close()
			return nil, err
		}
	}

	log.Info("Database connection established")
	return db, nil
}

// InitDatabase initializes database with error handling
func InitDatabase(ctx context.Context) *sqlx.DB {
	db, err := InitDB(ctx, GetConfig())
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	return db
}
