package client

import (
	"fmt"
	"time"

	"circula/internal/config"
	"circula/internal/model"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase opens the configured driver and applies the connection pool limits.
func InitDatabase(cfg config.Database, log *logrus.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case "mysql":
		dsn, dsnErr := MysqlDSN(cfg)
		if dsnErr != nil {
			return nil, dsnErr
		}
		db, err = InitMysqlClient(dsn, log)
	case "sqlite":
		db, err = InitSqliteClient(cfg.SqlitePath, log)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// MysqlDSN builds the DSN from DATABASE_URL or the MYSQL_* parts. Either way
// clientFoundRows and parseTime are forced on: the conditional updates read
// RowsAffected as "rows matched", not "rows changed".
func MysqlDSN(cfg config.Database) (string, error) {
	mc := mysql.NewConfig()
	if cfg.DatabaseURL != "" {
		parsed, err := mysql.ParseDSN(cfg.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		mc = parsed
	} else {
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = cfg.Host
		mc.DBName = cfg.Name
		mc.Params = map[string]string{"charset": "utf8mb4"}
	}

	mc.ParseTime = true
	mc.ClientFoundRows = true

	return mc.FormatDSN(), nil
}

func InitMysqlClient(dsn string, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.Open(dsn), gormConfig(log))
	if err != nil {
		return nil, fmt.Errorf("connect to mysql: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// gormWriter sends gorm's slow-query and error lines to logrus at warn level.
type gormWriter struct {
	log *logrus.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.WithField("component", "gorm").Warnf(format, args...)
}

func gormConfig(log *logrus.Logger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(gormWriter{log: log}, logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
			// lookups such as "no stored card yet" are normal control flow
			IgnoreRecordNotFoundError: true,
		}),
	}
}
