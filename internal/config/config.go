package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DB          Database
	JWT         JWT    `envPrefix:"JWT_"`
	Upload      Upload `envPrefix:"UPLOAD_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8000"`
	// PublicBaseURL prefixes image paths in the seller/buyer listings.
	PublicBaseURL   string        `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type Database struct {
	Driver string `env:"DB_DRIVER" envDefault:"mysql"` // mysql | sqlite

	// DatabaseURL wins over the MYSQL_* parts when set.
	DatabaseURL string `env:"DATABASE_URL"`
	User        string `env:"MYSQL_USER" envDefault:"root"`
	Password    string `env:"MYSQL_PWD"`
	Host        string `env:"MYSQL_HOST" envDefault:"127.0.0.1:3306"`
	Name        string `env:"MYSQL_DATABASE" envDefault:"circula"`

	SqlitePath string `env:"SQLITE_PATH" envDefault:"circula.db"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
}

type JWT struct {
	Secret string        `env:"SECRET" envDefault:"your_jwt_secret"`
	TTL    time.Duration `env:"TTL" envDefault:"1h"`
}

type Upload struct {
	Dir             string `env:"DIR" envDefault:"uploads"`
	MaxProfileBytes int64  `env:"MAX_PROFILE_BYTES" envDefault:"5242880"`
	MaxProductBytes int64  `env:"MAX_PRODUCT_BYTES" envDefault:"10485760"`
}
