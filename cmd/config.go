package cmd

import (
	"fmt"
	"net/url"
	"time"
)

// Storage backends selectable with STORAGE.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	Storage    string

	DeliveryRate          string
	MetricsWeeks          int
	TransitionTimeout     time.Duration
	TransitionRetries     int
	MetricsReportSchedule string
}

// DatabaseURL is the connection URL used by the migrator.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	if c.DBSslMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.DBSslMode}}.Encode()
	}
	return u.String()
}

// DSN is the key/value connection string used by gorm.
func (c Config) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
	if c.DBSslMode != "" {
		dsn += " sslmode=" + c.DBSslMode
	}
	return dsn
}
