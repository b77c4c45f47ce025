package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/documenta/docuflow/internal/config"
)

func baseConfig() config.Config {
	return config.Config{
		Database: config.DatabaseConfig{Name: "docuflow", User: "docuflow"},
		Storage:  config.StorageConfig{Bucket: "docuflow"},
	}
}

func TestConfig_FinalizeDefaults(t *testing.T) {
	cfg := baseConfig()
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v, want nil", err)
	}

	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q, want %q", got, "0.0.0.0:8080")
	}
	if got := cfg.ShutdownTimeoutDuration(); got != 30*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 30s", got)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("Database.MaxOpenConns = %d, want 25", cfg.Database.MaxOpenConns)
	}
	if got := cfg.Storage.URLExpiryDuration(); got != time.Hour {
		t.Errorf("Storage.URLExpiryDuration() = %v, want 1h", got)
	}
	if got := cfg.Storage.MaxFileSizeBytes(); got != 10*1024*1024 {
		t.Errorf("Storage.MaxFileSizeBytes() = %d, want %d", got, 10*1024*1024)
	}
}

func TestConfig_FinalizeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing database name", func(c *config.Config) { c.Database.Name = "" }},
		{"missing database user", func(c *config.Config) { c.Database.User = "" }},
		{"missing storage bucket", func(c *config.Config) { c.Storage.Bucket = "" }},
		{"invalid shutdown timeout", func(c *config.Config) { c.ShutdownTimeout = "soon" }},
		{"invalid server port", func(c *config.Config) { c.Server.Port = 70000 }},
		{"invalid max file size", func(c *config.Config) { c.Storage.MaxFileSize = "huge" }},
		{"invalid url expiry", func(c *config.Config) { c.Storage.URLExpiry = "whenever" }},
		{"invalid log level", func(c *config.Config) { c.Logging.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)

			if err := cfg.Finalize(); err == nil {
				t.Error("Finalize() error = nil, want error")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := baseConfig()
	cfg.Server.Port = 8080
	cfg.Database.Host = "localhost"

	cfg.Merge(&config.Config{
		Server:   config.ServerConfig{Port: 9090},
		Database: config.DatabaseConfig{Host: "db.internal"},
		Storage:  config.StorageConfig{MaxFileSize: "5MiB"},
	})

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "db.internal")
	}
	if cfg.Database.Name != "docuflow" {
		t.Errorf("Database.Name = %q, want %q (unset overlay field must not clobber)", cfg.Database.Name, "docuflow")
	}
	if cfg.Storage.MaxFileSize != "5MiB" {
		t.Errorf("Storage.MaxFileSize = %q, want %q", cfg.Storage.MaxFileSize, "5MiB")
	}
}

func TestDatabaseConfig_Dsn(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "docuflow",
		User:     "svc",
		Password: "secret",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 dbname=docuflow user=svc password=secret sslmode=disable"
	if got := cfg.Dsn(); got != want {
		t.Errorf("Dsn() = %q, want %q", got, want)
	}
}

func TestDatabaseConfig_URL(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "docuflow",
		User:     "svc",
		Password: "p@ss/word",
		SSLMode:  "disable",
	}

	got := cfg.URL("pgx5")
	if !strings.HasPrefix(got, "pgx5://svc:") {
		t.Errorf("URL() = %q, want pgx5 scheme with user", got)
	}
	if strings.Contains(got, "p@ss/word") {
		t.Errorf("URL() = %q, want escaped password", got)
	}
	if !strings.HasSuffix(got, "@localhost:5432/docuflow?sslmode=disable") {
		t.Errorf("URL() = %q, want host, database, and sslmode suffix", got)
	}
}

func TestStorageConfig_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvStorageBucket, "override-bucket")
	t.Setenv(config.EnvStorageMaxFileSize, "1MiB")

	cfg := config.StorageConfig{Bucket: "docuflow"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v, want nil", err)
	}

	if cfg.Bucket != "override-bucket" {
		t.Errorf("Bucket = %q, want %q", cfg.Bucket, "override-bucket")
	}
	if got := cfg.MaxFileSizeBytes(); got != 1024*1024 {
		t.Errorf("MaxFileSizeBytes() = %d, want %d", got, 1024*1024)
	}
}
