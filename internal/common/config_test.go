package common

import (
	"testing"
	"time"

	"labels-tracker/constants"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/labels?sslmode=disable")

	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Server.GRPCAddr != ":8080" || cfg.Server.HTTPAddr != ":8081" {
		t.Fatalf("unexpected server defaults %+v", cfg.Server)
	}
	if cfg.Storage.MaxFileSize != constants.MaxLabelFileSize {
		t.Fatalf("max file size default = %d", cfg.Storage.MaxFileSize)
	}
	if cfg.Database.MaxConns != 20 {
		t.Fatalf("max conns default = %d", cfg.Database.MaxConns)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/labels")
	t.Setenv("LABELS_DIR", "/srv/labels")
	t.Setenv("LABELS_MAX_FILE_SIZE", "1048576")
	t.Setenv("DB_MAX_CONN_LIFETIME", "10m")

	cfg := LoadConfig()
	if cfg.Storage.LabelsDir != "/srv/labels" {
		t.Fatalf("labels dir = %q", cfg.Storage.LabelsDir)
	}
	if cfg.Storage.MaxFileSize != 1048576 {
		t.Fatalf("max file size = %d", cfg.Storage.MaxFileSize)
	}
	if cfg.Database.MaxConnLifetime != 10*time.Minute {
		t.Fatalf("lifetime = %v", cfg.Database.MaxConnLifetime)
	}
}

func TestValidateRejectsMissingDSN(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{GRPCAddr: ":8080"},
		Storage: StorageConfig{LabelsDir: "/tmp/x", MaxFileSize: 1},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing DSN must fail validation")
	}
}
