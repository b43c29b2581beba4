package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig("instance-1", "/home/user/.local/share/gramgrid")

	if cfg.InstanceID != "instance-1" {
		t.Errorf("InstanceID = %q", cfg.InstanceID)
	}
	if cfg.KeyPrefix != "village_" {
		t.Errorf("KeyPrefix = %q, want village_", cfg.KeyPrefix)
	}
	if cfg.Store.Type != "filesystem" {
		t.Errorf("Store.Type = %q, want filesystem", cfg.Store.Type)
	}
	if want := filepath.Join(cfg.BaseDir, "data"); cfg.Store.DataDir != want {
		t.Errorf("Store.DataDir = %q, want %q", cfg.Store.DataDir, want)
	}
	if cfg.Encryption.Type != "none" {
		t.Errorf("Encryption.Type = %q, want none", cfg.Encryption.Type)
	}
	if cfg.Encryption.PublicKeyPath == "" || cfg.Encryption.PrivateKeyPath == "" {
		t.Error("key paths not defaulted")
	}
}

func TestManager_WriteReadRoundTrip(t *testing.T) {
	cfg := NewConfig("instance-1", "/tmp/gramgrid")
	cfg.SessionTTLHours = 8
	cfg.Store = StoreConfig{Type: "sqlite", DataDir: "/tmp/gramgrid/data"}
	cfg.Encryption.Type = "age"

	m := &Manager{}
	var buf bytes.Buffer
	if err := m.Write(&buf, cfg); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestManager_ReadS3Config(t *testing.T) {
	input := `
instance_id = "i-1"
base_dir = "/data/gramgrid"

[store]
type = "s3"
s3_bucket = "village-data"
s3_prefix = "prod/"
s3_region = "ap-south-1"
`
	m := &Manager{}
	cfg, err := m.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if cfg.Store.Type != "s3" || cfg.Store.S3Bucket != "village-data" || cfg.Store.S3Region != "ap-south-1" {
		t.Errorf("Read() store = %+v", cfg.Store)
	}
}

func TestReadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gramgrid.toml")
	cfg := NewConfig("i-1", "/data/gramgrid")
	if err := writeToFile(path, cfg); err != nil {
		t.Fatalf("writeToFile() error: %v", err)
	}

	got, err := ReadFromFile(path)
	if err != nil {
		t.Fatalf("ReadFromFile() error: %v", err)
	}
	if got.InstanceID != "i-1" {
		t.Errorf("InstanceID = %q, want i-1", got.InstanceID)
	}

	if _, err := ReadFromFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("ReadFromFile() of a missing file did not fail")
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gramgrid.toml")
	cfg := NewConfig("i-1", "/data/gramgrid")

	if err := Init(path, cfg); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// A second init must refuse to clobber the existing file.
	if err := Init(path, cfg); err == nil {
		t.Error("Init() overwrote an existing config")
	}
}
