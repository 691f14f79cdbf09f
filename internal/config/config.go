// Package config loads and writes ModelBox's YAML configuration file, in
// the struct-tag style rakunlabs/at's internal/config package uses,
// simplified to gopkg.in/yaml.v3 since this module doesn't carry at's own
// layered chu/loaderenv/loadervault loader stack.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ObjectStoreProvider selects which Backend implementation a Config binds.
type ObjectStoreProvider string

const (
	ObjectStoreS3         ObjectStoreProvider = "S3"
	ObjectStoreGCS        ObjectStoreProvider = "Gcs"
	ObjectStoreFileSystem ObjectStoreProvider = "FileSystem"
)

// ObjectStore configures the blob backend. Bucket doubles as the local
// root path when Provider is FileSystem.
type ObjectStore struct {
	Bucket   string              `yaml:"bucket"`
	Provider ObjectStoreProvider `yaml:"provider"`
}

// Config is the top-level modelbox.yaml shape.
type Config struct {
	GRPCListenAddr   string      `yaml:"grpc_listen_addr"`
	DatabaseHost     string      `yaml:"database_host"`
	DatabaseName     string      `yaml:"database_name"`
	DatabaseUsername string      `yaml:"database_username"`
	DatabasePassword string      `yaml:"database_password"`
	ObjectStore      ObjectStore `yaml:"object_store"`
	LogLevel         string      `yaml:"log_level"`
}

// Default returns the configuration documented in spec §6, used both as
// the in-memory fallback and the contents init-config writes out.
func Default() Config {
	return Config{
		GRPCListenAddr:   "127.0.0.1:8085",
		DatabaseHost:     "localhost:5432",
		DatabaseName:     "tensorland",
		DatabaseUsername: "postgres",
		DatabasePassword: "foo",
		ObjectStore: ObjectStore{
			Bucket:   "/tmp/modelbox/",
			Provider: ObjectStoreFileSystem,
		},
		LogLevel: "info",
	}
}

// Load reads and parses the YAML file at path, layering it over Default()
// so a partial file still produces a runnable configuration.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefault writes Default() to path as YAML, failing if the file
// already exists so init-config never silently clobbers a live config.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing config at %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	b, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
