package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDefaultThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelbox.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestWriteDefaultRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelbox.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Fatalf("expected an error on the second write")
	}
}

func TestLoadOverridesOnlySpecifiedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modelbox.yaml")
	contents := []byte("grpc_listen_addr: \"0.0.0.0:9000\"\n")
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GRPCListenAddr != "0.0.0.0:9000" {
		t.Fatalf("expected overridden addr, got %q", got.GRPCListenAddr)
	}
	if got.DatabaseName != Default().DatabaseName {
		t.Fatalf("expected default database name to survive, got %q", got.DatabaseName)
	}
}
