package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"NODE42_CONFIG", "PORT", "LOG_MODE", "NEO4J_URI", "NEO4J_USERNAME", "NEO4J_USER", "NEO4J_TIMEOUT_SECONDS", "NEO4J_MAX_POOL_SIZE"} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.LogMode != "development" {
		t.Errorf("log mode = %q", cfg.LogMode)
	}
	if cfg.Neo4j.TimeoutSeconds != 10 || cfg.Neo4j.MaxPoolSize != 50 {
		t.Errorf("neo4j defaults = %+v", cfg.Neo4j)
	}
	if _, ok := cfg.CustomerCommodities["bechtel"]; !ok {
		t.Errorf("bechtel allow-list missing: %v", cfg.CustomerCommodities)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NODE42_CONFIG", "")
	t.Setenv("PORT", "9090")
	t.Setenv("NEO4J_URI", "neo4j://db:7687")
	t.Setenv("NEO4J_USER", "reader")
	t.Setenv("NEO4J_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Port)
	}
	if cfg.Neo4j.URI != "neo4j://db:7687" {
		t.Errorf("uri = %q", cfg.Neo4j.URI)
	}
	if cfg.Neo4j.Username != "reader" {
		t.Errorf("username = %q, want reader", cfg.Neo4j.Username)
	}
	if cfg.Neo4j.TimeoutSeconds != 5 {
		t.Errorf("timeout = %d, want 5", cfg.Neo4j.TimeoutSeconds)
	}
}

func TestLoadYAMLFileThenEnvWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node42.yaml")
	raw := []byte(`
port: "7001"
neo4j:
  uri: neo4j://file:7687
  username: filer
customer_commodities:
  acme:
    - "11111111"
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NODE42_CONFIG", path)
	t.Setenv("PORT", "7002")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7002" {
		t.Errorf("env should win over file: port = %q", cfg.Port)
	}
	if cfg.Neo4j.URI != "neo4j://file:7687" || cfg.Neo4j.Username != "filer" {
		t.Errorf("file values not applied: %+v", cfg.Neo4j)
	}
	if _, ok := cfg.AllowedCommodities("acme"); !ok {
		t.Errorf("file allow-list not applied: %v", cfg.CustomerCommodities)
	}
}

func TestLoadBadConfigFile(t *testing.T) {
	t.Setenv("NODE42_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestAllowedCommodities(t *testing.T) {
	t.Setenv("NODE42_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ids, ok := cfg.AllowedCommodities("bechtel")
	if !ok || len(ids) == 0 {
		t.Fatalf("bechtel should be known: %v %v", ids, ok)
	}
	if _, ok := cfg.AllowedCommodities("nobody"); ok {
		t.Fatal("unknown customer should not be filtered")
	}
}
