package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/node42/node42-backend/internal/platform/envutil"
)

type Neo4jConfig struct {
	URI            string `yaml:"uri"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	Database       string `yaml:"database"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxPoolSize    int    `yaml:"max_pool_size"`
}

// Config is assembled from defaults, then an optional YAML file named by
// NODE42_CONFIG, then environment variables. Environment wins.
type Config struct {
	Port        string   `yaml:"port"`
	LogMode     string   `yaml:"log_mode"`
	CORSOrigins []string `yaml:"cors_origins"`

	Neo4j Neo4jConfig `yaml:"neo4j"`

	// CustomerCommodities maps a customer id to the commodity ids that
	// customer is allowed to see on the commodities dropdown. Static
	// demo mechanism, deliberately not a permission model.
	CustomerCommodities map[string][]string `yaml:"customer_commodities"`
}

func defaults() Config {
	return Config{
		Port:    "8080",
		LogMode: "development",
		CORSOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		Neo4j: Neo4jConfig{
			TimeoutSeconds: 10,
			MaxPoolSize:    50,
		},
		CustomerCommodities: map[string][]string{
			"bechtel":          {"23181501", "23181504", "24101601"},
			"welfen-gymnasium": {"41103901", "41104107", "56101707"},
		},
	}
}

func Load() (Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("NODE42_CONFIG")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.Port = envutil.String("PORT", cfg.Port)
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)

	cfg.Neo4j.URI = envutil.String("NEO4J_URI", cfg.Neo4j.URI)
	cfg.Neo4j.Username = envutil.String("NEO4J_USERNAME", envutil.String("NEO4J_USER", cfg.Neo4j.Username))
	cfg.Neo4j.Password = envutil.String("NEO4J_PASSWORD", cfg.Neo4j.Password)
	cfg.Neo4j.Database = envutil.String("NEO4J_DATABASE", cfg.Neo4j.Database)
	cfg.Neo4j.TimeoutSeconds = envutil.Int("NEO4J_TIMEOUT_SECONDS", cfg.Neo4j.TimeoutSeconds)
	cfg.Neo4j.MaxPoolSize = envutil.Int("NEO4J_MAX_POOL_SIZE", cfg.Neo4j.MaxPoolSize)

	return cfg, nil
}

// AllowedCommodities returns the allow-list for a customer id and whether
// the customer is known. Unknown customers are not filtered.
func (c Config) AllowedCommodities(customerID string) ([]string, bool) {
	ids, ok := c.CustomerCommodities[strings.TrimSpace(customerID)]
	return ids, ok
}
