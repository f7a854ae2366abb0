package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName         string   `mapstructure:"app_name"`
	Env             string   `mapstructure:"app_env"`
	LogLevel        string   `mapstructure:"log_level"`
	DirectoryURL    string   `mapstructure:"directory_url"`
	CatalogFile     string   `mapstructure:"catalog_file"`
	SearchLimit     int      `mapstructure:"search_limit"`
	SearchFieldsRaw string   `mapstructure:"search_fields"`
	SearchFields    []string `mapstructure:"-"`
}

// DefaultSearchFields are the record fields a query is matched against.
const DefaultSearchFields = "title,author,publisher,extension,language,isbn"

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "searcher")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("directory_url", "http://127.0.0.1:8080/")
	v.SetDefault("catalog_file", "catalog.json")
	v.SetDefault("search_limit", 100)
	v.SetDefault("search_fields", DefaultSearchFields)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.DirectoryURL = strings.TrimSpace(cfg.DirectoryURL)
	if cfg.DirectoryURL == "" {
		return nil, fmt.Errorf("invalid directory_url (must not be empty)")
	}
	cfg.CatalogFile = strings.TrimSpace(cfg.CatalogFile)
	if cfg.CatalogFile == "" {
		return nil, fmt.Errorf("invalid catalog_file (must not be empty)")
	}
	if cfg.SearchLimit <= 0 {
		return nil, fmt.Errorf("invalid search_limit (must be positive)")
	}

	cfg.SearchFields = splitFields(cfg.SearchFieldsRaw)
	if len(cfg.SearchFields) == 0 {
		return nil, fmt.Errorf("invalid search_fields (must name at least one field)")
	}

	return &cfg, nil
}

func splitFields(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
