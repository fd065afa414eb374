package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	yaml "go.yaml.in/yaml/v4"
)

// Prompt store backends.
const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreSQLite   = "sqlite"
	StoreMemory   = "memory"
)

// LLM transport providers.
const (
	ProviderHTTP      = "http"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	Port    string `yaml:"port"`
	LogMode string `yaml:"log_mode"`

	DatabaseURL string `yaml:"database_url"`
	PromptStore string `yaml:"prompt_store"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
	SQLitePath  string `yaml:"sqlite_path"`

	LLM        LLMConfig        `yaml:"llm"`
	HardFilter HardFilterConfig `yaml:"hard_filter"`

	JWTSecret     string `yaml:"jwt_secret"`
	JWTIssuer     string `yaml:"jwt_issuer"`
	JWTTTLMinutes int    `yaml:"jwt_ttl_minutes"`
}

// LLMConfig describes the completion endpoint shared by both gatekeeper stages.
type LLMConfig struct {
	Provider   string `yaml:"provider"`
	BaseURL    string `yaml:"base_url"`
	APIKey     string `yaml:"api_key"`
	Model      string `yaml:"model"`
	TimeoutSec int    `yaml:"timeout_sec"`
	MaxTokens  int    `yaml:"max_tokens"`
}

// Timeout returns the per-request deadline for a completion call.
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

type HardFilterConfig struct {
	MinChars int      `yaml:"min_chars"`
	MinWords int      `yaml:"min_words"`
	Banned   []string `yaml:"banned"`
}

func defaults() Config {
	return Config{
		Port:        "8080",
		LogMode:     "dev",
		PromptStore: StorePostgres,
		RedisPrefix: "variables:",
		SQLitePath:  "ragguard.db",
		LLM: LLMConfig{
			Provider:   ProviderHTTP,
			Model:      "qwen/qwen2.5-32b-instruct",
			TimeoutSec: 30,
			MaxTokens:  512,
		},
		HardFilter: HardFilterConfig{
			MinChars: 5,
			MinWords: 2,
		},
		JWTIssuer:     "ragguard",
		JWTTTLMinutes: 60,
	}
}

// Load reads the optional YAML file named by CONFIG_FILE and then environment
// variables (optionally from a .env file). Environment values win.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := defaults()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)

	cfg.PromptStore = strings.ToLower(strings.TrimSpace(cfg.PromptStore))
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Port, "PORT")
	setString(&cfg.LogMode, "LOG_MODE")
	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.PromptStore, "PROMPT_STORE")
	setString(&cfg.RedisAddr, "REDIS_ADDR")
	setString(&cfg.RedisPrefix, "REDIS_PREFIX")
	setString(&cfg.SQLitePath, "SQLITE_PATH")

	setString(&cfg.LLM.Provider, "LLM_PROVIDER")
	setString(&cfg.LLM.BaseURL, "LLM_BASE_URL")
	setString(&cfg.LLM.APIKey, "LLM_API_KEY")
	setString(&cfg.LLM.Model, "LLM_MODEL")
	setInt(&cfg.LLM.TimeoutSec, "LLM_TIMEOUT_SEC")
	setInt(&cfg.LLM.MaxTokens, "LLM_MAX_TOKENS")

	setInt(&cfg.HardFilter.MinChars, "HARD_FILTER_MIN_CHARS")
	setInt(&cfg.HardFilter.MinWords, "HARD_FILTER_MIN_WORDS")
	if v := os.Getenv("HARD_FILTER_BANNED"); v != "" {
		cfg.HardFilter.Banned = splitList(v)
	}

	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.JWTIssuer, "JWT_ISSUER")
	setInt(&cfg.JWTTTLMinutes, "JWT_TTL_MINUTES")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
