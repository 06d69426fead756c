package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"quiz-cli/internal/domain"
)

// Ranking backends.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

type Config struct {
	Questions struct {
		Path string `yaml:"path"`
		// Source is "file" or "postgres".
		Source   string `yaml:"source"`
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"questions"`
	Ranking struct {
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
		Limit   int    `yaml:"limit"`
	} `yaml:"ranking"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	SQLite struct {
		Path string `yaml:"path"`
	} `yaml:"sqlite"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Quiz struct {
		Difficulties []domain.Difficulty `yaml:"difficulties"`
	} `yaml:"quiz"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{}
	cfg.Questions.Path = "preguntas.json"
	cfg.Questions.Source = BackendFile
	cfg.Ranking.Backend = BackendFile
	cfg.Ranking.Path = "ranking.json"
	cfg.Ranking.Limit = 10
	cfg.Redis.Prefix = "quiz"
	cfg.SQLite.Path = "ranking.db"
	cfg.Log.Level = "warn"
	cfg.Quiz.Difficulties = []domain.Difficulty{
		{Key: "facil", Label: "Easy"},
		{Key: "dificil", Label: "Hard"},
	}
	return cfg
}

// Load reads YAML config from path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
