package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Classifier backends.
const (
	ClassifierModel = "model"
	ClassifierLLM   = "llm"
)

type Config struct {
	Port        string
	DatabaseURL string
	SQLitePath  string

	ModelPath  string
	Classifier string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	MaxUploadBytes int64

	LogLevel  string
	LogFormat string
}

// HasStore reports whether classification history and accounts are enabled.
func (c Config) HasStore() bool {
	return c.DatabaseURL != "" || c.SQLitePath != ""
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	SetDefaults(v)
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("MODEL_PATH", "model.json")
	v.SetDefault("CLASSIFIER", ClassifierModel)
	v.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
	v.SetDefault("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct")
	v.SetDefault("OPENROUTER_APP_TITLE", "resume-analyzer")
	v.SetDefault("JWT_SECRET", "dev-secret-change")
	v.SetDefault("JWT_ISSUER", "resume-analyzer")
	v.SetDefault("JWT_TTL_MINUTES", 60)
	v.SetDefault("MAX_UPLOAD_BYTES", 15<<20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// FromViper builds a Config from an already prepared viper instance.
func FromViper(v *viper.Viper) Config {
	cfg := Config{
		Port:        v.GetString("PORT"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		SQLitePath:  v.GetString("SQLITE_PATH"),

		ModelPath:  v.GetString("MODEL_PATH"),
		Classifier: strings.ToLower(strings.TrimSpace(v.GetString("CLASSIFIER"))),

		OpenRouterAPIKey:   v.GetString("OPENROUTER_API_KEY"),
		OpenRouterBase:     v.GetString("OPENROUTER_BASE_URL"),
		OpenRouterModel:    v.GetString("OPENROUTER_MODEL"),
		OpenRouterAppTitle: v.GetString("OPENROUTER_APP_TITLE"),
		OpenRouterReferer:  v.GetString("OPENROUTER_REFERER"),

		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTIssuer:     v.GetString("JWT_ISSUER"),
		JWTTTLMinutes: v.GetInt("JWT_TTL_MINUTES"),

		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: strings.ToLower(v.GetString("LOG_FORMAT")),
	}
	if cfg.JWTTTLMinutes <= 0 {
		cfg.JWTTTLMinutes = 60
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 15 << 20
	}
	if cfg.Classifier == "" {
		cfg.Classifier = ClassifierModel
	}
	return cfg
}
