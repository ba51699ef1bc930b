package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Files    FilesConfig    `mapstructure:"files"`
	Exports  ExportsConfig  `mapstructure:"exports"`
	Goals    GoalsConfig    `mapstructure:"goals"`
	Mood     MoodConfig     `mapstructure:"mood"`
	Database DatabaseConfig `mapstructure:"database"`
}

type FilesConfig struct {
	HistoryFile string `mapstructure:"history_file"`
	AuditLog    string `mapstructure:"audit_log"`
}

type ExportsConfig struct {
	Directory string `mapstructure:"directory" validate:"omitempty,writable_dir"`
}

type GoalsConfig struct {
	DefaultStatus string `mapstructure:"default_status"`
}

type MoodConfig struct {
	// Classifier selects the collaborator: "keyword" (local, no network)
	// or "api" (external sentiment service).
	Classifier    string `mapstructure:"classifier" validate:"oneof=keyword api"`
	BaseURL       string `mapstructure:"base_url"`
	APIKey        string `mapstructure:"api_key"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/learnflow")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("files.history_file", "learnflow.json")
	v.SetDefault("files.audit_log", "learnflow.log")
	v.SetDefault("exports.directory", "")
	v.SetDefault("goals.default_status", "in-progress")
	v.SetDefault("mood.classifier", "keyword")
	v.SetDefault("mood.retry_attempts", 2)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "learnflow")
	v.SetDefault("database.username", "user")

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("mood.api_key", "MOOD_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind MOOD_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("mood.base_url", "MOOD_API_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind MOOD_API_URL environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// ExportPath resolves an export file name against the configured export
// directory. An empty directory means the current working directory.
func (cfg *Config) ExportPath(name string) string {
	if cfg.Exports.Directory == "" {
		return name
	}
	return filepath.Join(cfg.Exports.Directory, name)
}
