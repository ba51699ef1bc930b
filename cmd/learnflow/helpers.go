package main

import (
	"fmt"

	"github.com/mlindborg/learnflow/internal/auditlog"
	"github.com/mlindborg/learnflow/internal/config"
	"github.com/mlindborg/learnflow/internal/learnlog"
	"github.com/mlindborg/learnflow/internal/mood"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// buildClassifier returns the configured classifier and a close func
// releasing whatever resources it holds.
func buildClassifier(cfg *config.Config) (mood.Classifier, func()) {
	if cfg.Mood.Classifier == "api" {
		classifier := mood.NewAPIClassifier(cfg.Mood.BaseURL, cfg.Mood.APIKey, cfg.Mood.RetryAttempts)
		return classifier, func() {
			_ = classifier.Close()
		}
	}
	return mood.NewKeywordClassifier(), func() {}
}

// newService builds a service wired to the configured audit log and mood
// classifier, preloaded from the history file when one exists. Callers must
// defer the returned close func.
func newService(cfg *config.Config) (*learnlog.Service, func(), error) {
	classifier, closeClassifier := buildClassifier(cfg)
	service := learnlog.NewService(
		auditlog.NewFileWriter(cfg.Files.AuditLog),
		classifier,
		learnlog.WithDefaultGoalStatus(cfg.Goals.DefaultStatus),
	)

	repository := learnlog.NewJSONHistoryRepository(cfg.Files.HistoryFile)
	if repository.Exists() {
		store, err := repository.Load()
		if err != nil {
			closeClassifier()
			return nil, nil, fmt.Errorf("repository.Load() > %w", err)
		}
		service.Replace(store)
	}
	return service, closeClassifier, nil
}

func saveHistory(cfg *config.Config, service *learnlog.Service) error {
	repository := learnlog.NewJSONHistoryRepository(cfg.Files.HistoryFile)
	if err := repository.Save(service.Snapshot()); err != nil {
		return fmt.Errorf("repository.Save() > %w", err)
	}
	return nil
}
