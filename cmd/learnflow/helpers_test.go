package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindborg/learnflow/internal/config"
	"github.com/mlindborg/learnflow/internal/mood"
)

func TestBuildClassifier(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MoodConfig
		want any
	}{
		{
			name: "keyword classifier",
			cfg:  config.MoodConfig{Classifier: "keyword"},
			want: &mood.KeywordClassifier{},
		},
		{
			name: "api classifier",
			cfg:  config.MoodConfig{Classifier: "api", BaseURL: "https://sentiment.example.com"},
			want: &mood.APIClassifier{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier, closeClassifier := buildClassifier(&config.Config{Mood: tt.cfg})

			assert.IsType(t, tt.want, classifier)
			require.NotNil(t, closeClassifier)
			// releasing must be safe even when nothing was used
			closeClassifier()
		})
	}
}

func TestNewService_ReturnsClose(t *testing.T) {
	useTestConfig(t)

	cfg, err := loadConfig()
	require.NoError(t, err)

	service, closeService, err := newService(cfg)
	require.NoError(t, err)
	require.NotNil(t, service)
	require.NotNil(t, closeService)
	closeService()
}
