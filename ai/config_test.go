package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.ValidatorHost)
	assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	assert.Equal(t, "gpt-4o-mini", cfg.ValidatorModel)
	assert.Equal(t, 1536, cfg.EmbeddingDimensions)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.ValidatorHost)
		assert.Equal(t, 1536, cfg.EmbeddingDimensions)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.ValidatorHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://embed:8080/v1"),
			WithValidatorHost("http://validate:9090/v1"),
		)

		assert.Equal(t, "http://embed:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://validate:9090/v1", cfg.ValidatorHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingModel("nomic-embed-text"),
			WithValidatorModel("granite3-dense:8b"),
		)

		assert.Equal(t, "nomic-embed-text", cfg.EmbeddingModel)
		assert.Equal(t, "granite3-dense:8b", cfg.ValidatorModel)
	})

	t.Run("with custom dimensions", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingDimensions(768))

		assert.Equal(t, 768, cfg.EmbeddingDimensions)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithHost("http://custom:8080/v1"),
			WithEmbeddingModel("custom-embed"),
			WithValidatorModel("custom-validate"),
			WithEmbeddingDimensions(512),
		)

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.ValidatorHost)
		assert.Equal(t, "custom-embed", cfg.EmbeddingModel)
		assert.Equal(t, "custom-validate", cfg.ValidatorModel)
		assert.Equal(t, 512, cfg.EmbeddingDimensions)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name              string
		embeddingHost     string
		validatorHost     string
		expectedEmbedding string
		expectedValidator string
	}{
		{
			name:              "already has /v1",
			embeddingHost:     "http://localhost:11434/v1",
			validatorHost:     "http://localhost:11434/v1",
			expectedEmbedding: "http://localhost:11434/v1",
			expectedValidator: "http://localhost:11434/v1",
		},
		{
			name:              "missing /v1",
			embeddingHost:     "http://localhost:11434",
			validatorHost:     "http://localhost:11434",
			expectedEmbedding: "http://localhost:11434/v1",
			expectedValidator: "http://localhost:11434/v1",
		},
		{
			name:              "has trailing slash",
			embeddingHost:     "http://localhost:11434/",
			validatorHost:     "http://localhost:11434/",
			expectedEmbedding: "http://localhost:11434/v1",
			expectedValidator: "http://localhost:11434/v1",
		},
		{
			name:              "empty hosts",
			embeddingHost:     "",
			validatorHost:     "",
			expectedEmbedding: "",
			expectedValidator: "",
		},
		{
			name:              "different formats",
			embeddingHost:     "http://embed:8080",
			validatorHost:     "http://validate:9090/v1",
			expectedEmbedding: "http://embed:8080/v1",
			expectedValidator: "http://validate:9090/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				EmbeddingHost: tt.embeddingHost,
				ValidatorHost: tt.validatorHost,
			}

			cfg.Normalize()

			assert.Equal(t, tt.expectedEmbedding, cfg.EmbeddingHost)
			assert.Equal(t, tt.expectedValidator, cfg.ValidatorHost)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := &Config{
			EmbeddingHost:       "http://localhost:11434",
			ValidatorHost:       "http://localhost:11434",
			EmbeddingModel:      "text-embedding-3-small",
			ValidatorModel:      "gpt-4o-mini",
			EmbeddingDimensions: 1536,
		}

		err := cfg.Validate()
		assert.NoError(t, err)

		// Should also normalize
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.ValidatorHost)
	})

	t.Run("missing embedding host", func(t *testing.T) {
		cfg := &Config{
			ValidatorHost:       "http://localhost:11434/v1",
			EmbeddingModel:      "text-embedding-3-small",
			ValidatorModel:      "gpt-4o-mini",
			EmbeddingDimensions: 1536,
		}

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "EmbeddingHost")
	})

	t.Run("missing validator host", func(t *testing.T) {
		cfg := &Config{
			EmbeddingHost:       "http://localhost:11434/v1",
			EmbeddingModel:      "text-embedding-3-small",
			ValidatorModel:      "gpt-4o-mini",
			EmbeddingDimensions: 1536,
		}

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ValidatorHost")
	})

	t.Run("missing embedding model", func(t *testing.T) {
		cfg := &Config{
			EmbeddingHost:       "http://localhost:11434/v1",
			ValidatorHost:       "http://localhost:11434/v1",
			ValidatorModel:      "gpt-4o-mini",
			EmbeddingDimensions: 1536,
		}

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "EmbeddingModel")
	})

	t.Run("missing validator model", func(t *testing.T) {
		cfg := &Config{
			EmbeddingHost:       "http://localhost:11434/v1",
			ValidatorHost:       "http://localhost:11434/v1",
			EmbeddingModel:      "text-embedding-3-small",
			EmbeddingDimensions: 1536,
		}

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ValidatorModel")
	})

	t.Run("non-positive dimensions", func(t *testing.T) {
		cfg := &Config{
			EmbeddingHost:  "http://localhost:11434/v1",
			ValidatorHost:  "http://localhost:11434/v1",
			EmbeddingModel: "text-embedding-3-small",
			ValidatorModel: "gpt-4o-mini",
		}

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "EmbeddingDimensions")
	})
}

func TestConfigValidate_Integration(t *testing.T) {
	// Test that NewConfig produces a valid configuration
	cfg := NewConfig()
	err := cfg.Validate()
	require.NoError(t, err)

	// Test that DefaultConfig produces a valid configuration
	cfg = DefaultConfig()
	err = cfg.Validate()
	require.NoError(t, err)
}
