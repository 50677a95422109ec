package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/config"
)

func TestNewModel(t *testing.T) {
	p, err := New(config.Config{Classifier: config.ClassifierModel, ModelPath: "../model/testdata/tiny.json"})
	require.NoError(t, err)
	assert.Equal(t, "tiny-linear", p.Name())
	assert.True(t, IsLocal(p))

	_, err = New(config.Config{Classifier: config.ClassifierModel, ModelPath: "does-not-exist.json"})
	assert.Error(t, err)
}

func TestNewLLM(t *testing.T) {
	_, err := New(config.Config{Classifier: config.ClassifierLLM})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	p, err := New(config.Config{
		Classifier:       config.ClassifierLLM,
		OpenRouterAPIKey: "key",
		OpenRouterBase:   "http://127.0.0.1:1/v1",
		OpenRouterModel:  "some/model",
	})
	require.NoError(t, err)
	assert.Equal(t, "llm:some/model", p.Name())
	assert.False(t, IsLocal(p))
}

func TestNewUnknown(t *testing.T) {
	_, err := New(config.Config{Classifier: "svm"})
	assert.ErrorContains(t, err, `unknown CLASSIFIER "svm"`)
}
