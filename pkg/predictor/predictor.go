// Package predictor builds the resume.Predictor selected by CLASSIFIER.
package predictor

import (
	"errors"
	"fmt"

	"github.com/artem13815/resume-analyzer/pkg/config"
	"github.com/artem13815/resume-analyzer/pkg/llm"
	"github.com/artem13815/resume-analyzer/pkg/llm/openrouter"
	"github.com/artem13815/resume-analyzer/pkg/model"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

var ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY is required for CLASSIFIER=llm")

// New returns the model bundle loaded from cfg.ModelPath, or the LLM predictor.
func New(cfg config.Config) (resume.Predictor, error) {
	switch cfg.Classifier {
	case config.ClassifierModel, "":
		b, err := model.Load(cfg.ModelPath)
		if err != nil {
			return nil, err
		}
		return b, nil
	case config.ClassifierLLM:
		if cfg.OpenRouterAPIKey == "" {
			return nil, ErrMissingAPIKey
		}
		client := openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		)
		return llm.NewPredictor(client, client.Model), nil
	default:
		return nil, fmt.Errorf("unknown CLASSIFIER %q: expected %q or %q", cfg.Classifier, config.ClassifierModel, config.ClassifierLLM)
	}
}

// IsLocal reports whether p runs in-process and is cheap to probe.
func IsLocal(p resume.Predictor) bool {
	_, ok := p.(*model.Bundle)
	return ok
}
