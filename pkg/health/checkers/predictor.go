package checkers

import (
	"context"
	"errors"
	"fmt"

	"github.com/artem13815/resume-analyzer/pkg/resume"
)

var errNoPredictor = errors.New("predictor is not loaded")

// PredictorChecker runs the predictor on an empty document.
// Only local predictors should be checked this way: a remote one would be called on every probe.
type PredictorChecker struct {
	p resume.Predictor
}

func NewPredictorChecker(p resume.Predictor) *PredictorChecker {
	return &PredictorChecker{p: p}
}

func (c *PredictorChecker) Name() string { return "model" }

func (c *PredictorChecker) Check(ctx context.Context) error {
	if c.p == nil {
		return errNoPredictor
	}
	if _, err := c.p.Predict(ctx, ""); err != nil {
		return fmt.Errorf("%s: %w", c.p.Name(), err)
	}
	return nil
}
