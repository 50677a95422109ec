package llm

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/artem13815/resume-analyzer/pkg/category"
)

// ErrNoCategory is returned when the model reply contains no category id.
var ErrNoCategory = errors.New("no category id in model reply")

var reFirstInt = regexp.MustCompile(`-?\d+`)

// Predictor classifies cleaned resume text by asking a chat model to pick a
// category id from the category table. It is an alternative to the TF-IDF model
// when no model file is available.
type Predictor struct {
	chat      ChatModel
	modelName string
	maxChars  int
}

// NewPredictor wraps chat. modelName is reported in classification records.
func NewPredictor(chat ChatModel, modelName string) *Predictor {
	return &Predictor{chat: chat, modelName: modelName, maxChars: 12_000}
}

func (p *Predictor) Name() string {
	if p.modelName == "" {
		return "llm"
	}
	return "llm:" + p.modelName
}

// Predict returns the id the model answered with. Ids outside the table are
// passed through; the caller resolves them to "Unknown".
func (p *Predictor) Predict(ctx context.Context, cleaned string) (int, error) {
	text := cleaned
	if len(text) > p.maxChars {
		text = text[:p.maxChars]
	}

	var table strings.Builder
	for _, e := range category.All() {
		fmt.Fprintf(&table, "%d: %s\n", e.ID, e.Label)
	}
	system := "You are an HR analyst. Classify the resume into exactly one job category. Reply with the category id only, no other text."
	user := fmt.Sprintf("Categories:\n%s\nResume text:\n<<<\n%s\n>>>", table.String(), text)

	raw, err := p.chat.Ask(ctx, system, user)
	if err != nil {
		return 0, err
	}
	m := reFirstInt.FindString(raw)
	if m == "" {
		return 0, fmt.Errorf("%w: %q", ErrNoCategory, strings.TrimSpace(raw))
	}
	id, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNoCategory, m)
	}
	return id, nil
}
