// Package model loads the exported TF-IDF vectorizer and classifier and runs predictions.
//
// The model file is JSON (optionally gzip-compressed, ".gz" suffix) produced by
// the training pipeline:
//
//	{
//	  "name": "resume-tfidf-knn",
//	  "vectorizer": {"vocabulary": {"python": 0, ...}, "idf": [...], "sublinear_tf": false, "norm": "l2", "ngram_range": [1, 1]},
//	  "classifier": {"kind": "linear", "classes": [0, 1, ...], "coef": [[...]], "intercept": [...]}
//	}
//
// A Bundle is loaded once at startup and is read-only afterwards.
package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ErrInvalidModel wraps every validation failure of a model file.
var ErrInvalidModel = errors.New("invalid model")

// File is the on-disk model layout.
type File struct {
	Name       string         `json:"name"`
	Vectorizer VectorizerSpec `json:"vectorizer"`
	Classifier ClassifierSpec `json:"classifier"`
}

// Bundle pairs a vectorizer with the classifier trained on its features.
type Bundle struct {
	name       string
	vectorizer *Vectorizer
	classifier Classifier
}

// New validates f and builds a Bundle.
func New(f File) (*Bundle, error) {
	vec, err := NewVectorizer(f.Vectorizer)
	if err != nil {
		return nil, err
	}
	clf, err := NewClassifier(f.Classifier, vec.NumFeatures())
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = "tfidf-" + clf.Kind()
	}
	return &Bundle{name: name, vectorizer: vec, classifier: clf}, nil
}

// Read decodes a JSON model from r.
func Read(r io.Reader) (*Bundle, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return New(f)
}

// Load reads the model file at path.
func Load(path string) (*Bundle, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer fh.Close()

	var r io.Reader = fh
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("open gzip model: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	return Read(r)
}

// Name identifies the model in classification records.
func (b *Bundle) Name() string { return b.name }

// Vectorizer exposes the feature extractor.
func (b *Bundle) Vectorizer() *Vectorizer { return b.vectorizer }

// Predict vectorizes cleaned text and returns the predicted category id.
// Any string, including the empty one, is accepted.
func (b *Bundle) Predict(ctx context.Context, cleaned string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return b.classifier.Predict(b.vectorizer.Transform(cleaned)), nil
}
