package model

import (
	"fmt"
	"sort"
)

// Classifier kinds understood by the model file.
const (
	KindLinear = "linear"
	KindKNN    = "knn"
)

// Classifier predicts a category id for a feature vector.
type Classifier interface {
	Kind() string
	Predict(x SparseVector) int
}

// ClassifierSpec is the serialized classifier.
type ClassifierSpec struct {
	Kind      string       `json:"kind"`
	Classes   []int        `json:"classes"`
	Coef      [][]float64  `json:"coef,omitempty"`
	Intercept []float64    `json:"intercept,omitempty"`
	K         int          `json:"k,omitempty"`
	Samples   []SampleSpec `json:"samples,omitempty"`
}

// SampleSpec is one stored training row of a knn model.
type SampleSpec struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
	Label   int       `json:"label"`
}

// NewClassifier validates spec against the feature width and builds a Classifier.
func NewClassifier(spec ClassifierSpec, numFeatures int) (Classifier, error) {
	switch spec.Kind {
	case KindLinear:
		return newLinear(spec, numFeatures)
	case KindKNN:
		return newKNN(spec, numFeatures)
	default:
		return nil, fmt.Errorf("%w: unknown classifier kind %q", ErrInvalidModel, spec.Kind)
	}
}

// Linear is a one-vs-rest linear model: argmax(coef·x + intercept).
type Linear struct {
	classes   []int
	coef      [][]float64
	intercept []float64
}

func newLinear(spec ClassifierSpec, numFeatures int) (*Linear, error) {
	if len(spec.Classes) < 2 {
		return nil, fmt.Errorf("%w: linear model needs at least 2 classes", ErrInvalidModel)
	}
	rows := len(spec.Classes)
	if rows == 2 && len(spec.Coef) == 1 {
		rows = 1
	}
	if len(spec.Coef) != rows {
		return nil, fmt.Errorf("%w: coef has %d rows, want %d", ErrInvalidModel, len(spec.Coef), rows)
	}
	for i, row := range spec.Coef {
		if len(row) != numFeatures {
			return nil, fmt.Errorf("%w: coef row %d has %d columns, want %d", ErrInvalidModel, i, len(row), numFeatures)
		}
	}
	intercept := spec.Intercept
	if intercept == nil {
		intercept = make([]float64, rows)
	}
	if len(intercept) != rows {
		return nil, fmt.Errorf("%w: intercept has %d entries, want %d", ErrInvalidModel, len(intercept), rows)
	}
	return &Linear{classes: spec.Classes, coef: spec.Coef, intercept: intercept}, nil
}

func (l *Linear) Kind() string { return KindLinear }

// Decision returns the raw score of each coef row.
func (l *Linear) Decision(x SparseVector) []float64 {
	scores := make([]float64, len(l.coef))
	for i, row := range l.coef {
		scores[i] = x.Dot(row) + l.intercept[i]
	}
	return scores
}

func (l *Linear) Predict(x SparseVector) int {
	scores := l.Decision(x)
	if len(scores) == 1 {
		if scores[0] > 0 {
			return l.classes[1]
		}
		return l.classes[0]
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return l.classes[best]
}

// KNN votes among the k nearest stored samples (euclidean distance).
// Ties in the vote go to the smallest class id.
type KNN struct {
	k       int
	samples []SparseVector
	labels  []int
}

func newKNN(spec ClassifierSpec, numFeatures int) (*KNN, error) {
	if len(spec.Samples) == 0 {
		return nil, fmt.Errorf("%w: knn model has no samples", ErrInvalidModel)
	}
	if spec.K < 1 || spec.K > len(spec.Samples) {
		return nil, fmt.Errorf("%w: k=%d with %d samples", ErrInvalidModel, spec.K, len(spec.Samples))
	}
	m := &KNN{
		k:       spec.K,
		samples: make([]SparseVector, 0, len(spec.Samples)),
		labels:  make([]int, 0, len(spec.Samples)),
	}
	for i, s := range spec.Samples {
		if len(s.Indices) != len(s.Values) {
			return nil, fmt.Errorf("%w: sample %d has %d indices and %d values", ErrInvalidModel, i, len(s.Indices), len(s.Values))
		}
		prev := -1
		for _, idx := range s.Indices {
			if idx <= prev || idx >= numFeatures {
				return nil, fmt.Errorf("%w: sample %d has bad index %d", ErrInvalidModel, i, idx)
			}
			prev = idx
		}
		m.samples = append(m.samples, SparseVector{Indices: s.Indices, Values: s.Values})
		m.labels = append(m.labels, s.Label)
	}
	return m, nil
}

func (m *KNN) Kind() string { return KindKNN }

func (m *KNN) Predict(x SparseVector) int {
	type neighbor struct {
		dist float64
		pos  int
	}
	all := make([]neighbor, len(m.samples))
	for i, s := range m.samples {
		all[i] = neighbor{dist: x.SquaredDistance(s), pos: i}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].dist < all[j].dist })

	votes := make(map[int]int, m.k)
	for _, n := range all[:m.k] {
		votes[m.labels[n.pos]]++
	}
	best, bestVotes := 0, -1
	for label, v := range votes {
		if v > bestVotes || (v == bestVotes && label < best) {
			best, bestVotes = label, v
		}
	}
	return best
}
