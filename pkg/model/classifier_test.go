package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(pairs ...float64) SparseVector {
	var v SparseVector
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Indices = append(v.Indices, int(pairs[i]))
		v.Values = append(v.Values, pairs[i+1])
	}
	return v
}

func TestLinear_Predict(t *testing.T) {
	t.Parallel()

	clf, err := NewClassifier(ClassifierSpec{
		Kind:      KindLinear,
		Classes:   []int{0, 6, 20},
		Coef:      [][]float64{{1, 0}, {0, 1}, {0.5, 0.5}},
		Intercept: []float64{0, 0, 0.2},
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, clf.Predict(vec(0, 1)))
	assert.Equal(t, 6, clf.Predict(vec(1, 1)))
	assert.Equal(t, 20, clf.Predict(vec(0, 0.5, 1, 0.5)))
	// zero vector: intercepts decide
	assert.Equal(t, 20, clf.Predict(SparseVector{}))
}

func TestLinear_Binary(t *testing.T) {
	t.Parallel()

	clf, err := NewClassifier(ClassifierSpec{
		Kind:      KindLinear,
		Classes:   []int{3, 7},
		Coef:      [][]float64{{1, -1}},
		Intercept: []float64{0},
	}, 2)
	require.NoError(t, err)

	assert.Equal(t, 7, clf.Predict(vec(0, 1)))
	assert.Equal(t, 3, clf.Predict(vec(1, 1)))
	assert.Equal(t, 3, clf.Predict(SparseVector{}))
}

func TestKNN_Predict(t *testing.T) {
	t.Parallel()

	spec := ClassifierSpec{
		Kind: KindKNN,
		K:    1,
		Samples: []SampleSpec{
			{Indices: []int{0}, Values: []float64{1}, Label: 3},
			{Indices: []int{0}, Values: []float64{0.9}, Label: 1},
			{Indices: []int{1}, Values: []float64{1}, Label: 2},
		},
	}

	clf, err := NewClassifier(spec, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, clf.Predict(vec(0, 1)))
	assert.Equal(t, 2, clf.Predict(vec(1, 0.8)))

	// two neighbours, one vote each: smallest class id wins
	spec.K = 2
	clf, err = NewClassifier(spec, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, clf.Predict(vec(0, 1)))
}

func TestNewClassifier_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec ClassifierSpec
	}{
		{"unknown kind", ClassifierSpec{Kind: "tree"}},
		{"single class", ClassifierSpec{Kind: KindLinear, Classes: []int{1}, Coef: [][]float64{{1, 1}}}},
		{"coef rows", ClassifierSpec{Kind: KindLinear, Classes: []int{1, 2, 3}, Coef: [][]float64{{1, 1}}}},
		{"coef width", ClassifierSpec{Kind: KindLinear, Classes: []int{1, 2}, Coef: [][]float64{{1}, {1}}}},
		{"intercept size", ClassifierSpec{Kind: KindLinear, Classes: []int{1, 2}, Coef: [][]float64{{1, 1}, {1, 1}}, Intercept: []float64{0}}},
		{"knn without samples", ClassifierSpec{Kind: KindKNN, K: 1}},
		{"knn k too large", ClassifierSpec{Kind: KindKNN, K: 2, Samples: []SampleSpec{{Label: 1}}}},
		{"knn unsorted indices", ClassifierSpec{Kind: KindKNN, K: 1, Samples: []SampleSpec{{Indices: []int{1, 0}, Values: []float64{1, 1}}}}},
		{"knn index out of range", ClassifierSpec{Kind: KindKNN, K: 1, Samples: []SampleSpec{{Indices: []int{5}, Values: []float64{1}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClassifier(tt.spec, 2)
			assert.ErrorIs(t, err, ErrInvalidModel)
		})
	}
}

func TestSparseVector_SquaredDistance(t *testing.T) {
	t.Parallel()

	a := vec(0, 1, 2, 2)
	b := vec(1, 1, 2, 1)
	assert.InDelta(t, 1+1+1, a.SquaredDistance(b), 1e-12)
	assert.InDelta(t, 0, a.SquaredDistance(a), 1e-12)
	assert.InDelta(t, 5, a.SquaredDistance(SparseVector{}), 1e-12)
}
