package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizer_Transform(t *testing.T) {
	t.Parallel()

	base := VectorizerSpec{
		Vocabulary: map[string]int{"data": 0, "science": 1, "data science": 2},
		IDF:        []float64{1, 2, 3},
		Norm:       NormNone,
		NGramRange: [2]int{1, 2},
	}

	t.Run("raw counts times idf", func(t *testing.T) {
		v, err := NewVectorizer(base)
		require.NoError(t, err)
		got := v.Transform("Data science data")
		assert.Equal(t, []int{0, 1, 2}, got.Indices)
		assert.Equal(t, []float64{2, 2, 3}, got.Values)
	})

	t.Run("sublinear tf", func(t *testing.T) {
		spec := base
		spec.SublinearTF = true
		v, err := NewVectorizer(spec)
		require.NoError(t, err)
		got := v.Transform("data science data")
		assert.InDelta(t, 1+math.Log(2), got.Values[0], 1e-12)
		assert.InDelta(t, 2, got.Values[1], 1e-12)
	})

	t.Run("l2 norm by default", func(t *testing.T) {
		spec := base
		spec.Norm = ""
		v, err := NewVectorizer(spec)
		require.NoError(t, err)
		got := v.Transform("data science data")
		n := math.Sqrt(17)
		assert.InDeltaSlice(t, []float64{2 / n, 2 / n, 3 / n}, got.Values, 1e-12)
	})

	t.Run("l1 norm", func(t *testing.T) {
		spec := base
		spec.Norm = NormL1
		v, err := NewVectorizer(spec)
		require.NoError(t, err)
		got := v.Transform("data science data")
		assert.InDeltaSlice(t, []float64{2.0 / 7, 2.0 / 7, 3.0 / 7}, got.Values, 1e-12)
	})

	t.Run("stop words removed before ngrams", func(t *testing.T) {
		spec := base
		spec.StopWords = []string{"data"}
		v, err := NewVectorizer(spec)
		require.NoError(t, err)
		got := v.Transform("data science")
		assert.Equal(t, []int{1}, got.Indices)
		assert.Equal(t, []float64{2}, got.Values)
	})

	t.Run("case sensitive when lowercase is off", func(t *testing.T) {
		spec := base
		off := false
		spec.Lowercase = &off
		v, err := NewVectorizer(spec)
		require.NoError(t, err)
		got := v.Transform("Data science")
		assert.Equal(t, []int{1}, got.Indices)
	})

	t.Run("empty text", func(t *testing.T) {
		v, err := NewVectorizer(base)
		require.NoError(t, err)
		got := v.Transform("")
		assert.Zero(t, got.Len())
	})
}

func TestNewVectorizer_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec VectorizerSpec
	}{
		{"empty vocabulary", VectorizerSpec{IDF: []float64{1}}},
		{"empty idf", VectorizerSpec{Vocabulary: map[string]int{"a": 0}}},
		{"column out of range", VectorizerSpec{Vocabulary: map[string]int{"a": 1}, IDF: []float64{1}}},
		{"unknown norm", VectorizerSpec{Vocabulary: map[string]int{"a": 0}, IDF: []float64{1}, Norm: "max"}},
		{"bad ngram range", VectorizerSpec{Vocabulary: map[string]int{"a": 0}, IDF: []float64{1}, NGramRange: [2]int{2, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVectorizer(tt.spec)
			assert.ErrorIs(t, err, ErrInvalidModel)
		})
	}
}
