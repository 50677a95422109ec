package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
)

// Normalization kinds of the TF-IDF output.
const (
	NormL2   = "l2"
	NormL1   = "l1"
	NormNone = "none"
)

// VectorizerSpec is the serialized TF-IDF vectorizer.
type VectorizerSpec struct {
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	Lowercase   *bool          `json:"lowercase,omitempty"`
	SublinearTF bool           `json:"sublinear_tf"`
	Norm        string         `json:"norm,omitempty"`
	NGramRange  [2]int         `json:"ngram_range"`
	StopWords   []string       `json:"stop_words,omitempty"`
}

// Vectorizer turns cleaned resume text into TF-IDF features.
// It is immutable after construction and safe for concurrent use.
type Vectorizer struct {
	vocab       map[string]int
	idf         []float64
	lowercase   bool
	sublinearTF bool
	norm        string
	minN, maxN  int
	stop        map[string]struct{}
}

// NewVectorizer validates spec and builds a Vectorizer.
func NewVectorizer(spec VectorizerSpec) (*Vectorizer, error) {
	if len(spec.Vocabulary) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", ErrInvalidModel)
	}
	if len(spec.IDF) == 0 {
		return nil, fmt.Errorf("%w: empty idf", ErrInvalidModel)
	}
	for term, idx := range spec.Vocabulary {
		if idx < 0 || idx >= len(spec.IDF) {
			return nil, fmt.Errorf("%w: term %q has column %d, idf has %d entries", ErrInvalidModel, term, idx, len(spec.IDF))
		}
	}
	norm := spec.Norm
	switch norm {
	case "":
		norm = NormL2
	case NormL1, NormL2, NormNone:
	default:
		return nil, fmt.Errorf("%w: unknown norm %q", ErrInvalidModel, spec.Norm)
	}
	minN, maxN := spec.NGramRange[0], spec.NGramRange[1]
	if minN == 0 && maxN == 0 {
		minN, maxN = 1, 1
	}
	if minN < 1 || maxN < minN {
		return nil, fmt.Errorf("%w: bad ngram_range %v", ErrInvalidModel, spec.NGramRange)
	}
	lowercase := true
	if spec.Lowercase != nil {
		lowercase = *spec.Lowercase
	}
	stop := make(map[string]struct{}, len(spec.StopWords))
	for _, w := range spec.StopWords {
		stop[w] = struct{}{}
	}
	return &Vectorizer{
		vocab:       spec.Vocabulary,
		idf:         spec.IDF,
		lowercase:   lowercase,
		sublinearTF: spec.SublinearTF,
		norm:        norm,
		minN:        minN,
		maxN:        maxN,
		stop:        stop,
	}, nil
}

// NumFeatures returns the width of produced vectors.
func (v *Vectorizer) NumFeatures() int { return len(v.idf) }

// Transform vectorizes one document. Empty input yields an empty vector.
func (v *Vectorizer) Transform(text string) SparseVector {
	tokens := nlp.Tokenize(text, v.lowercase)
	if len(v.stop) > 0 {
		kept := tokens[:0]
		for _, t := range tokens {
			if _, ok := v.stop[t]; !ok {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}

	counts := make(map[int]float64)
	for _, term := range nlp.NGrams(tokens, v.minN, v.maxN) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}

	out := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		out.Indices = append(out.Indices, idx)
	}
	sort.Ints(out.Indices)
	for _, idx := range out.Indices {
		tf := counts[idx]
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		out.Values = append(out.Values, tf*v.idf[idx])
	}
	out.normalize(v.norm)
	return out
}
