package model

import "math"

// SparseVector is a feature vector with indices in ascending order.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries.
func (v SparseVector) Len() int { return len(v.Indices) }

// Dot multiplies v by a dense row. Indices outside the row are ignored.
func (v SparseVector) Dot(row []float64) float64 {
	var s float64
	for i, idx := range v.Indices {
		if idx < len(row) {
			s += v.Values[i] * row[idx]
		}
	}
	return s
}

// SquaredDistance returns the squared euclidean distance between two sparse vectors.
func (v SparseVector) SquaredDistance(o SparseVector) float64 {
	var s float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] == o.Indices[j]:
			d := v.Values[i] - o.Values[j]
			s += d * d
			i++
			j++
		case v.Indices[i] < o.Indices[j]:
			s += v.Values[i] * v.Values[i]
			i++
		default:
			s += o.Values[j] * o.Values[j]
			j++
		}
	}
	for ; i < len(v.Indices); i++ {
		s += v.Values[i] * v.Values[i]
	}
	for ; j < len(o.Indices); j++ {
		s += o.Values[j] * o.Values[j]
	}
	return s
}

func (v SparseVector) normalize(kind string) {
	var n float64
	switch kind {
	case NormL1:
		for _, x := range v.Values {
			n += math.Abs(x)
		}
	case NormL2:
		for _, x := range v.Values {
			n += x * x
		}
		n = math.Sqrt(n)
	default:
		return
	}
	if n == 0 {
		return
	}
	for i := range v.Values {
		v.Values[i] /= n
	}
}
