package tfidf

import (
	"math"
	"sort"
)

// Term is a single index-weight pair in a sparse vector.
type Term struct {
	Index  int
	Weight float64
}

// Vector is a sparse TF-IDF vector, always sorted by Index.
type Vector []Term

// NewVector creates a sorted Vector from an index-weight map.
func NewVector(weights map[int]float64) Vector {
	if len(weights) == 0 {
		return nil
	}
	v := make(Vector, 0, len(weights))
	for idx, w := range weights {
		v = append(v, Term{Index: idx, Weight: w})
	}
	sort.Slice(v, func(i, j int) bool {
		return v[i].Index < v[j].Index
	})
	return v
}

// Norm is the Euclidean length of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, t := range v {
		sum += t.Weight * t.Weight
	}
	return math.Sqrt(sum)
}

// Normalize returns v scaled to unit length. A zero vector stays zero.
func (v Vector) Normalize() Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	out := make(Vector, len(v))
	for i, t := range v {
		out[i] = Term{Index: t.Index, Weight: t.Weight / n}
	}
	return out
}

// CosineSimilarity computes the cosine of the angle between two sorted
// sparse vectors with a merge-join. Either vector empty yields 0.
func CosineSimilarity(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index == b[j].Index:
			dot += a[i].Weight * b[j].Weight
			normA += a[i].Weight * a[i].Weight
			normB += b[j].Weight * b[j].Weight
			i++
			j++
		case a[i].Index < b[j].Index:
			normA += a[i].Weight * a[i].Weight
			i++
		default:
			normB += b[j].Weight * b[j].Weight
			j++
		}
	}

	for ; i < len(a); i++ {
		normA += a[i].Weight * a[i].Weight
	}
	for ; j < len(b); j++ {
		normB += b[j].Weight * b[j].Weight
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	sim := dot / denom
	if sim > 1 {
		return 1
	}
	return sim
}
