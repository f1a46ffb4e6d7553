package scale

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoVectors is returned when Fit receives an empty matrix.
var ErrNoVectors = errors.New("no vectors to normalize")

// Strategy selects how per-dimension offsets and scales are computed.
type Strategy int

const (
	// Identity leaves features unscaled (normalization disabled).
	Identity Strategy = iota
	// ZScore centers on the mean and scales by the standard deviation.
	ZScore
	// MinMax maps each dimension's observed range onto [0, 1].
	MinMax
)

func (s Strategy) String() string {
	switch s {
	case Identity:
		return "Identity"
	case ZScore:
		return "ZScore"
	case MinMax:
		return "MinMax"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Model holds the fitted per-dimension transform: normalized = (x - Offset) / Scale.
// It is computed once over the full feature matrix and applied identically
// to every vector.
type Model struct {
	Strategy Strategy  `json:"strategy"`
	Offset   []float64 `json:"offset"`
	Scale    []float64 `json:"scale"`
}

// Fit computes a Model for the given matrix and strategy. All rows must
// share the matrix's dimensionality (enforced upstream by the feature
// matrix boundary).
func Fit(matrix [][]float64, strategy Strategy) (*Model, error) {
	if len(matrix) == 0 {
		return nil, ErrNoVectors
	}

	dim := len(matrix[0])
	m := &Model{
		Strategy: strategy,
		Offset:   make([]float64, dim),
		Scale:    make([]float64, dim),
	}

	switch strategy {
	case Identity:
		for d := range m.Scale {
			m.Scale[d] = 1
		}

	case ZScore:
		n := float64(len(matrix))
		for d := 0; d < dim; d++ {
			var sum float64
			for _, row := range matrix {
				sum += row[d]
			}
			mean := sum / n

			var sq float64
			for _, row := range matrix {
				diff := row[d] - mean
				sq += diff * diff
			}
			std := math.Sqrt(sq / n)
			if std == 0 {
				// Degenerate dimension: all values identical.
				std = 1
			}

			m.Offset[d] = mean
			m.Scale[d] = std
		}

	case MinMax:
		for d := 0; d < dim; d++ {
			lo, hi := matrix[0][d], matrix[0][d]
			for _, row := range matrix {
				if row[d] < lo {
					lo = row[d]
				}
				if row[d] > hi {
					hi = row[d]
				}
			}
			span := hi - lo
			if span == 0 {
				span = 1
			}

			m.Offset[d] = lo
			m.Scale[d] = span
		}

	default:
		return nil, fmt.Errorf("unsupported strategy: %v", strategy)
	}

	return m, nil
}

// Apply returns a normalized copy of the matrix; the input is never mutated.
func (m *Model) Apply(matrix [][]float64) [][]float64 {
	out := make([][]float64, len(matrix))
	for i, row := range matrix {
		normalized := make([]float64, len(row))
		for d, v := range row {
			normalized[d] = (v - m.Offset[d]) / m.Scale[d]
		}
		out[i] = normalized
	}

	return out
}

// Invert maps a vector from normalized space back into original feature
// space. This is how cluster centroids are de-normalized.
func (m *Model) Invert(vec []float64) []float64 {
	out := make([]float64, len(vec))
	for d, v := range vec {
		out[d] = v*m.Scale[d] + m.Offset[d]
	}

	return out
}
