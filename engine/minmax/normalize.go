// Package minmax implements min-max scaling of numeric sequences into [0, 1].
package minmax

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// Version of the normalization engine, reported in every report's metadata.
	Version = "1.0.0"
	// Author is the static author field attached to report metadata.
	Author = "Tu Nombre"
	// UpdatedAt is the date the engine was last revised.
	UpdatedAt = "2024-03-15"
)

// SingleValue is the output for a one-element sequence, where the range is undefined.
const SingleValue = 0.5

// EngineInfo describes the engine for report metadata.
type EngineInfo struct {
	Version   string `json:"version"             yaml:"version"`
	Author    string `json:"autor"               yaml:"autor"`
	UpdatedAt string `json:"fecha_actualizacion" yaml:"fecha_actualizacion"`
}

// Info returns the engine metadata block.
func Info() EngineInfo {
	return EngineInfo{
		Version:   Version,
		Author:    Author,
		UpdatedAt: UpdatedAt,
	}
}

// Normalize maps every element x of values to (x - min) / (max - min).
//
// Degenerate inputs are handled before scaling, in this order: an empty
// sequence yields an empty sequence, a single element yields [0.5], and a
// sequence whose elements are all equal yields zeros. The input is never
// modified and the output is index-aligned with it.
func Normalize(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return []float64{}, nil
	}
	if len(values) == 1 {
		return []float64{SingleValue}, nil
	}
	lo, hi, err := Bounds(values)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	span := hi - lo
	if span == 0 {
		return out, nil
	}
	if math.IsInf(span, 0) {
		// span overflowed float64; scale on halved operands
		half := hi/2 - lo/2
		for i, x := range values {
			out[i] = (x/2 - lo/2) / half
		}
		return out, nil
	}
	for i, x := range values {
		out[i] = (x - lo) / span
	}
	return out, nil
}

// Bounds returns the minimum and maximum of values.
// It fails with ErrEmpty for an empty sequence and with a value error when an
// element is NaN or infinite.
func Bounds(values []float64) (lo, hi float64, err error) {
	if len(values) == 0 {
		return 0, 0, ErrEmpty
	}
	if err := checkFinite(values); err != nil {
		return 0, 0, err
	}
	return floats.Min(values), floats.Max(values), nil
}

func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) {
			return newValueError("all elements must be numeric: NaN is not comparable", i)
		}
		if math.IsInf(v, 0) {
			return newValueError("all elements must be finite", i)
		}
	}
	return nil
}
