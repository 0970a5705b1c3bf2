// Package report wraps normalization output with statistics and metadata and
// persists the result as JSON.
package report

import (
	"bytes"
	"encoding/json"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/compozy/minmax/engine/minmax"
)

const (
	// TimestampLayout is the ISO-8601 local date-time layout used for generation timestamps.
	TimestampLayout = "2006-01-02T15:04:05.000000"
	// WholeSecondLayout is used instead when the timestamp has no microseconds.
	WholeSecondLayout = "2006-01-02T15:04:05"
)

type (
	// Report is the structured result of one normalization run.
	Report struct {
		Meta Meta `json:"meta"  yaml:"meta"`
		Data Data `json:"datos" yaml:"datos"`
	}

	// Meta identifies the engine and the moment the report was generated.
	Meta struct {
		GeneratedAt string `json:"fecha_generacion"    yaml:"fecha_generacion"`
		Version     string `json:"version"             yaml:"version"`
		Author      string `json:"autor"               yaml:"autor"`
		UpdatedAt   string `json:"fecha_actualizacion" yaml:"fecha_actualizacion"`
	}

	// Data holds the input, its normalized form and summary statistics.
	Data struct {
		Original   []float64   `json:"originales"             yaml:"originales"`
		Normalized []float64   `json:"normalizados"           yaml:"normalizados"`
		Stats      *Statistics `json:"estadisticas,omitempty" yaml:"estadisticas,omitempty"`
	}

	// Statistics summarizes the original sequence.
	Statistics struct {
		Min   float64 `json:"min"   yaml:"min"`
		Max   float64 `json:"max"   yaml:"max"`
		Range float64 `json:"rango" yaml:"rango"`
	}
)

// Option configures a Builder.
type Option func(*Builder)

// Builder assembles reports. The zero value is not usable; call NewBuilder.
type Builder struct {
	now  func() time.Time
	info minmax.EngineInfo
}

// WithClock overrides the time source used for the generation timestamp.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithInfo replaces the engine metadata block.
func WithInfo(info minmax.EngineInfo) Option {
	return func(b *Builder) {
		b.info = info
	}
}

// WithAuthor overrides the author field; an empty author keeps the default.
func WithAuthor(author string) Option {
	return func(b *Builder) {
		if author = strings.TrimSpace(author); author != "" {
			b.info.Author = author
		}
	}
}

// NewBuilder returns a Builder using the wall clock and the engine's own metadata.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		now:  time.Now,
		info: minmax.Info(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build normalizes original and wraps the result into a Report.
// Engine errors are returned as-is. Statistics are left nil for an empty
// sequence, where min and max are undefined. A sequence whose statistics are
// not finite, such as a lone infinity or a range past the float64 limit,
// fails with a value error since JSON cannot carry them.
func (b *Builder) Build(original []float64) (*Report, error) {
	normalized, err := minmax.Normalize(original)
	if err != nil {
		return nil, err
	}
	stats, err := summarize(original)
	if err != nil {
		return nil, err
	}
	orig := slices.Clone(original)
	if orig == nil {
		orig = []float64{}
	}
	return &Report{
		Meta: Meta{
			GeneratedAt: formatTimestamp(b.now()),
			Version:     b.info.Version,
			Author:      b.info.Author,
			UpdatedAt:   b.info.UpdatedAt,
		},
		Data: Data{
			Original:   orig,
			Normalized: normalized,
			Stats:      stats,
		},
	}, nil
}

// Build uses a default Builder.
func Build(original []float64) (*Report, error) {
	return NewBuilder().Build(original)
}

func formatTimestamp(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(WholeSecondLayout)
	}
	return t.Format(TimestampLayout)
}

func summarize(values []float64) (*Statistics, error) {
	if len(values) == 0 {
		return nil, nil
	}
	lo, hi, err := minmax.Bounds(values)
	if err != nil {
		return nil, err
	}
	span := hi - lo
	if math.IsInf(span, 0) {
		return nil, minmax.NewValueError("range of the sequence exceeds the float64 limit")
	}
	return &Statistics{Min: lo, Max: hi, Range: span}, nil
}

// JSON encodes the report with the given number of spaces per indent level.
func (r *Report) JSON(indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
