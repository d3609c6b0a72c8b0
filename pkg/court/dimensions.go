// Package court assembles the solids of a doubles tennis court.
//
// Coordinates are in meters with Y up. The court length runs along Z,
// its width along X, and the net stands on the plane z = 0.
package court

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'court'
func tracer() tracing.Trace {
	return tracing.Select("court")
}

// ErrInvalidDimensions is wrapped by every validation failure
var ErrInvalidDimensions = errors.New("invalid court dimensions")

// Dimensions holds the physical measurements a court is built from.
// It is a plain value: copies are independent.
type Dimensions struct {
	CourtLength         float64 `yaml:"court_length"`
	DoublesWidth        float64 `yaml:"doubles_width"`
	SinglesWidth        float64 `yaml:"singles_width"`
	ServiceLineDistance float64 `yaml:"service_line_distance"` // from the net
	NetPostHeight       float64 `yaml:"net_post_height"`
	NetCenterHeight     float64 `yaml:"net_center_height"`
	NetWidth            float64 `yaml:"net_width"`
	NetThickness        float64 `yaml:"net_thickness"`
	NetPostDiameter     float64 `yaml:"net_post_diameter"`
	LineWidth           float64 `yaml:"line_width"`
	BaselineWidth       float64 `yaml:"baseline_width"`
	CenterMarkLength    float64 `yaml:"center_mark_length"`
	PostSections        int     `yaml:"post_sections"` // facets around each net post
}

// DefaultDimensions returns the ITF measurements of a doubles court
func DefaultDimensions() Dimensions {
	return Dimensions{
		CourtLength:         23.77, // 78ft
		DoublesWidth:        10.97, // 36ft
		SinglesWidth:        8.23,  // 27ft
		ServiceLineDistance: 6.4,   // 21ft
		NetPostHeight:       1.067, // 42in
		NetCenterHeight:     0.914, // 36in
		NetWidth:            12.8,  // 42ft
		NetThickness:        0.003,
		NetPostDiameter:     0.07,
		LineWidth:           0.051, // 2in
		BaselineWidth:       0.102, // 4in
		CenterMarkLength:    0.2,
		PostSections:        32,
	}
}

// Validate checks that every measurement is positive and that the
// measurements fit together. It is called before any geometry is built.
func (d Dimensions) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"court_length", d.CourtLength},
		{"doubles_width", d.DoublesWidth},
		{"singles_width", d.SinglesWidth},
		{"service_line_distance", d.ServiceLineDistance},
		{"net_post_height", d.NetPostHeight},
		{"net_center_height", d.NetCenterHeight},
		{"net_width", d.NetWidth},
		{"net_thickness", d.NetThickness},
		{"net_post_diameter", d.NetPostDiameter},
		{"line_width", d.LineWidth},
		{"baseline_width", d.BaselineWidth},
		{"center_mark_length", d.CenterMarkLength},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidDimensions, p.name, p.value)
		}
	}

	switch {
	case d.SinglesWidth >= d.DoublesWidth:
		return fmt.Errorf("%w: singles_width %v must be less than doubles_width %v",
			ErrInvalidDimensions, d.SinglesWidth, d.DoublesWidth)
	case d.ServiceLineDistance >= d.CourtLength/2:
		return fmt.Errorf("%w: service_line_distance %v must be less than half of court_length %v",
			ErrInvalidDimensions, d.ServiceLineDistance, d.CourtLength)
	case d.NetCenterHeight > d.NetPostHeight:
		return fmt.Errorf("%w: net_center_height %v exceeds net_post_height %v",
			ErrInvalidDimensions, d.NetCenterHeight, d.NetPostHeight)
	case d.NetWidth < d.DoublesWidth:
		return fmt.Errorf("%w: net_width %v is narrower than doubles_width %v",
			ErrInvalidDimensions, d.NetWidth, d.DoublesWidth)
	case d.CenterMarkLength >= d.SinglesWidth:
		return fmt.Errorf("%w: center_mark_length %v must be less than singles_width %v",
			ErrInvalidDimensions, d.CenterMarkLength, d.SinglesWidth)
	case d.PostSections < 3:
		return fmt.Errorf("%w: post_sections must be at least 3, got %d", ErrInvalidDimensions, d.PostSections)
	}
	return nil
}

// LoadDimensions reads a YAML file of dimension overrides. Fields missing
// from the file keep their default value; unknown fields are an error.
// The result is validated.
func LoadDimensions(path string) (Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dimensions{}, fmt.Errorf("open dimensions: %w", err)
	}
	defer f.Close()

	d, err := DecodeDimensions(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded court dimensions from %s", path)
	return d, nil
}

// DecodeDimensions reads YAML overrides from r on top of DefaultDimensions
func DecodeDimensions(r io.Reader) (Dimensions, error) {
	d := DefaultDimensions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Dimensions{}, fmt.Errorf("decode dimensions: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Dimensions{}, err
	}
	return d, nil
}

// YAML renders the dimensions in the format LoadDimensions reads
func (d Dimensions) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
