// Package trunk generates log-shaped meshes from flat shape parameter
// records: tapered, optionally elliptical cross-section rings deformed by
// flanges, grooves and coherent bark noise, bent along a sinusoidal
// centerline and twisted about an axis, then stitched into a quad surface
// with polygon end caps.
package trunk

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Taper shapes.
const (
	TaperLinear      = "linear"
	TaperExponential = "exponential"
	TaperQuadratic   = "quadratic"
)

// ShapeParameters is one immutable parameter record describing a single
// log. Field names mirror the on-disk JSON keys.
type ShapeParameters struct {
	Texture            string  `json:"texture"`
	Name               string  `json:"name"`
	Length             float64 `json:"length"`
	RadiusStart        float64 `json:"radius_start"`
	RadiusCenter       float64 `json:"radius_center"`
	RadiusEnd          float64 `json:"radius_end"`
	Rings              int     `json:"rings"`
	VertsPerRing       int     `json:"verts_per_ring"`
	TaperShape         string  `json:"taper_shape"`
	TaperRate          float64 `json:"taper_rate"`
	CurveCount         int     `json:"curve_count"`
	CurveStrength      float64 `json:"curve_strength"`
	TwistAngle         float64 `json:"twist_angle"`
	TwistDirection     string  `json:"twist_direction"`
	EllipseRatio       float64 `json:"ellipse_ratio"`
	OvalRegionFraction float64 `json:"oval_region_fraction"`
	EccentricityOffset float64 `json:"eccentricity_offset"`
	EccentricityAngle  float64 `json:"eccentricity_angle"`
	GrooveCount        int     `json:"groove_count"`
	GrooveWidth        float64 `json:"groove_width"`
	GrooveDepth        float64 `json:"groove_depth"`
	NoiseScale         float64 `json:"noise_scale"`
	BarkRoughnessDepth float64 `json:"bark_roughness_depth"`
	BarkRoughnessLevel float64 `json:"bark_roughness_level"`
	FlangeCount        int     `json:"flange_count"`
	FlangeWidth        float64 `json:"flange_width"`
	Hue                float64 `json:"hue"`
	Saturation         float64 `json:"saturation"`
	Value              float64 `json:"value"`
	BumpStrength       float64 `json:"bump_strength"`
	DispStrength       float64 `json:"disp_strength"`
	CapDispStrength    float64 `json:"cap_disp_strength"`
}

// Defaults returns the canonical parameter record. Every field a record
// may omit takes its value from here.
func Defaults() *ShapeParameters {
	return &ShapeParameters{
		Texture:            "random",
		Name:               "Log",
		Length:             5.0,
		RadiusStart:        0.5,
		RadiusCenter:       0.45,
		RadiusEnd:          0.4,
		Rings:              30,
		VertsPerRing:       80,
		TaperShape:         TaperQuadratic,
		TaperRate:          8.0,
		CurveCount:         0,
		CurveStrength:      0.3,
		TwistAngle:         0.0,
		TwistDirection:     "Z",
		EllipseRatio:       1.1,
		OvalRegionFraction: 0.8,
		EccentricityOffset: 0.5,
		EccentricityAngle:  0.0,
		GrooveCount:        2,
		GrooveWidth:        math.Pi / 4,
		GrooveDepth:        0.02,
		NoiseScale:         3.0,
		BarkRoughnessDepth: 0.1,
		BarkRoughnessLevel: 1.0,
		FlangeCount:        3,
		FlangeWidth:        0.05,
		Hue:                0.02,
		Saturation:         1.1,
		Value:              1.05,
		BumpStrength:       1.0,
		DispStrength:       0.05,
		CapDispStrength:    0.03,
	}
}

// ValidationError reports a parameter that is missing or outside its
// documented range. Generation never starts once one is raised.
type ValidationError struct {
	Param      string
	Value      any
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parameter %q = %v: %s", e.Param, e.Value, e.Constraint)
}

// rangeCheck is one numeric bound from the parameter documentation.
type rangeCheck struct {
	param    string
	value    float64
	min, max float64
}

// Validate checks the record against the documented ranges. It returns a
// *ValidationError naming the first offending parameter.
func (p *ShapeParameters) Validate() error {
	if p.Name == "" {
		return &ValidationError{Param: "name", Value: p.Name, Constraint: "must not be empty"}
	}

	checks := []rangeCheck{
		{"length", p.Length, 0.1, 20.0},
		{"radius_start", p.RadiusStart, 0.01, 5.0},
		{"radius_center", p.RadiusCenter, 0.01, 5.0},
		{"radius_end", p.RadiusEnd, 0.01, 5.0},
		{"rings", float64(p.Rings), 3, 200},
		{"verts_per_ring", float64(p.VertsPerRing), 3, 512},
		{"taper_rate", p.TaperRate, 0.1, 20.0},
		{"curve_count", float64(p.CurveCount), 0, 10},
		{"curve_strength", p.CurveStrength, 0.0, 5.0},
		{"twist_angle", p.TwistAngle, 0.0, 360.0},
		{"ellipse_ratio", p.EllipseRatio, 0.1, 5.0},
		{"oval_region_fraction", p.OvalRegionFraction, 0.0, 1.0},
		{"eccentricity_offset", p.EccentricityOffset, 0.0, 2.0},
		{"eccentricity_angle", p.EccentricityAngle, 0.0, 360.0},
		{"groove_count", float64(p.GrooveCount), 0, 20},
		{"groove_width", p.GrooveWidth, 0.0, math.Pi},
		{"groove_depth", p.GrooveDepth, 0.0, 1.0},
		{"noise_scale", p.NoiseScale, 0.0, 10.0},
		{"bark_roughness_depth", p.BarkRoughnessDepth, 0.0, 1.0},
		{"bark_roughness_level", p.BarkRoughnessLevel, 0.0, 5.0},
		{"flange_count", float64(p.FlangeCount), 0, 10},
		{"flange_width", p.FlangeWidth, 0.0, 1.0},
		{"hue", p.Hue, 0.0, 1.0},
		{"saturation", p.Saturation, 0.0, 2.0},
		{"value", p.Value, 0.0, 2.0},
		{"bump_strength", p.BumpStrength, 0.0, 5.0},
		{"disp_strength", p.DispStrength, 0.0, 1.0},
		{"cap_disp_strength", p.CapDispStrength, 0.0, 1.0},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return &ValidationError{
				Param:      c.param,
				Value:      c.value,
				Constraint: fmt.Sprintf("must be within [%g, %g]", c.min, c.max),
			}
		}
	}

	switch p.TaperShape {
	case TaperLinear, TaperExponential, TaperQuadratic:
	default:
		return &ValidationError{
			Param:      "taper_shape",
			Value:      p.TaperShape,
			Constraint: "must be linear, exponential or quadratic",
		}
	}

	switch strings.ToUpper(p.TwistDirection) {
	case "X", "Y", "Z":
	default:
		return &ValidationError{
			Param:      "twist_direction",
			Value:      p.TwistDirection,
			Constraint: "must be X, Y or Z",
		}
	}

	if p.Texture != "random" {
		idx, err := strconv.Atoi(p.Texture)
		if err != nil || idx < 1 {
			return &ValidationError{
				Param:      "texture",
				Value:      p.Texture,
				Constraint: `must be "random" or a positive set number`,
			}
		}
	}

	return nil
}

// Parse decodes a parameter record from JSON. Missing keys take their
// defaults, unknown keys are ignored, and the merged record is validated.
func Parse(data []byte) (*ShapeParameters, error) {
	p := Defaults()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decoding parameters: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseFile reads and parses a parameter record from disk.
func ParseFile(path string) (*ShapeParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return p, nil
}
