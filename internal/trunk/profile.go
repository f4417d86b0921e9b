package trunk

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// DegenerateGeometryError reports a ring sample whose carved radius
// collapsed to zero or below, which would produce folded faces.
type DegenerateGeometryError struct {
	Ring   int
	Sample int
	Radius float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: ring %d sample %d has radius %g, must be positive",
		e.Ring, e.Sample, e.Radius)
}

// taperRadius returns the base radius at normalized position t in [0, 1].
func taperRadius(p *ShapeParameters, t float64) float64 {
	switch p.TaperShape {
	case TaperLinear:
		return p.RadiusStart + (p.RadiusEnd-p.RadiusStart)*t
	case TaperExponential:
		return p.RadiusStart + (p.RadiusEnd-p.RadiusStart)*math.Pow(t, p.TaperRate)
	default:
		// Quadratic Bezier through the center radius.
		u := 1 - t
		return u*u*p.RadiusStart + 2*u*t*p.RadiusCenter + t*t*p.RadiusEnd
	}
}

// ringRadii returns the X and Y radii of ring i at position t, before
// per-vertex carving. Rings below the oval region fraction are squashed
// into an ellipse, and flange rings are widened on both axes.
func ringRadii(p *ShapeParameters, t float64, i int) (rx, ry float64) {
	r := taperRadius(p, t)
	if t < p.OvalRegionFraction {
		rx, ry = r*p.EllipseRatio, r/p.EllipseRatio
	} else {
		rx, ry = r, r
	}
	if p.FlangeCount > 0 {
		step := p.Rings / p.FlangeCount
		if step < 1 {
			step = 1
		}
		if i%step == 0 {
			rx += p.FlangeWidth
			ry += p.FlangeWidth
		}
	}
	return rx, ry
}

// grooveDepth returns the radial cut at angle theta, zero outside the
// grooves. Grooves are hard-edged notches centered on multiples of the
// angular period, the first on theta 0.
func grooveDepth(p *ShapeParameters, theta float64) float64 {
	if p.GrooveCount <= 0 {
		return 0
	}
	period := 2 * math.Pi / float64(p.GrooveCount)
	off := floorMod(theta-period/2, period) - period/2
	if math.Abs(off) < p.GrooveWidth/2 {
		return p.GrooveDepth
	}
	return 0
}

// roughnessOffset returns the bark noise displacement at one sample.
// A zero noise scale switches roughness off rather than sampling the
// field at a single point for every vertex.
func roughnessOffset(p *ShapeParameters, t, theta float64, noise Noise3) float64 {
	if p.NoiseScale == 0 {
		return 0
	}
	return noise(t*p.NoiseScale, theta*p.NoiseScale, 0) * p.BarkRoughnessDepth * p.BarkRoughnessLevel
}

// floorMod is the modulo that follows the sign of the divisor, so the
// result of a positive period lands in [0, period) even for negative
// angles.
func floorMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}

// ringProfile samples the cross-section polygon of ring i at position t
// in the ring's local plane, z 0, angle 0 first, counter-clockwise.
func ringProfile(p *ShapeParameters, t float64, i int, noise Noise3) ([]v3.Vec, error) {
	rx, ry := ringRadii(p, t, i)
	pts := make([]v3.Vec, p.VertsPerRing)
	for j := range pts {
		theta := 2 * math.Pi * float64(j) / float64(p.VertsPerRing)
		carve := grooveDepth(p, theta)
		rough := roughnessOffset(p, t, theta, noise)
		sx := rx + rough - carve
		sy := ry + rough - carve
		if sx <= 0 || sy <= 0 {
			return nil, &DegenerateGeometryError{Ring: i, Sample: j, Radius: math.Min(sx, sy)}
		}
		pts[j] = v3.Vec{X: sx * math.Cos(theta), Y: sy * math.Sin(theta)}
	}
	return pts, nil
}
