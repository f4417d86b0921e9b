package trunk

import (
	"errors"
	"math"
	"testing"
)

// cylinderParams returns a record for a plain untapered cylinder with
// every deformation switched off, so radii come out exact.
func cylinderParams() *ShapeParameters {
	p := Defaults()
	p.TaperShape = TaperLinear
	p.RadiusStart = 0.5
	p.RadiusCenter = 0.5
	p.RadiusEnd = 0.5
	p.EllipseRatio = 1.0
	p.OvalRegionFraction = 0.0
	p.EccentricityOffset = 0.0
	p.CurveCount = 0
	p.CurveStrength = 0.0
	p.TwistAngle = 0.0
	p.GrooveCount = 0
	p.GrooveDepth = 0.0
	p.FlangeCount = 0
	p.FlangeWidth = 0.0
	p.BarkRoughnessDepth = 0.0
	return p
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTaperRadius(t *testing.T) {
	tests := []struct {
		name                string
		shape               string
		rate                float64
		start, center, end  float64
		t                   float64
		want                float64
	}{
		{"linear at start", TaperLinear, 8, 0.5, 0.45, 0.4, 0.0, 0.5},
		{"linear at end", TaperLinear, 8, 0.5, 0.45, 0.4, 1.0, 0.4},
		{"linear midpoint", TaperLinear, 8, 0.5, 0.45, 0.4, 0.5, 0.45},
		{"exponential at start", TaperExponential, 2, 0.5, 0.45, 0.4, 0.0, 0.5},
		{"exponential at end", TaperExponential, 2, 0.5, 0.45, 0.4, 1.0, 0.4},
		{"exponential midpoint", TaperExponential, 2, 0.5, 0.45, 0.4, 0.5, 0.475},
		{"quadratic at start", TaperQuadratic, 8, 0.5, 0.45, 0.4, 0.0, 0.5},
		{"quadratic at end", TaperQuadratic, 8, 0.5, 0.45, 0.4, 1.0, 0.4},
		{"quadratic midpoint", TaperQuadratic, 8, 0.5, 0.45, 0.4, 0.5, 0.45},
		{"quadratic constant radii", TaperQuadratic, 8, 0.3, 0.3, 0.3, 0.7, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Defaults()
			p.TaperShape = tt.shape
			p.TaperRate = tt.rate
			p.RadiusStart = tt.start
			p.RadiusCenter = tt.center
			p.RadiusEnd = tt.end

			if got := taperRadius(p, tt.t); !almostEqual(got, tt.want) {
				t.Errorf("taperRadius(t=%g) = %g, want %g", tt.t, got, tt.want)
			}
		})
	}
}

func TestRingRadii_EllipseRegion(t *testing.T) {
	p := cylinderParams()
	p.EllipseRatio = 2.0
	p.OvalRegionFraction = 0.8

	rx, ry := ringRadii(p, 0.5, 1)
	if !almostEqual(rx, 1.0) || !almostEqual(ry, 0.25) {
		t.Errorf("inside oval region: got (%g, %g), want (1, 0.25)", rx, ry)
	}

	rx, ry = ringRadii(p, 0.9, 1)
	if !almostEqual(rx, 0.5) || !almostEqual(ry, 0.5) {
		t.Errorf("outside oval region: got (%g, %g), want (0.5, 0.5)", rx, ry)
	}

	// The boundary itself is round, the region check is strict.
	rx, ry = ringRadii(p, 0.8, 1)
	if !almostEqual(rx, 0.5) || !almostEqual(ry, 0.5) {
		t.Errorf("at oval boundary: got (%g, %g), want (0.5, 0.5)", rx, ry)
	}
}

func TestRingRadii_FlangeRings(t *testing.T) {
	tests := []struct {
		name    string
		rings   int
		flanges int
		want    []int
	}{
		{"thirty rings three flanges", 30, 3, []int{0, 10, 20, 30}},
		{"ten rings three flanges", 10, 3, []int{0, 3, 6, 9}},
		{"more flanges than rings", 5, 7, []int{0, 1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := cylinderParams()
			p.Rings = tt.rings
			p.FlangeCount = tt.flanges
			p.FlangeWidth = 0.05

			var got []int
			for i := 0; i <= tt.rings; i++ {
				rx, _ := ringRadii(p, float64(i)/float64(tt.rings), i)
				if rx > 0.5 {
					got = append(got, i)
				}
			}

			if len(got) != len(tt.want) {
				t.Fatalf("flanged rings = %v, want %v", got, tt.want)
			}
			for k := range got {
				if got[k] != tt.want[k] {
					t.Fatalf("flanged rings = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestGrooveDepth(t *testing.T) {
	p := Defaults()
	p.GrooveCount = 2
	p.GrooveWidth = math.Pi / 4
	p.GrooveDepth = 0.02

	tests := []struct {
		name  string
		theta float64
		want  float64
	}{
		{"centered on angle zero", 0, 0.02},
		{"centered on second groove", math.Pi, 0.02},
		{"between grooves", math.Pi / 2, 0},
		{"just inside the edge", math.Pi/8 - 0.01, 0.02},
		{"just outside the edge", math.Pi/8 + 0.01, 0},
		{"wraps below angle zero", 2*math.Pi - 0.05, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grooveDepth(p, tt.theta); !almostEqual(got, tt.want) {
				t.Errorf("grooveDepth(%g) = %g, want %g", tt.theta, got, tt.want)
			}
		})
	}
}

func TestGrooveDepth_NoGrooves(t *testing.T) {
	p := Defaults()
	p.GrooveCount = 0

	for _, theta := range []float64{0, 1, math.Pi, 2 * math.Pi} {
		if got := grooveDepth(p, theta); got != 0 {
			t.Errorf("grooveDepth(%g) = %g, want 0", theta, got)
		}
	}
}

func TestRoughnessOffset_ZeroScale(t *testing.T) {
	p := Defaults()
	p.BarkRoughnessDepth = 0.1
	p.BarkRoughnessLevel = 1.0

	// A field that never returns zero, so any leak through the scale
	// guard shows up in the offset.
	flat := func(x, y, z float64) float64 { return -1 }

	p.NoiseScale = 0
	if got := roughnessOffset(p, 0.5, 1.0, flat); got != 0 {
		t.Errorf("roughnessOffset with zero scale = %g, want 0", got)
	}

	p.NoiseScale = 3
	if got := roughnessOffset(p, 0.5, 1.0, flat); !almostEqual(got, -0.1) {
		t.Errorf("roughnessOffset = %g, want -0.1", got)
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{5.5, 2, 1.5},
		{-0.3, 2, 1.7},
		{-4, 2, 0},
		{0, 2, 0},
	}

	for _, tt := range tests {
		if got := floorMod(tt.x, tt.y); !almostEqual(got, tt.want) {
			t.Errorf("floorMod(%g, %g) = %g, want %g", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRingProfile_FirstSampleOnXAxis(t *testing.T) {
	p := cylinderParams()

	pts, err := ringProfile(p, 0.5, 1, ZeroNoise)
	if err != nil {
		t.Fatalf("ringProfile() error = %v", err)
	}
	if len(pts) != p.VertsPerRing {
		t.Fatalf("got %d samples, want %d", len(pts), p.VertsPerRing)
	}
	if !almostEqual(pts[0].X, 0.5) || pts[0].Y != 0 {
		t.Errorf("first sample = (%g, %g), want (0.5, 0)", pts[0].X, pts[0].Y)
	}
}

func TestRingProfile_DegenerateRadius(t *testing.T) {
	p := cylinderParams()
	p.RadiusStart = 0.05
	p.RadiusCenter = 0.05
	p.RadiusEnd = 0.05
	p.GrooveCount = 1
	p.GrooveWidth = math.Pi / 2
	p.GrooveDepth = 0.06

	_, err := ringProfile(p, 0, 0, ZeroNoise)
	var derr *DegenerateGeometryError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DegenerateGeometryError, got %v", err)
	}
	if derr.Ring != 0 || derr.Sample != 0 {
		t.Errorf("error at ring %d sample %d, want ring 0 sample 0", derr.Ring, derr.Sample)
	}
}
