package trunk

import (
	"math"
	"strings"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// centerline returns the ring center at normalized position t: the
// sinusoidal bend plus the constant eccentric offset, with z advancing
// linearly along the length.
func centerline(p *ShapeParameters, t float64) v3.Vec {
	phase := 2 * math.Pi * float64(p.CurveCount) * t
	ea := sdf.DtoR(p.EccentricityAngle)
	return v3.Vec{
		X: p.CurveStrength*math.Sin(phase) + p.EccentricityOffset*math.Cos(ea),
		Y: p.CurveStrength*math.Cos(phase) + p.EccentricityOffset*math.Sin(ea),
		Z: p.Length * t,
	}
}

// twistRotation returns the progressive twist at normalized position t,
// a rotation of twist_angle*t degrees about the configured axis.
func twistRotation(p *ShapeParameters, t float64) sdf.M44 {
	angle := sdf.DtoR(p.TwistAngle) * t
	switch strings.ToUpper(p.TwistDirection) {
	case "X":
		return sdf.RotateX(angle)
	case "Y":
		return sdf.RotateY(angle)
	default:
		return sdf.RotateZ(angle)
	}
}
