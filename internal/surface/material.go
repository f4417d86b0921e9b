package surface

import "github.com/Faultbox/logforge/internal/trunk"

// Role says which texture family a mesh piece binds.
type Role int

const (
	RoleBark Role = iota
	RoleCrossSection
)

func (r Role) String() string {
	switch r {
	case RoleBark:
		return "bark"
	case RoleCrossSection:
		return "cross_section"
	default:
		return "unknown"
	}
}

// BarkMaterial describes the trunk surface: the four bark maps with a
// color grade and bump and displacement strengths. Declarative only, the
// renderer decides what to do with it.
type BarkMaterial struct {
	Name         string
	Color        string
	Normal       string
	Roughness    string
	Displacement string
	Hue          float64
	Saturation   float64
	Value        float64
	BumpStrength float64
	DispStrength float64
}

// CapMaterial describes the cut faces. The cross-section image drives
// color, roughness and displacement together.
type CapMaterial struct {
	Name         string
	CrossSection string
	DispStrength float64
}

// NewBarkMaterial binds one texture set and a record's grading scalars
// into the trunk material for that log.
func NewBarkMaterial(p *trunk.ShapeParameters, set TextureSet) BarkMaterial {
	return BarkMaterial{
		Name:         "BarkImagePBR_" + p.Name,
		Color:        set.Color,
		Normal:       set.Normal,
		Roughness:    set.Roughness,
		Displacement: set.Displacement,
		Hue:          p.Hue,
		Saturation:   p.Saturation,
		Value:        p.Value,
		BumpStrength: p.BumpStrength,
		DispStrength: p.DispStrength,
	}
}

// NewCapMaterial binds the cross-section image for that log's end caps.
func NewCapMaterial(p *trunk.ShapeParameters, set TextureSet) CapMaterial {
	return CapMaterial{
		Name:         "CapMat_" + p.Name,
		CrossSection: set.CrossSection,
		DispStrength: p.CapDispStrength,
	}
}

// Surfacing is the full shading handoff for one log: both materials and
// the unwrap policy.
type Surfacing struct {
	Bark BarkMaterial
	Cap  CapMaterial
	UV   UVPolicy
}

// NewSurfacing builds the handoff from a validated record and a resolved
// texture set.
func NewSurfacing(p *trunk.ShapeParameters, set TextureSet) Surfacing {
	return Surfacing{
		Bark: NewBarkMaterial(p, set),
		Cap:  NewCapMaterial(p, set),
		UV:   DefaultUVPolicy(),
	}
}
