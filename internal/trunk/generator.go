package trunk

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/logforge/pkg/mesh"
)

// Generate builds the trunk surface and both end caps from one shape
// parameter record. The record is validated first, so a bad range never
// produces partial geometry. The noise field supplies bark roughness;
// a nil field is treated as ZeroNoise.
//
// The trunk has (rings+1)*verts_per_ring vertices and rings*verts_per_ring
// quads. Ring r vertex j sits at index r*verts_per_ring+j, so consecutive
// rings stitch with quads wound to face outward. The start cap reuses the
// first ring with reversed order so its normal points down the axis, away
// from the trunk; the end cap reuses the last ring as is.
func Generate(p *ShapeParameters, noise Noise3) (*mesh.Log, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if noise == nil {
		noise = ZeroNoise
	}

	n := p.VertsPerRing
	rings := make([][]v3.Vec, 0, p.Rings+1)
	for i := 0; i <= p.Rings; i++ {
		t := float64(i) / float64(p.Rings)
		local, err := ringProfile(p, t, i, noise)
		if err != nil {
			return nil, err
		}
		rot := twistRotation(p, t)
		center := centerline(p, t)
		ring := make([]v3.Vec, n)
		for j, pt := range local {
			ring[j] = rot.MulPosition(pt).Add(center)
		}
		rings = append(rings, ring)
	}

	trunk := mesh.Mesh{
		Name:     p.Name,
		Vertices: make([]v3.Vec, 0, (p.Rings+1)*n),
		Quads:    make([]mesh.Quad, 0, p.Rings*n),
		Smooth:   true,
	}
	for _, ring := range rings {
		trunk.Vertices = append(trunk.Vertices, ring...)
	}
	for i := 0; i < p.Rings; i++ {
		a := i * n
		b := (i + 1) * n
		for j := 0; j < n; j++ {
			trunk.Quads = append(trunk.Quads, mesh.Quad{
				a + j,
				a + (j+1)%n,
				b + (j+1)%n,
				b + j,
			})
		}
	}

	start := make([]v3.Vec, n)
	for j, v := range rings[0] {
		start[n-1-j] = v
	}
	end := make([]v3.Vec, n)
	copy(end, rings[p.Rings])

	return &mesh.Log{
		Name:  p.Name,
		Trunk: trunk,
		StartCap: mesh.Cap{
			Name:     p.Name + "_cap_start",
			Vertices: start,
		},
		EndCap: mesh.Cap{
			Name:     p.Name + "_cap_end",
			Vertices: end,
		},
	}, nil
}
