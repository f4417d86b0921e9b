package surface

// UVPolicy is the projection policy handed to whatever unwraps the mesh.
// The values ride along with every exported piece, nothing here computes
// coordinates.
type UVPolicy struct {
	AngleLimit   float64
	IslandMargin float64
}

// DefaultUVPolicy matches the bark unwrap used across the texture sets.
func DefaultUVPolicy() UVPolicy {
	return UVPolicy{AngleLimit: 66, IslandMargin: 0.02}
}
