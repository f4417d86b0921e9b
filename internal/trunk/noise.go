package trunk

import "math"

// Noise3 samples a coherent scalar field at a 3D point. Implementations
// return values in roughly [-1, 1] and vary smoothly, so bark roughness
// reads as grain rather than static.
type Noise3 func(x, y, z float64) float64

// ZeroNoise is the flat field. Passing it to Generate yields the bare
// analytic surface, which makes radii exact in tests.
func ZeroNoise(x, y, z float64) float64 {
	return 0
}

// NewValueNoise returns a seeded lattice value noise field. The same seed
// always yields the same field, so meshes stay reproducible run to run.
func NewValueNoise(seed int64) Noise3 {
	return func(x, y, z float64) float64 {
		return valueNoise3(x, y, z, seed)
	}
}

// valueNoise3 interpolates hashed lattice corner values with a smoothstep
// fade in each axis.
func valueNoise3(x, y, z float64, seed int64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	z0 := int(math.Floor(z))

	sx := smooth(x - float64(x0))
	sy := smooth(y - float64(y0))
	sz := smooth(z - float64(z0))

	n000 := latticeValue(x0, y0, z0, seed)
	n100 := latticeValue(x0+1, y0, z0, seed)
	n010 := latticeValue(x0, y0+1, z0, seed)
	n110 := latticeValue(x0+1, y0+1, z0, seed)
	n001 := latticeValue(x0, y0, z0+1, seed)
	n101 := latticeValue(x0+1, y0, z0+1, seed)
	n011 := latticeValue(x0, y0+1, z0+1, seed)
	n111 := latticeValue(x0+1, y0+1, z0+1, seed)

	ix00 := lerp(n000, n100, sx)
	ix10 := lerp(n010, n110, sx)
	ix01 := lerp(n001, n101, sx)
	ix11 := lerp(n011, n111, sx)

	iy0 := lerp(ix00, ix10, sy)
	iy1 := lerp(ix01, ix11, sy)

	return lerp(iy0, iy1, sz)
}

// smooth is the cubic fade t*t*(3-2t), flattening the derivative at the
// lattice so corner seams do not show.
func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// latticeValue hashes an integer lattice point and the seed into [-1, 1).
func latticeValue(x, y, z int, seed int64) float64 {
	h := uint32(x*374761393 + y*668265263 + z*2147483647 + int(seed)*1274126177)
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h&0xFFFF)/0x8000 - 1.0
}
