package export

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/Faultbox/logforge/pkg/mesh"
)

// stlTriangles flattens the log into the CAD kernel's triangle form.
func stlTriangles(log *mesh.Log) []*sdf.Triangle3 {
	tris := log.Triangles()
	out := make([]*sdf.Triangle3, len(tris))
	for i, t := range tris {
		out[i] = &sdf.Triangle3{t[0], t[1], t[2]}
	}
	return out
}

// WriteSTL writes the whole log, trunk and caps triangulated, as a binary
// STL file at path.
func WriteSTL(path string, log *mesh.Log) error {
	return render.SaveSTL(path, stlTriangles(log))
}
