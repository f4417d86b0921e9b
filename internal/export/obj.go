// Package export writes the per-log artifact set: a Wavefront scene pair
// that keeps quads, cap polygons and material bindings, and a triangulated
// binary STL for interchange.
package export

import (
	"bufio"
	"fmt"
	"io"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/logforge/internal/surface"
	"github.com/Faultbox/logforge/pkg/mesh"
)

// WriteOBJ writes the log as a Wavefront object stream: one object per
// piece, the trunk smooth shaded with quad faces, the caps flat shaded as
// single polygons. Vertex indices are global and 1-based, so pieces chain
// through a running offset.
func WriteOBJ(w io.Writer, log *mesh.Log, s surface.Surfacing, mtlName string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "mtllib %s\n", mtlName)

	offset := 1
	fmt.Fprintf(bw, "o %s\n", log.Trunk.Name)
	fmt.Fprintf(bw, "usemtl %s\n", s.Bark.Name)
	for _, v := range log.Trunk.Vertices {
		writeVertex(bw, v)
	}
	if log.Trunk.Smooth {
		fmt.Fprintln(bw, "s 1")
	} else {
		fmt.Fprintln(bw, "s off")
	}
	for _, q := range log.Trunk.Quads {
		fmt.Fprintf(bw, "f %d %d %d %d\n", offset+q[0], offset+q[1], offset+q[2], offset+q[3])
	}
	offset += len(log.Trunk.Vertices)

	for _, piece := range []*mesh.Cap{&log.StartCap, &log.EndCap} {
		fmt.Fprintf(bw, "o %s\n", piece.Name)
		fmt.Fprintf(bw, "usemtl %s\n", s.Cap.Name)
		for _, v := range piece.Vertices {
			writeVertex(bw, v)
		}
		fmt.Fprintln(bw, "s off")
		fmt.Fprint(bw, "f")
		for i := range piece.Vertices {
			fmt.Fprintf(bw, " %d", offset+i)
		}
		fmt.Fprintln(bw)
		offset += len(piece.Vertices)
	}

	return bw.Flush()
}

func writeVertex(w io.Writer, v v3.Vec) {
	fmt.Fprintf(w, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
}

// WriteMTL writes the material library for one log. Map strengths use the
// -bm and -mm options; the color grade scalars have no material slot and
// ride along as annotations for the downstream shader build.
func WriteMTL(w io.Writer, s surface.Surfacing) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# grade hue %.6f saturation %.6f value %.6f\n",
		s.Bark.Hue, s.Bark.Saturation, s.Bark.Value)
	fmt.Fprintf(bw, "# uv angle_limit %.6f island_margin %.6f\n",
		s.UV.AngleLimit, s.UV.IslandMargin)

	fmt.Fprintf(bw, "newmtl %s\n", s.Bark.Name)
	fmt.Fprintln(bw, "Ka 1.000000 1.000000 1.000000")
	fmt.Fprintln(bw, "Kd 1.000000 1.000000 1.000000")
	fmt.Fprintln(bw, "Ks 0.000000 0.000000 0.000000")
	fmt.Fprintln(bw, "illum 2")
	fmt.Fprintf(bw, "map_Kd %s\n", s.Bark.Color)
	fmt.Fprintf(bw, "map_Pr %s\n", s.Bark.Roughness)
	fmt.Fprintf(bw, "map_Bump -bm %.6f %s\n", s.Bark.BumpStrength, s.Bark.Normal)
	fmt.Fprintf(bw, "disp -mm 0.000000 %.6f %s\n", s.Bark.DispStrength, s.Bark.Displacement)

	fmt.Fprintf(bw, "\nnewmtl %s\n", s.Cap.Name)
	fmt.Fprintln(bw, "Ka 1.000000 1.000000 1.000000")
	fmt.Fprintln(bw, "Kd 1.000000 1.000000 1.000000")
	fmt.Fprintln(bw, "Ks 0.000000 0.000000 0.000000")
	fmt.Fprintln(bw, "illum 2")
	fmt.Fprintf(bw, "map_Kd %s\n", s.Cap.CrossSection)
	fmt.Fprintf(bw, "map_Pr %s\n", s.Cap.CrossSection)
	fmt.Fprintf(bw, "disp -mm 0.000000 %.6f %s\n", s.Cap.DispStrength, s.Cap.CrossSection)

	return bw.Flush()
}
