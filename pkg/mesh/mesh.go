// Package mesh provides the polygon mesh types produced by the log generator.
package mesh

import (
	"errors"
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Mesh errors.
var (
	ErrNoVertices    = errors.New("mesh has no vertices")
	ErrIndexRange    = errors.New("face index out of range")
	ErrDuplicateFace = errors.New("duplicate face")
)

// Quad is a four-sided face referencing mesh vertices by index.
// Winding is counter-clockwise seen from outside the surface.
type Quad [4]int

// Triangle is a single triangle in world coordinates.
type Triangle [3]v3.Vec

// Normal returns the (unnormalized) face normal of the triangle.
func (t Triangle) Normal() v3.Vec {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

// Mesh is an indexed quad mesh.
type Mesh struct {
	Name     string
	Vertices []v3.Vec
	Quads    []Quad
	// Smooth marks the surface for smooth shading downstream.
	Smooth bool
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// FaceCount returns the number of quad faces.
func (m *Mesh) FaceCount() int { return len(m.Quads) }

// Triangles splits every quad into two triangles, preserving winding.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(m.Quads)*2)
	for _, q := range m.Quads {
		a, b, c, d := m.Vertices[q[0]], m.Vertices[q[1]], m.Vertices[q[2]], m.Vertices[q[3]]
		tris = append(tris, Triangle{a, b, c}, Triangle{a, c, d})
	}
	return tris
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max v3.Vec) {
	if len(m.Vertices) == 0 {
		return v3.Vec{}, v3.Vec{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Validate checks face indices against the vertex table and rejects
// duplicate faces.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%s: %w", m.Name, ErrNoVertices)
	}
	seen := make(map[Quad]struct{}, len(m.Quads))
	for i, q := range m.Quads {
		for _, idx := range q {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%s: quad %d: %w: %d", m.Name, i, ErrIndexRange, idx)
			}
		}
		key := canonicalQuad(q)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%s: quad %d: %w", m.Name, i, ErrDuplicateFace)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// canonicalQuad rotates the quad so its smallest index comes first,
// making duplicate detection independent of starting corner.
func canonicalQuad(q Quad) Quad {
	start := 0
	for i := 1; i < 4; i++ {
		if q[i] < q[start] {
			start = i
		}
	}
	var out Quad
	for i := 0; i < 4; i++ {
		out[i] = q[(start+i)%4]
	}
	return out
}

// Cap is a single n-gon face closing one open end of a tube. The face
// spans all vertices in slice order; winding is baked into that order.
type Cap struct {
	Name     string
	Vertices []v3.Vec
}

// VertexCount returns the number of vertices in the cap polygon.
func (c *Cap) VertexCount() int { return len(c.Vertices) }

// Triangles fans the n-gon into n-2 triangles around vertex 0.
func (c *Cap) Triangles() []Triangle {
	if len(c.Vertices) < 3 {
		return nil
	}
	tris := make([]Triangle, 0, len(c.Vertices)-2)
	for i := 1; i < len(c.Vertices)-1; i++ {
		tris = append(tris, Triangle{c.Vertices[0], c.Vertices[i], c.Vertices[i+1]})
	}
	return tris
}

// Normal returns the unit normal of the cap polygon using Newell's method.
func (c *Cap) Normal() v3.Vec {
	var n v3.Vec
	for i, v := range c.Vertices {
		w := c.Vertices[(i+1)%len(c.Vertices)]
		n.X += (v.Y - w.Y) * (v.Z + w.Z)
		n.Y += (v.Z - w.Z) * (v.X + w.X)
		n.Z += (v.X - w.X) * (v.Y + w.Y)
	}
	return n.Normalize()
}

// Log bundles a trunk surface with its two end caps.
type Log struct {
	Name     string
	Trunk    Mesh
	StartCap Cap
	EndCap   Cap
}

// Triangles returns the full triangulation of trunk and caps.
func (l *Log) Triangles() []Triangle {
	tris := l.Trunk.Triangles()
	tris = append(tris, l.StartCap.Triangles()...)
	tris = append(tris, l.EndCap.Triangles()...)
	return tris
}
