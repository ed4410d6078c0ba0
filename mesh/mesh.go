/*
Copyright © 2018 the CornerGrid authors.
This file is part of CornerGrid.

CornerGrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

CornerGrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with CornerGrid.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package mesh builds and holds volumetric simulation meshes: the cell,
// face, and node topology and geometry that simulators run on. Meshes
// are built from geological corner-point descriptions or as regular
// cartesian blocks, and can be written to and read back from files.
package mesh

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"gonum.org/v1/gonum/floats"
)

// Boundary marks the outward side of a face that is not shared with
// another cell.
const Boundary = -1

// Cell is a single active mesh cell.
type Cell struct {
	geom.Polygonal // areal footprint of the cell top

	// Volume is the cell volume.
	Volume float64

	// Centroid is the areal centroid of the cell, and Depth is the
	// centroid depth.
	Centroid geom.Point
	Depth    float64

	// I, J, and K are the logical grid coordinates of the cell, and
	// Global is the linearized logical index I + Nx*(J + Ny*K).
	I, J, K int
	Global  int

	// Num is the index of the cell among the active cells.
	Num int

	corners [8]int
}

// Corners returns the node indices of the eight cell corners, ordered
// the same way as the corner depths in a Description.
func (c *Cell) Corners() [8]int { return c.corners }

// Face is a connection between two cells, or between a cell and the
// mesh boundary.
type Face struct {
	// Cells holds the active cell indices on either side of the face,
	// lower logical index first. Boundary faces hold Boundary on the
	// outward side.
	Cells [2]int

	// Axis is the logical axis normal to the face: 0 for x, 1 for y,
	// and 2 for z.
	Axis int
}

// Mesh is an assembled simulation mesh. The zero value is not usable;
// meshes are built by NewCornerPoint, NewCartesian2D, NewCartesian3D,
// or ReadFile. Meshes are not safe for concurrent use.
type Mesh struct {
	nx, ny, nz int

	nodeX, nodeY, nodeZ []float64
	cellNodes           []int // 8 per cell
	globalCell          []int

	cells []*Cell
	faces []Face

	// zcorn is the corner depth array the mesh retains for requery;
	// AttachZcorn replaces it.
	zcorn []float64

	tree *rtree.Rtree
}

// Dims returns the logical dimensions of the grid the mesh was built
// from.
func (m *Mesh) Dims() (nx, ny, nz int) { return m.nx, m.ny, m.nz }

// NumCells returns the number of active cells.
func (m *Mesh) NumCells() int { return len(m.cells) }

// NumNodes returns the number of nodes.
func (m *Mesh) NumNodes() int { return len(m.nodeX) }

// NumFaces returns the number of faces, boundary faces included.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// Cells returns the active cells. The returned slice is owned by the
// mesh and must not be modified.
func (m *Mesh) Cells() []*Cell { return m.cells }

// Faces returns the mesh faces. The returned slice is owned by the mesh
// and must not be modified.
func (m *Mesh) Faces() []Face { return m.faces }

// GlobalCell returns the linearized logical index of active cell c.
func (m *Mesh) GlobalCell(c int) int { return m.globalCell[c] }

// Node returns the coordinates of node n.
func (m *Mesh) Node(n int) (x, y, z float64) {
	return m.nodeX[n], m.nodeY[n], m.nodeZ[n]
}

// Zcorn returns the corner depth array the mesh retains, or nil for
// meshes that were not built from a corner-point description. The
// returned slice is owned by the mesh.
func (m *Mesh) Zcorn() []float64 { return m.zcorn }

// AttachZcorn stores an independent copy of zcorn as the retained
// corner depth array, replacing whatever the mesh retained before.
func (m *Mesh) AttachZcorn(zcorn []float64) {
	m.zcorn = append([]float64(nil), zcorn...)
}

// Free releases the mesh storage. After Free the mesh is empty: it has
// no cells, faces, or nodes. Freeing an already-freed mesh does
// nothing.
func (m *Mesh) Free() {
	m.nodeX, m.nodeY, m.nodeZ = nil, nil, nil
	m.cellNodes = nil
	m.globalCell = nil
	m.cells = nil
	m.faces = nil
	m.zcorn = nil
	m.tree = nil
}

// Bounds returns the areal extent of the mesh nodes.
func (m *Mesh) Bounds() *geom.Bounds {
	if m.NumNodes() == 0 {
		return geom.NewBounds()
	}
	return &geom.Bounds{
		Min: geom.Point{X: floats.Min(m.nodeX), Y: floats.Min(m.nodeY)},
		Max: geom.Point{X: floats.Max(m.nodeX), Y: floats.Max(m.nodeY)},
	}
}

// DepthExtent returns the minimum and maximum node depth.
func (m *Mesh) DepthExtent() (zmin, zmax float64) {
	if m.NumNodes() == 0 {
		return 0, 0
	}
	return floats.Min(m.nodeZ), floats.Max(m.nodeZ)
}

// Locate returns the cells whose areal footprint contains the point
// (x, y), across all layers. Points on a cell edge count as contained.
func (m *Mesh) Locate(x, y float64) []*Cell {
	if m.tree == nil {
		m.tree = rtree.NewTree(25, 50)
		for _, c := range m.cells {
			m.tree.Insert(c)
		}
	}
	p := geom.Point{X: x, Y: y}
	var cells []*Cell
	for _, s := range m.tree.SearchIntersect(p.Bounds()) {
		c := s.(*Cell)
		if p.Within(c.Polygonal) != geom.Outside {
			cells = append(cells, c)
		}
	}
	return cells
}

// finish derives the cells and faces from the node, corner, and global
// cell arrays, validating them along the way. It is shared by the mesh
// builders and the file reader.
func (m *Mesh) finish() error {
	n := len(m.globalCell)
	if len(m.cellNodes) != 8*n {
		return fmt.Errorf("mesh: %d cells require %d corner nodes but there are %d",
			n, 8*n, len(m.cellNodes))
	}
	m.cells = make([]*Cell, n)
	for c := 0; c < n; c++ {
		gi := m.globalCell[c]
		if gi < 0 || gi >= m.nx*m.ny*m.nz {
			return fmt.Errorf("mesh: cell %d has logical index %d outside the %d-cell grid",
				c, gi, m.nx*m.ny*m.nz)
		}
		var corners [8]int
		var px, py, pz [8]float64
		for q, nd := range m.cellNodes[8*c : 8*c+8] {
			if nd < 0 || nd >= m.NumNodes() {
				return fmt.Errorf("mesh: cell %d references node %d of %d", c, nd, m.NumNodes())
			}
			corners[q] = nd
			px[q], py[q], pz[q] = m.nodeX[nd], m.nodeY[nd], m.nodeZ[nd]
		}
		var cx, cy, cz float64
		for q := 0; q < 8; q++ {
			cx += px[q] / 8
			cy += py[q] / 8
			cz += pz[q] / 8
		}
		m.cells[c] = &Cell{
			Polygonal: geom.Polygon{[]geom.Point{
				{X: px[0], Y: py[0]},
				{X: px[1], Y: py[1]},
				{X: px[3], Y: py[3]},
				{X: px[2], Y: py[2]},
			}},
			Volume:   hexVolume(&px, &py, &pz),
			Centroid: geom.Point{X: cx, Y: cy},
			Depth:    cz,
			I:        gi % m.nx,
			J:        (gi / m.nx) % m.ny,
			K:        gi / (m.nx * m.ny),
			Global:   gi,
			Num:      c,
			corners:  corners,
		}
	}
	m.buildFaces()
	return nil
}

// buildFaces connects logically adjacent active cells and closes the
// rest of the cell sides with boundary faces.
func (m *Mesh) buildFaces() {
	active := make([]int, m.nx*m.ny*m.nz)
	for i := range active {
		active[i] = Boundary
	}
	for c, gi := range m.globalCell {
		active[gi] = c
	}
	dirs := [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	dims := [3]int{m.nx, m.ny, m.nz}
	var faces []Face
	for c, gi := range m.globalCell {
		ijk := [3]int{gi % m.nx, (gi / m.nx) % m.ny, gi / (m.nx * m.ny)}
		for axis, d := range dirs {
			hi := [3]int{ijk[0] + d[0], ijk[1] + d[1], ijk[2] + d[2]}
			if hi[axis] >= dims[axis] {
				faces = append(faces, Face{Cells: [2]int{c, Boundary}, Axis: axis})
			} else if nb := active[hi[0]+m.nx*(hi[1]+m.ny*hi[2])]; nb == Boundary {
				faces = append(faces, Face{Cells: [2]int{c, Boundary}, Axis: axis})
			} else {
				faces = append(faces, Face{Cells: [2]int{c, nb}, Axis: axis})
			}
			lo := [3]int{ijk[0] - d[0], ijk[1] - d[1], ijk[2] - d[2]}
			if lo[axis] < 0 || active[lo[0]+m.nx*(lo[1]+m.ny*lo[2])] == Boundary {
				faces = append(faces, Face{Cells: [2]int{Boundary, c}, Axis: axis})
			}
		}
	}
	m.faces = faces
}

// hexVolume returns the volume of the hexahedron with the given corner
// coordinates, decomposed into six tetrahedra along the 0-7 diagonal.
func hexVolume(x, y, z *[8]float64) float64 {
	tets := [6][4]int{
		{0, 1, 3, 7}, {0, 3, 2, 7}, {0, 2, 6, 7},
		{0, 6, 4, 7}, {0, 4, 5, 7}, {0, 5, 1, 7},
	}
	var v float64
	for _, t := range tets {
		v += tetVolume(x, y, z, t[0], t[1], t[2], t[3])
	}
	return math.Abs(v)
}

func tetVolume(x, y, z *[8]float64, a, b, c, d int) float64 {
	ux, uy, uz := x[b]-x[a], y[b]-y[a], z[b]-z[a]
	vx, vy, vz := x[c]-x[a], y[c]-y[a], z[c]-z[a]
	wx, wy, wz := x[d]-x[a], y[d]-y[a], z[d]-z[a]
	return (ux*(vy*wz-vz*wy) - uy*(vx*wz-vz*wx) + uz*(vx*wy-vy*wx)) / 6
}
