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

package mesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
)

// NewCornerPoint assembles a mesh from the corner-point description g.
// It consumes a snapshot of g at call time; mutating g afterwards does
// not affect the mesh.
//
// Corner depths on the same pillar that are within zTolerance of each
// other weld into a single node, so that cells separated by a collapsed
// layer of at most that thickness share nodes. A zTolerance of zero
// welds exactly coincident corners only.
//
// Inactive cells are left out of the mesh; the active cells are indexed
// contiguously with GlobalCell recording their logical origin. A
// description whose cells are all inactive yields a valid, empty mesh.
func NewCornerPoint(g *Description, zTolerance float64) (*Mesh, error) {
	if err := g.Check(); err != nil {
		return nil, fmt.Errorf("mesh: assembling corner-point mesh: %v", err)
	}
	if zTolerance < 0 {
		return nil, fmt.Errorf("mesh: negative weld tolerance %g", zTolerance)
	}
	coord, err := applyMapAxes(g.MapAxes, g.Coord)
	if err != nil {
		return nil, err
	}

	b := newCPBuilder(g.Nx, g.Ny, coord, zTolerance)
	zcorn := &sparse.DenseArray{Elements: g.Zcorn, Shape: []int{2 * g.Nz, 2 * g.Ny, 2 * g.Nx}}
	zcorn.Fix()

	m := &Mesh{nx: g.Nx, ny: g.Ny, nz: g.Nz}
	for k := 0; k < g.Nz; k++ {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				gi := i + g.Nx*(j+g.Ny*k)
				if g.Actnum != nil && g.Actnum[gi] == 0 {
					continue
				}
				for kk := 0; kk < 2; kk++ {
					for jj := 0; jj < 2; jj++ {
						for ii := 0; ii < 2; ii++ {
							z := zcorn.Get(2*k+kk, 2*j+jj, 2*i+ii)
							m.cellNodes = append(m.cellNodes, b.node((i+ii)+(g.Nx+1)*(j+jj), z))
						}
					}
				}
				m.globalCell = append(m.globalCell, gi)
			}
		}
	}
	m.nodeX, m.nodeY, m.nodeZ = b.nodeX, b.nodeY, b.nodeZ
	m.zcorn = append([]float64(nil), g.Zcorn...)
	if err := m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// applyMapAxes returns a copy of coord with the areal transform applied
// to the x and y of every pillar endpoint. A nil transform returns
// coord unchanged.
func applyMapAxes(ma, coord []float64) ([]float64, error) {
	if ma == nil {
		return coord, nil
	}
	ox, oy := ma[2], ma[3]
	ex := geom.Point{X: ma[4] - ox, Y: ma[5] - oy}
	ey := geom.Point{X: ma[0] - ox, Y: ma[1] - oy}
	lx := math.Hypot(ex.X, ex.Y)
	ly := math.Hypot(ey.X, ey.Y)
	if lx == 0 || ly == 0 {
		return nil, fmt.Errorf("mesh: degenerate mapaxes %v", ma)
	}
	ex.X, ex.Y = ex.X/lx, ex.Y/lx
	ey.X, ey.Y = ey.X/ly, ey.Y/ly
	out := make([]float64, len(coord))
	copy(out, coord)
	for i := 0; i < len(coord); i += 3 {
		x, y := coord[i], coord[i+1]
		out[i] = ox + x*ex.X + y*ey.X
		out[i+1] = oy + x*ex.Y + y*ey.Y
	}
	return out, nil
}

// pillarNode is a node already created on a pillar.
type pillarNode struct {
	z  float64
	id int
}

// cpBuilder creates mesh nodes on pillar lines, welding corners that
// fall within the depth tolerance of an existing node on the same
// pillar.
type cpBuilder struct {
	coord []float64
	nx    int
	tol   float64

	pillars             [][]pillarNode // per pillar, sorted by depth
	nodeX, nodeY, nodeZ []float64
}

func newCPBuilder(nx, ny int, coord []float64, tol float64) *cpBuilder {
	return &cpBuilder{
		coord:   coord,
		nx:      nx,
		tol:     tol,
		pillars: make([][]pillarNode, (nx+1)*(ny+1)),
	}
}

// node returns the node for depth z on pillar p, creating it if no
// existing node on the pillar is within the weld tolerance.
func (b *cpBuilder) node(p int, z float64) int {
	nodes := b.pillars[p]
	lo := sort.Search(len(nodes), func(i int) bool { return nodes[i].z >= z })
	best, bestDist := -1, math.Inf(1)
	for _, c := range [2]int{lo - 1, lo} {
		if c < 0 || c >= len(nodes) {
			continue
		}
		if d := math.Abs(nodes[c].z - z); d <= b.tol && d < bestDist {
			best, bestDist = c, d
		}
	}
	if best >= 0 {
		return nodes[best].id
	}
	id := len(b.nodeX)
	x, y := b.pillarPoint(p, z)
	b.nodeX = append(b.nodeX, x)
	b.nodeY = append(b.nodeY, y)
	b.nodeZ = append(b.nodeZ, z)
	nodes = append(nodes, pillarNode{})
	copy(nodes[lo+1:], nodes[lo:])
	nodes[lo] = pillarNode{z: z, id: id}
	b.pillars[p] = nodes
	return id
}

// pillarPoint interpolates the areal position of depth z along pillar
// p. Horizontal pillars (equal endpoint depths) use the position of the
// first endpoint.
func (b *cpBuilder) pillarPoint(p int, z float64) (x, y float64) {
	c := b.coord[6*p : 6*p+6]
	dz := c[5] - c[2]
	if dz == 0 {
		return c[0], c[1]
	}
	t := (z - c[2]) / dz
	return c[0] + t*(c[3]-c[0]), c[1] + t*(c[4]-c[1])
}
