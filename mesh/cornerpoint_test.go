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
	"math"
	"testing"
)

const testTolerance = 1.e-8

// testDescription returns an nx×ny×nz corner-point description with
// vertical pillars on a 100 m spacing and flat 10 m layers starting at
// 1000 m depth.
func testDescription(nx, ny, nz int) *Description {
	g := &Description{Nx: nx, Ny: ny, Nz: nz}
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			x, y := float64(i)*100, float64(j)*100
			g.Coord = append(g.Coord, x, y, 1000, x, y, 1000+10*float64(nz))
		}
	}
	g.Zcorn = make([]float64, 8*nx*ny*nz)
	for k := 0; k < nz; k++ {
		top := 1000 + 10*float64(k)
		for jj := 0; jj < 2*ny; jj++ {
			for ii := 0; ii < 2*nx; ii++ {
				g.Zcorn[((2*k)*2*ny+jj)*2*nx+ii] = top
				g.Zcorn[((2*k+1)*2*ny+jj)*2*nx+ii] = top + 10
			}
		}
	}
	return g
}

func TestCornerPoint(t *testing.T) {
	g := testDescription(2, 2, 2)
	m, err := NewCornerPoint(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if nx, ny, nz := m.Dims(); nx != 2 || ny != 2 || nz != 2 {
		t.Errorf("want dimensions (2, 2, 2) but have (%d, %d, %d)", nx, ny, nz)
	}
	if n := m.NumCells(); n != 8 {
		t.Errorf("want 8 cells but have %d", n)
	}
	// Exactly coincident corner depths weld even with a zero
	// tolerance: 9 pillars with 3 depths each.
	if n := m.NumNodes(); n != 27 {
		t.Errorf("want 27 nodes but have %d", n)
	}
	if n := m.NumFaces(); n != 36 {
		t.Errorf("want 36 faces but have %d", n)
	}
	for c := 0; c < m.NumCells(); c++ {
		if gi := m.GlobalCell(c); gi != c {
			t.Errorf("cell %d: logical index should be %d but is %d", c, c, gi)
		}
	}
	c := m.Cells()[0]
	if c.I != 0 || c.J != 0 || c.K != 0 {
		t.Errorf("cell 0 should be at (0, 0, 0) but is at (%d, %d, %d)", c.I, c.J, c.K)
	}
	if different(c.Volume, 1.e5, testTolerance) {
		t.Errorf("cell 0 volume should be 1e5 but is %g", c.Volume)
	}
	if c.Centroid.X != 50 || c.Centroid.Y != 50 || c.Depth != 1005 {
		t.Errorf("cell 0 centroid should be (50, 50) at depth 1005 but is (%g, %g) at %g",
			c.Centroid.X, c.Centroid.Y, c.Depth)
	}
	last := m.Cells()[7]
	if last.I != 1 || last.J != 1 || last.K != 1 {
		t.Errorf("cell 7 should be at (1, 1, 1) but is at (%d, %d, %d)", last.I, last.J, last.K)
	}
}

func TestCornerPointInactive(t *testing.T) {
	g := testDescription(2, 2, 2)
	g.Actnum = []int{0, 1, 1, 1, 1, 1, 1, 0}
	m, err := NewCornerPoint(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := m.NumCells(); n != 6 {
		t.Errorf("want 6 cells but have %d", n)
	}
	for c := 0; c < m.NumCells(); c++ {
		if gi := m.GlobalCell(c); gi != c+1 {
			t.Errorf("cell %d: logical index should be %d but is %d", c, c+1, gi)
		}
	}
	// Sides facing a deactivated cell close with boundary faces.
	if n := m.NumFaces(); n != 30 {
		t.Errorf("want 30 faces but have %d", n)
	}
	internal := 0
	for _, f := range m.Faces() {
		if f.Cells[0] != Boundary && f.Cells[1] != Boundary {
			internal++
		}
	}
	if internal != 6 {
		t.Errorf("want 6 internal faces but have %d", internal)
	}
}

func TestCornerPointAllInactive(t *testing.T) {
	g := testDescription(2, 2, 1)
	g.Actnum = make([]int, 4)
	m, err := NewCornerPoint(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := m.NumCells(); n != 0 {
		t.Errorf("an all-inactive grid should yield an empty mesh but has %d cells", n)
	}
	if n := m.NumNodes(); n != 0 {
		t.Errorf("an empty mesh should have no nodes but has %d", n)
	}
	if !m.Bounds().Empty() {
		t.Error("an empty mesh should have empty bounds")
	}
}

func TestCornerPointWeld(t *testing.T) {
	// Shift the deeper layer down, leaving a 0.3 m gap between the
	// layers.
	g := testDescription(2, 2, 2)
	for i := 32; i < 64; i++ {
		g.Zcorn[i] += 0.3
	}
	m, err := NewCornerPoint(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := m.NumNodes(); n != 36 {
		t.Errorf("zero tolerance should keep the gap nodes distinct: want 36 nodes but have %d", n)
	}
	m, err = NewCornerPoint(g, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if n := m.NumNodes(); n != 27 {
		t.Errorf("a 0.5 m tolerance should weld across the gap: want 27 nodes but have %d", n)
	}
}

func TestCornerPointSnapshot(t *testing.T) {
	g := testDescription(2, 2, 2)
	g.Actnum = []int{1, 1, 1, 1, 1, 1, 1, 1}
	m, err := NewCornerPoint(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	zmin, zmax := m.DepthExtent()

	// Mutating the description afterwards must not affect the mesh.
	for i := range g.Zcorn {
		g.Zcorn[i] += 5000
	}
	g.Actnum[3] = 0

	if n := m.NumCells(); n != 8 {
		t.Errorf("want 8 cells but have %d", n)
	}
	if z := m.Zcorn(); z[0] != 1000 {
		t.Errorf("retained zcorn 0 should be 1000 but is %g", z[0])
	}
	if zmin2, zmax2 := m.DepthExtent(); zmin2 != zmin || zmax2 != zmax {
		t.Errorf("depth extent changed from %g-%g to %g-%g", zmin, zmax, zmin2, zmax2)
	}
}

func TestCornerPointMapAxes(t *testing.T) {
	// A pure translation moves the areal bounds without distortion.
	g := testDescription(2, 2, 1)
	g.MapAxes = []float64{1000, 2001, 1000, 2000, 1001, 2000}
	m, err := NewCornerPoint(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	b := m.Bounds()
	if b.Min.X != 1000 || b.Min.Y != 2000 || b.Max.X != 1200 || b.Max.Y != 2200 {
		t.Errorf("want bounds (1000, 2000)-(1200, 2200) but have (%g, %g)-(%g, %g)",
			b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	}
	for _, c := range m.Cells() {
		if different(c.Volume, 1.e5, testTolerance) {
			t.Errorf("cell %d: a translation should not change the volume %g", c.Num, c.Volume)
		}
	}

	// A 90 degree rotation: grid x toward map +y, grid y toward map -x.
	g = testDescription(2, 2, 1)
	g.MapAxes = []float64{-1, 0, 0, 0, 0, 1}
	m, err = NewCornerPoint(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	b = m.Bounds()
	if b.Min.X != -200 || b.Min.Y != 0 || b.Max.X != 0 || b.Max.Y != 200 {
		t.Errorf("want bounds (-200, 0)-(0, 200) but have (%g, %g)-(%g, %g)",
			b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	}

	g = testDescription(1, 1, 1)
	g.MapAxes = []float64{0, 0, 0, 0, 0, 0}
	if _, err := NewCornerPoint(g, 0); err == nil {
		t.Error("a degenerate areal transform should be an error")
	}
}

func TestCornerPointSlopedPillars(t *testing.T) {
	// Pillars lean 1 m in x per m of depth; corner x positions follow.
	g := &Description{
		Nx: 1, Ny: 1, Nz: 1,
		Zcorn: []float64{25, 25, 25, 25, 75, 75, 75, 75},
	}
	for j := 0; j <= 1; j++ {
		for i := 0; i <= 1; i++ {
			x, y := float64(i)*100, float64(j)*100
			g.Coord = append(g.Coord, x, y, 0, x+100, y, 100)
		}
	}
	m, err := NewCornerPoint(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	c := m.Cells()[0]
	corners := c.Corners()
	x, y, z := m.Node(corners[0])
	if x != 25 || y != 0 || z != 25 {
		t.Errorf("corner 0 should be at (25, 0, 25) but is at (%g, %g, %g)", x, y, z)
	}
	x, y, z = m.Node(corners[5])
	if x != 175 || y != 0 || z != 75 {
		t.Errorf("corner 5 should be at (175, 0, 75) but is at (%g, %g, %g)", x, y, z)
	}
	// Shearing preserves the volume.
	if different(c.Volume, 5.e5, testTolerance) {
		t.Errorf("cell volume should be 5e5 but is %g", c.Volume)
	}
}

func TestCornerPointInvalid(t *testing.T) {
	type test struct {
		name   string
		mutate func(g *Description)
	}
	var tests = []test{
		{"zero dimension", func(g *Description) { g.Nz = 0 }},
		{"short coord", func(g *Description) { g.Coord = g.Coord[:10] }},
		{"short zcorn", func(g *Description) { g.Zcorn = g.Zcorn[:10] }},
		{"mis-sized actnum", func(g *Description) { g.Actnum = []int{1} }},
		{"mis-sized mapaxes", func(g *Description) { g.MapAxes = []float64{0, 1} }},
	}
	for _, tt := range tests {
		g := testDescription(2, 2, 2)
		tt.mutate(g)
		if _, err := NewCornerPoint(g, 0); err == nil {
			t.Errorf("%s: construction should fail", tt.name)
		}
	}
	if _, err := NewCornerPoint(testDescription(1, 1, 1), -1); err == nil {
		t.Error("a negative weld tolerance should be an error")
	}
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}
