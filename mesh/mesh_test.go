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

import "testing"

func TestLocate(t *testing.T) {
	m, err := NewCartesian3D(3, 3, 2, 10, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	cells := m.Locate(5, 5)
	if len(cells) != 2 {
		t.Fatalf("want the 2 cells of column (0, 0) but have %d cells", len(cells))
	}
	for _, c := range cells {
		if c.I != 0 || c.J != 0 {
			t.Errorf("cell %d should be in column (0, 0) but is in (%d, %d)", c.Num, c.I, c.J)
		}
	}
	cells = m.Locate(25, 15)
	if len(cells) != 2 {
		t.Fatalf("want the 2 cells of column (2, 1) but have %d cells", len(cells))
	}
	for _, c := range cells {
		if c.I != 2 || c.J != 1 {
			t.Errorf("cell %d should be in column (2, 1) but is in (%d, %d)", c.Num, c.I, c.J)
		}
	}
	if cells := m.Locate(-1, 5); len(cells) != 0 {
		t.Errorf("a point left of the mesh should locate no cells but located %d", len(cells))
	}
	if cells := m.Locate(15, 35); len(cells) != 0 {
		t.Errorf("a point above the mesh should locate no cells but located %d", len(cells))
	}
	// Points on shared cell edges count as contained on both sides.
	if cells := m.Locate(10, 5); len(cells) != 4 {
		t.Errorf("an edge point should locate the 4 cells of both columns but located %d", len(cells))
	}
}

func TestLocateInactive(t *testing.T) {
	g := testDescription(2, 2, 1)
	g.Actnum = []int{1, 0, 1, 1}
	m, err := NewCornerPoint(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cells := m.Locate(150, 50); len(cells) != 0 {
		t.Errorf("a point over an inactive cell should locate no cells but located %d", len(cells))
	}
	cells := m.Locate(50, 150)
	if len(cells) != 1 {
		t.Fatalf("want 1 cell but have %d", len(cells))
	}
	if c := cells[0]; c.I != 0 || c.J != 1 {
		t.Errorf("want cell (0, 1) but have (%d, %d)", c.I, c.J)
	}
}

func TestAttachZcorn(t *testing.T) {
	g := testDescription(1, 1, 1)
	m, err := NewCornerPoint(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	replacement := []float64{1, 1, 1, 1, 2, 2, 2, 2}
	m.AttachZcorn(replacement)
	replacement[0] = -100
	z := m.Zcorn()
	if len(z) != 8 {
		t.Fatalf("want 8 retained corner depths but have %d", len(z))
	}
	if z[0] != 1 {
		t.Errorf("the mesh should retain an independent copy: want 1 but have %g", z[0])
	}
}

func TestFree(t *testing.T) {
	m, err := NewCartesian3D(2, 2, 2, 1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	m.AttachZcorn(make([]float64, 64))
	m.Free()
	if n := m.NumCells(); n != 0 {
		t.Errorf("a freed mesh should have no cells but has %d", n)
	}
	if n := m.NumNodes(); n != 0 {
		t.Errorf("a freed mesh should have no nodes but has %d", n)
	}
	if n := m.NumFaces(); n != 0 {
		t.Errorf("a freed mesh should have no faces but has %d", n)
	}
	if z := m.Zcorn(); z != nil {
		t.Error("a freed mesh should not retain corner depths")
	}
	if cells := m.Locate(0.5, 0.5); len(cells) != 0 {
		t.Errorf("a freed mesh should locate no cells but located %d", len(cells))
	}
	if !m.Bounds().Empty() {
		t.Error("a freed mesh should have empty bounds")
	}
	m.Free() // freeing again is a no-op
}
