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

func TestDescriptionCheck(t *testing.T) {
	g := testDescription(2, 3, 4)
	if err := g.Check(); err != nil {
		t.Errorf("a well-formed description should check clean: %v", err)
	}
	if n := g.NumCells(); n != 24 {
		t.Errorf("want 24 cells but have %d", n)
	}
	if n := g.NumPillars(); n != 12 {
		t.Errorf("want 12 pillars but have %d", n)
	}

	type test struct {
		name   string
		mutate func(g *Description)
	}
	var tests = []test{
		{"zero nx", func(g *Description) { g.Nx = 0 }},
		{"negative ny", func(g *Description) { g.Ny = -1 }},
		{"short coord", func(g *Description) { g.Coord = g.Coord[:len(g.Coord)-1] }},
		{"long zcorn", func(g *Description) { g.Zcorn = append(g.Zcorn, 0) }},
		{"mis-sized actnum", func(g *Description) { g.Actnum = []int{1, 1} }},
		{"mis-sized mapaxes", func(g *Description) { g.MapAxes = []float64{0, 0, 0} }},
	}
	for _, tt := range tests {
		g := testDescription(2, 3, 4)
		tt.mutate(g)
		if err := g.Check(); err == nil {
			t.Errorf("%s: Check should fail", tt.name)
		}
	}

	// Nil actnum and mapaxes are both allowed.
	g = testDescription(1, 1, 1)
	g.Actnum, g.MapAxes = nil, nil
	if err := g.Check(); err != nil {
		t.Errorf("nil actnum and mapaxes should check clean: %v", err)
	}
}

func TestDescriptionCopy(t *testing.T) {
	g := testDescription(2, 2, 1)
	g.Actnum = []int{1, 0, 1, 1}
	g.MapAxes = []float64{0, 1, 0, 0, 1, 0}
	c := g.Copy()
	c.Coord[0] += 1
	c.Zcorn[0] += 1
	c.Actnum[0] = 0
	c.MapAxes[0] += 1
	if g.Coord[0] == c.Coord[0] || g.Zcorn[0] == c.Zcorn[0] ||
		g.Actnum[0] == c.Actnum[0] || g.MapAxes[0] == c.MapAxes[0] {
		t.Error("copies should not share storage with the original")
	}

	g.Actnum, g.MapAxes = nil, nil
	c = g.Copy()
	if c.Actnum != nil || c.MapAxes != nil {
		t.Error("copies should preserve nil actnum and mapaxes")
	}
}
