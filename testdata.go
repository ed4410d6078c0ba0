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

package cornergrid

import "github.com/geomodel/cornergrid/deck"

// TestGridData is an in-memory geological grid source for use in
// tests. The configuration fields can be adjusted before handing it to
// NewFromSource.
type TestGridData struct {
	nx, ny, nz int
	coord      []float64
	zcorn      []float64
	actnum     []int
	mapaxes    []float64

	// MinpvData configures minimum pore volume filtering and PinchData
	// configures pinch treatment.
	MinpvData MinpvConfig
	PinchData PinchConfig
}

func (g *TestGridData) Dims() (nx, ny, nz int) { return g.nx, g.ny, g.nz }
func (g *TestGridData) Coord() []float64       { return g.coord }
func (g *TestGridData) Zcorn() []float64       { return g.zcorn }
func (g *TestGridData) Actnum() []int          { return g.actnum }
func (g *TestGridData) MapAxes() []float64     { return g.mapaxes }
func (g *TestGridData) Minpv() MinpvConfig     { return g.MinpvData }
func (g *TestGridData) Pinch() PinchConfig     { return g.PinchData }

// GridTestData returns a deterministic 2×2×2 geological grid source
// for use in tests, together with matching per-cell pore volumes.
//
// The grid has vertical pillars spaced 100 m apart and two flat 10 m
// layers from 1000 m to 1020 m depth, with every cell active, no areal
// transform, and filtering and pinch treatment switched off. The pore
// volume of cell c is c+1 m³, so a filtering threshold of n+1.5
// filters exactly the first n+1 cells.
func GridTestData() (*TestGridData, []float64) {
	const nx, ny, nz = 2, 2, 2
	g := &TestGridData{
		nx:    nx,
		ny:    ny,
		nz:    nz,
		coord: testCoord(nx, ny),
		zcorn: testZcorn(nx, ny, nz),
	}
	pv := make([]float64, nx*ny*nz)
	for i := range pv {
		pv[i] = float64(i + 1)
	}
	return g, pv
}

// DeckTestData returns a metric-unit deck holding the same grid as
// GridTestData in the DIMENS, COORD, ZCORN, ACTNUM, and MAPAXES
// keywords, with every cell active and an identity areal transform.
func DeckTestData() *deck.Deck {
	const nx, ny, nz = 2, 2, 2
	d := deck.New(deck.Metric)
	d.Add(&deck.Keyword{Name: "DIMENS", Ints: []int{nx, ny, nz}})
	d.Add(&deck.Keyword{Name: "COORD", Floats: testCoord(nx, ny)})
	d.Add(&deck.Keyword{Name: "ZCORN", Floats: testZcorn(nx, ny, nz)})
	actnum := make([]int, nx*ny*nz)
	for i := range actnum {
		actnum[i] = 1
	}
	d.Add(&deck.Keyword{Name: "ACTNUM", Ints: actnum})
	d.Add(&deck.Keyword{Name: "MAPAXES", Floats: []float64{0, 1, 0, 0, 1, 0}})
	return d
}

// testCoord returns vertical pillars on a 100 m spacing, spanning the
// depth interval of testZcorn.
func testCoord(nx, ny int) []float64 {
	coord := make([]float64, 0, 6*(nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			x, y := float64(i)*100, float64(j)*100
			coord = append(coord, x, y, 1000, x, y, 1020)
		}
	}
	return coord
}

// testZcorn returns corner depths for nz flat 10 m layers starting at
// 1000 m depth.
func testZcorn(nx, ny, nz int) []float64 {
	zcorn := make([]float64, 8*nx*ny*nz)
	at := func(c, jj, ii int) int { return (c*2*ny+jj)*2*nx + ii }
	for k := 0; k < nz; k++ {
		top := 1000 + 10*float64(k)
		for jj := 0; jj < 2*ny; jj++ {
			for ii := 0; ii < 2*nx; ii++ {
				zcorn[at(2*k, jj, ii)] = top
				zcorn[at(2*k+1, jj, ii)] = top + 10
			}
		}
	}
	return zcorn
}
