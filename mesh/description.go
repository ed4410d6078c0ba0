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

import "fmt"

// Description is a geological corner-point description of a grid: the
// pillar lines the cell corners slide along, the corner depths of every
// cell, and optionally cell activity flags and an areal transform.
// It is the input contract of the corner-point mesh builder.
type Description struct {
	// Nx, Ny, and Nz are the logical grid dimensions.
	Nx, Ny, Nz int

	// Coord holds the pillar lines: six values for each of the
	// (Nx+1)×(Ny+1) pillars, giving the x, y, and z coordinates of the
	// two pillar endpoints. Pillar (i,j) starts at index 6*(i+(Nx+1)*j).
	Coord []float64

	// Zcorn holds the corner depths: eight values per cell. The depth of
	// corner (ii,jj,kk) of cell (i,j,k), where ii, jj, and kk select the
	// corner along each axis, is at index
	// ((2k+kk)*2Ny+(2j+jj))*2Nx + 2i+ii. Corner (ii,jj) lies on pillar
	// (i+ii, j+jj).
	Zcorn []float64

	// Actnum holds one activity flag per cell, in the same cell order as
	// Zcorn (i fastest): zero marks a cell inactive. A nil Actnum means
	// every cell is active.
	Actnum []int

	// MapAxes optionally holds an areal transform as the map coordinates
	// of three points: one unit along the grid y axis (x1,y1), the grid
	// origin (x0,y0), and one unit along the grid x axis (x2,y2). When
	// nil, pillar coordinates are used as-is.
	MapAxes []float64
}

// NumCells returns the number of logical cells Nx×Ny×Nz.
func (d *Description) NumCells() int {
	return d.Nx * d.Ny * d.Nz
}

// NumPillars returns the number of pillars (Nx+1)×(Ny+1).
func (d *Description) NumPillars() int {
	return (d.Nx + 1) * (d.Ny + 1)
}

// Check returns an error if the dimensions are not positive or any of
// the arrays does not have the length the dimensions require.
func (d *Description) Check() error {
	if d.Nx <= 0 || d.Ny <= 0 || d.Nz <= 0 {
		return fmt.Errorf("mesh: nonpositive grid dimensions (%d, %d, %d)", d.Nx, d.Ny, d.Nz)
	}
	if len(d.Coord) != 6*d.NumPillars() {
		return fmt.Errorf("mesh: coord length is %d but %d×%d pillars require %d",
			len(d.Coord), d.Nx+1, d.Ny+1, 6*d.NumPillars())
	}
	if len(d.Zcorn) != 8*d.NumCells() {
		return fmt.Errorf("mesh: zcorn length is %d but %d cells require %d",
			len(d.Zcorn), d.NumCells(), 8*d.NumCells())
	}
	if d.Actnum != nil && len(d.Actnum) != d.NumCells() {
		return fmt.Errorf("mesh: actnum length is %d but there are %d cells",
			len(d.Actnum), d.NumCells())
	}
	if d.MapAxes != nil && len(d.MapAxes) != 6 {
		return fmt.Errorf("mesh: mapaxes length is %d, want 6", len(d.MapAxes))
	}
	return nil
}

// Copy returns a deep copy of d.
func (d *Description) Copy() *Description {
	o := &Description{Nx: d.Nx, Ny: d.Ny, Nz: d.Nz}
	o.Coord = append([]float64(nil), d.Coord...)
	o.Zcorn = append([]float64(nil), d.Zcorn...)
	if d.Actnum != nil {
		o.Actnum = append([]int(nil), d.Actnum...)
	}
	if d.MapAxes != nil {
		o.MapAxes = append([]float64(nil), d.MapAxes...)
	}
	return o
}
