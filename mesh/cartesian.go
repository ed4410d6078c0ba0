/*
Copyright © 2017 the CornerGrid authors.
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

// NewCartesian3D builds a regular nx×ny×nz mesh of dx×dy×dz cells with
// its origin at (0, 0, 0). Every cell is active.
func NewCartesian3D(nx, ny, nz int, dx, dy, dz float64) (*Mesh, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("mesh: nonpositive cartesian dimensions (%d, %d, %d)", nx, ny, nz)
	}
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return nil, fmt.Errorf("mesh: nonpositive cell size (%g, %g, %g)", dx, dy, dz)
	}
	m := &Mesh{nx: nx, ny: ny, nz: nz}
	nn := (nx + 1) * (ny + 1) * (nz + 1)
	m.nodeX = make([]float64, 0, nn)
	m.nodeY = make([]float64, 0, nn)
	m.nodeZ = make([]float64, 0, nn)
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				m.nodeX = append(m.nodeX, float64(i)*dx)
				m.nodeY = append(m.nodeY, float64(j)*dy)
				m.nodeZ = append(m.nodeZ, float64(k)*dz)
			}
		}
	}
	node := func(i, j, k int) int { return i + (nx+1)*(j+(ny+1)*k) }
	nc := nx * ny * nz
	m.cellNodes = make([]int, 0, 8*nc)
	m.globalCell = make([]int, 0, nc)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				for kk := 0; kk < 2; kk++ {
					for jj := 0; jj < 2; jj++ {
						for ii := 0; ii < 2; ii++ {
							m.cellNodes = append(m.cellNodes, node(i+ii, j+jj, k+kk))
						}
					}
				}
				m.globalCell = append(m.globalCell, i+nx*(j+ny*k))
			}
		}
	}
	if err := m.finish(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewCartesian2D builds a regular nx×ny areal mesh of dx×dy cells,
// modeled as a single layer of unit thickness, so cell volumes equal
// the cell areas.
func NewCartesian2D(nx, ny int, dx, dy float64) (*Mesh, error) {
	return NewCartesian3D(nx, ny, 1, dx, dy, 1)
}
