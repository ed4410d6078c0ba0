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

// Package minpv filters cells with too little pore volume out of a
// corner-point grid description before mesh assembly, by deactivating
// them and collapsing their corner depths in place.
package minpv

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Processor filters the cells of an nx×ny×nz corner-point grid.
type Processor struct {
	nx, ny, nz int
}

// New returns a Processor for an nx×ny×nz grid.
func New(nx, ny, nz int) *Processor {
	return &Processor{nx: nx, ny: ny, nz: nz}
}

// Process deactivates every active cell whose pore volume is strictly
// below threshold, collapsing its four deeper corners onto its four
// shallower ones so the cell has zero thickness. When merge is true the
// cell below a filtered cell is merged upward: its shallow corners are
// pulled up to the collapsed plane, keeping the column watertight.
// When merge is false the collapsed interval is left open, to be
// closed by pinch treatment later in the pipeline.
//
// actnum and zcorn are modified in place; poreVolume is read-only.
// Process works column by column from shallow to deep, and returns the
// number of cells it modified.
func (p *Processor) Process(poreVolume []float64, threshold float64, actnum []int, merge bool, zcorn []float64) (int, error) {
	nc := p.nx * p.ny * p.nz
	if len(poreVolume) != nc {
		return 0, fmt.Errorf("minpv: pore volume length is %d but the %d×%d×%d grid has %d cells",
			len(poreVolume), p.nx, p.ny, p.nz, nc)
	}
	if len(actnum) != nc {
		return 0, fmt.Errorf("minpv: actnum length is %d but the grid has %d cells", len(actnum), nc)
	}
	if len(zcorn) != 8*nc {
		return 0, fmt.Errorf("minpv: zcorn length is %d but %d cells require %d", len(zcorn), nc, 8*nc)
	}
	pv := &sparse.DenseArray{Elements: poreVolume, Shape: []int{p.nz, p.ny, p.nx}}
	pv.Fix()
	zc := &sparse.DenseArray{Elements: zcorn, Shape: []int{2 * p.nz, 2 * p.ny, 2 * p.nx}}
	zc.Fix()

	modified := 0
	for j := 0; j < p.ny; j++ {
		for i := 0; i < p.nx; i++ {
			for k := 0; k < p.nz; k++ {
				c := i + p.nx*(j+p.ny*k)
				if actnum[c] == 0 || pv.Get(k, j, i) >= threshold {
					continue
				}
				actnum[c] = 0
				cz := p.cellZcorn(zc, i, j, k)
				for q := 0; q < 4; q++ {
					cz[q+4] = cz[q]
				}
				p.setCellZcorn(zc, i, j, k, cz)
				if merge && k < p.nz-1 {
					below := p.cellZcorn(zc, i, j, k+1)
					for q := 0; q < 4; q++ {
						below[q] = cz[q+4]
					}
					p.setCellZcorn(zc, i, j, k+1, below)
				}
				modified++
			}
		}
	}
	return modified, nil
}

// cellZcorn returns the eight corner depths of cell (i,j,k), shallow
// corners first.
func (p *Processor) cellZcorn(zc *sparse.DenseArray, i, j, k int) [8]float64 {
	var cz [8]float64
	for kk := 0; kk < 2; kk++ {
		for jj := 0; jj < 2; jj++ {
			for ii := 0; ii < 2; ii++ {
				cz[4*kk+2*jj+ii] = zc.Get(2*k+kk, 2*j+jj, 2*i+ii)
			}
		}
	}
	return cz
}

// setCellZcorn writes the eight corner depths of cell (i,j,k) through
// the element slice; DenseArray.Set skips zero values, and a corner
// depth can legitimately be zero.
func (p *Processor) setCellZcorn(zc *sparse.DenseArray, i, j, k int, cz [8]float64) {
	for kk := 0; kk < 2; kk++ {
		for jj := 0; jj < 2; jj++ {
			for ii := 0; ii < 2; ii++ {
				zc.Elements[zc.Index1d(2*k+kk, 2*j+jj, 2*i+ii)] = cz[4*kk+2*jj+ii]
			}
		}
	}
}
