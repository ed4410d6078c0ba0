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

import (
	"fmt"

	"github.com/geomodel/cornergrid/mesh"
	"github.com/geomodel/cornergrid/minpv"
)

// Manager exclusively owns an assembled simulation mesh. Managers are
// created by the New functions, which either succeed completely or
// return an error without leaking a mesh, and release their mesh
// exactly once, on the first Close. A Manager must not be copied.
type Manager struct {
	mesh *mesh.Mesh
}

// NewFromSource assembles a mesh from the geological grid src.
//
// If poreVolume is non-empty (one value per logical cell, m³) and
// filtering is enabled in src's minimum pore volume configuration,
// cells with too little pore volume are deactivated and collapsed
// before assembly; the filtering happens on a snapshot, never on src
// itself. Whenever filtering modifies at least one cell, the modified
// corner depth array is attached to the mesh for requery.
//
// The corner welding tolerance is the pinch threshold of src when
// pinch treatment is active, and zero otherwise. A nil poreVolume
// disables filtering.
func NewFromSource(src Source, poreVolume []float64) (*Manager, error) {
	d := descriptionFromSource(src)
	cellsModified := 0
	if len(poreVolume) > 0 && src.Minpv().Mode != MinpvInactive {
		if d.Actnum == nil {
			d.Actnum = make([]int, d.NumCells())
			for i := range d.Actnum {
				d.Actnum[i] = 1
			}
		}
		// Currently only the fill merging strategy is exercised; the
		// pinch strategy is accepted in MinpvConfig but not used here.
		n, err := minpv.New(d.Nx, d.Ny, d.Nz).Process(
			poreVolume, src.Minpv().Threshold, d.Actnum, true, d.Zcorn)
		if err != nil {
			return nil, &ConstructionError{Op: "corner-point",
				Err: fmt.Errorf("filtering cells below minimum pore volume: %v", err)}
		}
		cellsModified = n
	}

	zTol := 0.0
	if pinch := src.Pinch(); pinch.Active {
		zTol = pinch.Threshold
	}
	m, err := mesh.NewCornerPoint(d, zTol)
	if err != nil {
		return nil, &ConstructionError{Op: "corner-point", Err: err}
	}
	if cellsModified > 0 {
		m.AttachZcorn(d.Zcorn)
	}
	return &Manager{mesh: m}, nil
}

// NewCartesian2D creates a manager holding a regular nx×ny areal mesh
// with cells of unit size.
func NewCartesian2D(nx, ny int) (*Manager, error) {
	return NewCartesian2DSize(nx, ny, 1, 1)
}

// NewCartesian2DSize creates a manager holding a regular nx×ny areal
// mesh with cells of size dx×dy.
func NewCartesian2DSize(nx, ny int, dx, dy float64) (*Manager, error) {
	m, err := mesh.NewCartesian2D(nx, ny, dx, dy)
	if err != nil {
		return nil, &ConstructionError{Op: "cartesian 2-D", Err: err}
	}
	return &Manager{mesh: m}, nil
}

// NewCartesian3D creates a manager holding a regular nx×ny×nz mesh
// with cells of unit size.
func NewCartesian3D(nx, ny, nz int) (*Manager, error) {
	return NewCartesian3DSize(nx, ny, nz, 1, 1, 1)
}

// NewCartesian3DSize creates a manager holding a regular nx×ny×nz mesh
// with cells of size dx×dy×dz.
func NewCartesian3DSize(nx, ny, nz int, dx, dy, dz float64) (*Manager, error) {
	m, err := mesh.NewCartesian3D(nx, ny, nz, dx, dy, dz)
	if err != nil {
		return nil, &ConstructionError{Op: "cartesian 3-D", Err: err}
	}
	return &Manager{mesh: m}, nil
}

// NewFromFile creates a manager holding a mesh read from the named
// file. The file format used is currently undocumented, and is
// therefore only suited for internal use.
func NewFromFile(filename string) (*Manager, error) {
	m, err := mesh.ReadFile(filename)
	if err != nil {
		return nil, &ConstructionError{Path: filename, Err: err}
	}
	return &Manager{mesh: m}, nil
}

// Mesh returns the managed mesh. The mesh remains owned by the
// Manager: callers must not free it and must not retain it past Close.
// After Close, Mesh returns nil.
func (g *Manager) Mesh() *mesh.Mesh {
	return g.mesh
}

// Close releases the managed mesh. The first call frees the mesh;
// subsequent calls do nothing.
func (g *Manager) Close() error {
	if g.mesh != nil {
		g.mesh.Free()
		g.mesh = nil
	}
	return nil
}
