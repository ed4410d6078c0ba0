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

// Package cornergrid turns geological corner-point grid descriptions
// into volumetric simulation meshes. A description consists of pillar
// coordinates, cell corner depths, optional cell activity flags, and
// an optional areal transform; descriptions come from geological
// modeling sources or from simulator input decks. Before assembly,
// cells with too little pore volume can be filtered out. The assembled
// mesh is held by a Manager that owns it exclusively and releases it
// exactly once.
package cornergrid

import "github.com/geomodel/cornergrid/mesh"

// MinpvMode selects whether minimum pore volume filtering runs before
// mesh assembly.
type MinpvMode int

const (
	// MinpvInactive disables filtering.
	MinpvInactive MinpvMode = iota
	// MinpvActive enables filtering.
	MinpvActive
)

// MinpvConfig controls minimum pore volume filtering.
type MinpvConfig struct {
	// Mode selects whether filtering runs.
	Mode MinpvMode

	// Threshold is the pore volume below which cells are filtered out
	// (m³).
	Threshold float64

	// FillMerge selects the merging strategy for filtered cells:
	// merging them into the cell below (true), or leaving the
	// collapsed interval to pinch treatment (false). Only the fill
	// strategy is currently exercised.
	FillMerge bool
}

// PinchConfig controls the welding of thin cells during assembly.
type PinchConfig struct {
	// Active enables pinch treatment.
	Active bool

	// Threshold is the thickness below which vertically adjacent cell
	// corners weld together (m).
	Threshold float64
}

// Source provides a processed geological corner-point grid for
// meshing. It is implemented by geology packages that hold such grids.
// The returned arrays are snapshot-copied before any modification, so
// mesh construction never mutates a Source.
type Source interface {
	// Dims returns the logical grid dimensions.
	Dims() (nx, ny, nz int)

	// Coord returns the pillar coordinates, six per pillar.
	Coord() []float64

	// Zcorn returns the cell corner depths, eight per cell.
	Zcorn() []float64

	// Actnum returns the cell activity flags, or nil if every cell is
	// active.
	Actnum() []int

	// MapAxes returns the areal transform, or nil if there is none.
	MapAxes() []float64

	// Minpv returns the minimum pore volume filtering configuration.
	Minpv() MinpvConfig

	// Pinch returns the pinch configuration.
	Pinch() PinchConfig
}

// descriptionFromSource snapshots src into a corner-point description
// with freshly allocated arrays.
func descriptionFromSource(src Source) *mesh.Description {
	nx, ny, nz := src.Dims()
	d := &mesh.Description{Nx: nx, Ny: ny, Nz: nz}
	d.Coord = append([]float64(nil), src.Coord()...)
	d.Zcorn = append([]float64(nil), src.Zcorn()...)
	if a := src.Actnum(); a != nil {
		d.Actnum = append([]int(nil), a...)
	}
	if ma := src.MapAxes(); ma != nil {
		d.MapAxes = append([]float64(nil), ma...)
	}
	return d
}
