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

	"github.com/geomodel/cornergrid/deck"
	"github.com/geomodel/cornergrid/mesh"
)

// DescriptionFromDeck extracts a corner-point grid description from the
// keywords of a simulator input deck.
//
// Grid dimensions come from the first three items of the DIMENS
// keyword, or of SPECGRID when DIMENS is absent; DIMENS takes
// precedence when both are present. The ZCORN and COORD keywords are
// required. ACTNUM is optional, and when it is absent the description
// reports every cell active through a nil Actnum rather than an
// allocated array of ones. MAPAXES is optional. A missing required
// keyword is reported as a *SchemaError.
//
// The returned description owns freshly allocated copies of all the
// keyword data, converted to SI units according to the deck unit
// system, so the deck and the description can be modified and released
// independently.
func DescriptionFromDeck(d *deck.Deck) (*mesh.Description, error) {
	g := new(mesh.Description)

	var dimkw *deck.Keyword
	switch {
	case d.Has("DIMENS"):
		dimkw, _ = d.Keyword("DIMENS")
	case d.Has("SPECGRID"):
		dimkw, _ = d.Keyword("SPECGRID")
	default:
		return nil, &SchemaError{Keywords: []string{"DIMENS", "SPECGRID"}}
	}
	if len(dimkw.Ints) < 3 {
		return nil, fmt.Errorf("cornergrid: keyword %s has %d items but grid dimensions require 3",
			dimkw.Name, len(dimkw.Ints))
	}
	g.Nx, g.Ny, g.Nz = dimkw.Int(0), dimkw.Int(1), dimkw.Int(2)

	for _, name := range [2]string{"ZCORN", "COORD"} {
		if !d.Has(name) {
			return nil, &SchemaError{Keywords: []string{name}}
		}
	}
	var err error
	if g.Zcorn, err = d.SIDoubleData("ZCORN"); err != nil {
		return nil, fmt.Errorf("cornergrid: extracting ZCORN: %v", err)
	}
	if g.Coord, err = d.SIDoubleData("COORD"); err != nil {
		return nil, fmt.Errorf("cornergrid: extracting COORD: %v", err)
	}
	if d.Has("ACTNUM") {
		if g.Actnum, err = d.IntData("ACTNUM"); err != nil {
			return nil, fmt.Errorf("cornergrid: extracting ACTNUM: %v", err)
		}
	}
	if d.Has("MAPAXES") {
		if g.MapAxes, err = d.SIDoubleData("MAPAXES"); err != nil {
			return nil, fmt.Errorf("cornergrid: extracting MAPAXES: %v", err)
		}
	}
	return g, nil
}
