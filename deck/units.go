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

package deck

import "github.com/ctessum/unit"

// UnitSystem is the system of units deck values are expressed in.
type UnitSystem struct {
	name   string
	length float64 // meters per length unit
}

var (
	// Metric is the metric unit system: lengths in meters.
	Metric = UnitSystem{name: "METRIC", length: 1}

	// Field is the field unit system: lengths in feet.
	Field = UnitSystem{name: "FIELD", length: 0.3048}
)

func (s UnitSystem) String() string { return s.name }

// Length expresses a length value from the unit system in SI units.
func (s UnitSystem) Length(v float64) *unit.Unit {
	return unit.New(v*s.length, unit.Meter)
}

// Convert expresses v, a value with the given physical dimensions in
// the unit system, in SI units. Dimensionless values pass through
// unchanged.
func (s UnitSystem) Convert(v float64, dims unit.Dimensions) *unit.Unit {
	if dims.Matches(unit.Meter) {
		return s.Length(v)
	}
	return unit.New(v, dims)
}
