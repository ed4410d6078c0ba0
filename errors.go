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
	"strings"
)

// ConstructionError is returned when a mesh factory fails to produce a
// valid mesh, so that no Manager is created.
type ConstructionError struct {
	// Op names the construction variant that failed.
	Op string

	// Path is the mesh file that could not be read, for file-based
	// construction.
	Path string

	// Err is the failure reported by the factory.
	Err error
}

func (e *ConstructionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cornergrid: constructing mesh from file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cornergrid: constructing %s mesh: %v", e.Op, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// SchemaError is returned when a deck lacks keyword data the grid
// extraction requires.
type SchemaError struct {
	// Keywords lists the keywords that could have supplied the missing
	// data; any one of them would have sufficed.
	Keywords []string
}

func (e *SchemaError) Error() string {
	if len(e.Keywords) == 1 {
		return fmt.Sprintf("cornergrid: deck is missing required keyword %s", e.Keywords[0])
	}
	return fmt.Sprintf("cornergrid: deck must have one of the keywords %s",
		strings.Join(e.Keywords, " or "))
}
