/*
Copyright © 2019 the CornerGrid authors.
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

// Command cornergrid is a command-line interface for the CornerGrid
// meshing tool.
package main

import (
	"fmt"
	"os"

	"github.com/geomodel/cornergrid/internal/cmd"
)

func main() {
	if err := cmd.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
