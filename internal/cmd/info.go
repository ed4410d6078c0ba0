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

package cmd

import (
	"fmt"

	"github.com/geomodel/cornergrid"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

func init() {
	Root.AddCommand(infoCmd)
}

// infoCmd is a command that summarizes the mesh stored in the mesh
// file.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize the stored mesh",
	Long: "Read the mesh file and print the mesh dimensions, extents, " +
		"and cell volume statistics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Info()
	},
}

// Info reads the mesh file and prints a summary of the mesh.
func Info() error {
	mgr, err := cornergrid.NewFromFile(Config.MeshFile)
	if err != nil {
		return err
	}
	defer mgr.Close()

	m := mgr.Mesh()
	nx, ny, nz := m.Dims()
	fmt.Printf("Mesh file:    %s\n", Config.MeshFile)
	fmt.Printf("Dimensions:   %d x %d x %d\n", nx, ny, nz)
	fmt.Printf("Active cells: %d\n", m.NumCells())
	fmt.Printf("Nodes:        %d\n", m.NumNodes())
	fmt.Printf("Faces:        %d\n", m.NumFaces())
	if m.NumCells() == 0 {
		return nil
	}
	b := m.Bounds()
	zmin, zmax := m.DepthExtent()
	fmt.Printf("Areal extent: (%g, %g) to (%g, %g)\n", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	fmt.Printf("Depth extent: %g to %g\n", zmin, zmax)
	volumes := make([]float64, m.NumCells())
	for i, c := range m.Cells() {
		volumes[i] = c.Volume
	}
	fmt.Printf("Cell volumes: min %g, max %g, total %g\n",
		floats.Min(volumes), floats.Max(volumes), floats.Sum(volumes))
	return nil
}
