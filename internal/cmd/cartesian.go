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
	"github.com/geomodel/cornergrid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// These variables override the configuration file when their flags are
// set.
var (
	nx, ny, nz int
	dx, dy, dz float64
)

func init() {
	cartesianCmd.Flags().IntVar(&nx, "nx", 0, "number of cells along the x axis")
	cartesianCmd.Flags().IntVar(&ny, "ny", 0, "number of cells along the y axis")
	cartesianCmd.Flags().IntVar(&nz, "nz", 0, "number of cells along the z axis")
	cartesianCmd.Flags().Float64Var(&dx, "dx", 0, "cell size along the x axis [m]")
	cartesianCmd.Flags().Float64Var(&dy, "dy", 0, "cell size along the y axis [m]")
	cartesianCmd.Flags().Float64Var(&dz, "dz", 0, "cell size along the z axis [m]")

	Root.AddCommand(cartesianCmd)
}

// cartesianCmd is a command that builds a regular mesh and saves it to
// the mesh file.
var cartesianCmd = &cobra.Command{
	Use:   "cartesian",
	Short: "Build a regular cartesian mesh",
	Long: "Build a regular cartesian mesh with the dimensions and cell sizes " +
		"given in the configuration file, and save it to the mesh file. " +
		"Flags override the configuration file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := &Config.Cartesian
		if cmd.Flags().Changed("nx") {
			c.Nx = nx
		}
		if cmd.Flags().Changed("ny") {
			c.Ny = ny
		}
		if cmd.Flags().Changed("nz") {
			c.Nz = nz
		}
		if cmd.Flags().Changed("dx") {
			c.Dx = dx
		}
		if cmd.Flags().Changed("dy") {
			c.Dy = dy
		}
		if cmd.Flags().Changed("dz") {
			c.Dz = dz
		}
		return Cartesian()
	},
}

// Cartesian builds the configured regular mesh and saves it to the mesh
// file.
func Cartesian() error {
	c := Config.Cartesian
	mgr, err := cornergrid.NewCartesian3DSize(c.Nx, c.Ny, c.Nz, c.Dx, c.Dy, c.Dz)
	if err != nil {
		return err
	}
	defer mgr.Close()

	m := mgr.Mesh()
	logger.WithFields(logrus.Fields{
		"cells": m.NumCells(),
		"nodes": m.NumNodes(),
		"faces": m.NumFaces(),
	}).Info("Built cartesian mesh")

	if err := m.WriteFile(Config.MeshFile); err != nil {
		return err
	}
	logger.Infof("Mesh successfully written to %s", Config.MeshFile)
	return nil
}
