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
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigData holds information about a CornerGrid configuration.
type ConfigData struct {
	// MeshFile is the path to the mesh file: the cartesian command
	// writes it and the info command reads it. The path can include
	// environment variables.
	MeshFile string

	// Cartesian specifies the regular mesh the cartesian command
	// builds.
	Cartesian struct {
		// Nx, Ny, and Nz are the number of cells along each axis.
		// Dimensions left unset default to 1.
		Nx, Ny, Nz int

		// Dx, Dy, and Dz are the cell sizes along each axis in meters.
		// Sizes left unset default to 1.
		Dx, Dy, Dz float64
	}
}

// ReadConfigFile reads and parses a TOML configuration file.
func ReadConfigFile(filename string) (config *ConfigData, err error) {
	// Open the configuration file
	var (
		file  *os.File
		bytes []byte
	)
	file, err = os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("the configuration file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and "+
			"try again.\n", filename)
	}
	reader := bufio.NewReader(file)
	bytes, err = ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("problem reading configuration file: %v", err)
	}

	config = new(ConfigData)
	_, err = toml.Decode(string(bytes), config)
	if err != nil {
		return nil, fmt.Errorf(
			"there has been an error parsing the configuration file: %v\n", err)
	}

	config.MeshFile = os.ExpandEnv(config.MeshFile)
	if config.MeshFile == "" {
		return nil, fmt.Errorf("you need to specify a mesh file in the " +
			"configuration file (for example: \"MeshFile\":\"mesh.ncf\")")
	}

	c := &config.Cartesian
	if c.Nx == 0 {
		c.Nx = 1
	}
	if c.Ny == 0 {
		c.Ny = 1
	}
	if c.Nz == 0 {
		c.Nz = 1
	}
	if c.Dx == 0 {
		c.Dx = 1
	}
	if c.Dy == 0 {
		c.Dy = 1
	}
	if c.Dz == 0 {
		c.Dz = 1
	}
	if c.Nx < 0 || c.Ny < 0 || c.Nz < 0 || c.Dx < 0 || c.Dy < 0 || c.Dz < 0 {
		return nil, fmt.Errorf("the Cartesian dimensions and cell sizes in the "+
			"configuration file need to be positive, but are currently set to "+
			"(%d, %d, %d) cells of size (%g, %g, %g)", c.Nx, c.Ny, c.Nz, c.Dx, c.Dy, c.Dz)
	}

	outdir := filepath.Dir(config.MeshFile)
	err = os.MkdirAll(outdir, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("problem creating output directory: %v", err)
	}
	return
}
