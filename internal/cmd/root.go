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

// Package cmd implements the CornerGrid command-line interface.
package cmd

import (
	"fmt"
	"time"

	"github.com/geomodel/cornergrid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// configFile specifies the location of the configuration file.
	configFile string

	// Config holds the global configuration data.
	Config *ConfigData

	logger *logrus.Logger
)

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})

	Root.AddCommand(versionCmd)

	Root.PersistentFlags().StringVar(&configFile, "config", "./cornergrid.toml", "configuration file location")
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "cornergrid",
	Short: "A corner-point grid meshing tool.",
	Long: `CornerGrid builds volumetric simulation meshes from geological
          corner-point grid descriptions and regular block dimensions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return Startup(configFile)
	},
}

// Startup reads the configuration file.
func Startup(configFile string) error {
	var err error
	Config, err = ReadConfigFile(configFile)
	if err != nil {
		return err
	}
	logger.Infof("CornerGrid v%s", cornergrid.Version)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of CornerGrid",

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("CornerGrid v%s\n", cornergrid.Version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}
