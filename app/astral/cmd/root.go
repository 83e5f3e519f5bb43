/*
Copyright © 2024 Matthew R Kasun <mkasun@nusak.ca>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log/slog"
	"os"

	astral "github.com/chillcicada/easytier-astral"
	"github.com/chillcicada/easytier-astral/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbosity  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "astral",
	Short: "astral runtime variables",
	Long: `inspect the process-wide runtime variables of astral
(reconnect intervals, machine uid) as resolved from
defaults, config file and ASTRAL_ environment variables.`,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", "", "logging verbosity (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile(), "config file")
}

// initConfig reads in config file and ENV variables and seeds the globals.
func initConfig(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if verbosity != "" {
		settings.Verbosity = verbosity
	}
	astral.SetLogging(settings.Verbosity)
	slog.Debug("using configuration", "file", configFile, "config", settings)
	return settings.Apply()
}
