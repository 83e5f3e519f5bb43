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
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	astral "github.com/chillcicada/easytier-astral"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "display version",
	Long:  `display version`,
	Run: func(cmd *cobra.Command, args []string) {
		long, err := cmd.Flags().GetBool("long")
		cobra.CheckErr(err)
		printVersion(cmd.OutOrStdout(), long)
	},
}

func printVersion(w io.Writer, long bool) {
	fmt.Fprint(w, astral.Version)
	if long {
		fmt.Fprint(w, ": ")
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if strings.Contains(setting.Key, "vcs") {
					fmt.Fprint(w, setting.Value+" ")
				}
			}
		}
	}
	fmt.Fprint(w, "\n")
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("long", "l", false, "display additional details")
}
