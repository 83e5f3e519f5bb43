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

	astral "github.com/chillcicada/easytier-astral"
	"github.com/spf13/cobra"
)

// machineIDCmd represents the machine-id command
var machineIDCmd = &cobra.Command{
	Use:   "machine-id",
	Short: "display machine id",
	Long: `display the machine id announced to peers.
derived from machine_uid if set, otherwise from the host machine id.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), astral.MachineID())
	},
}

func init() {
	rootCmd.AddCommand(machineIDCmd)
}
