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

	"github.com/chillcicada/easytier-astral/internal/globals"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

// varsCmd represents the vars command
var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "display runtime variables",
	Long:  `display the effective value of every runtime variable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cmd.Flags().GetBool("pretty")
		cobra.CheckErr(err)
		return printVars(cmd.OutOrStdout(), p)
	},
}

func printVars(w io.Writer, p bool) error {
	values, err := globals.Snapshot()
	if err != nil {
		return err
	}
	if p {
		_, err := pretty.Fprintf(w, "%# v\n", values)
		return err
	}
	for _, name := range globals.Names() {
		fmt.Fprintf(w, "%s=%v\n", name, values[name])
	}
	return nil
}

func init() {
	rootCmd.AddCommand(varsCmd)
	varsCmd.Flags().BoolP("pretty", "p", false, "pretty print")
}
