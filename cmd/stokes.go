/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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

	"github.com/spf13/cobra"

	"github.com/spectralkit/gobie/experiments"
)

// stokesCmd represents the stokes command
var stokesCmd = &cobra.Command{
	Use:   "stokes",
	Short: "Stokes double layer constant density identities",
	Long: `
Checks the constant density velocity, pressure and traction identities of the
Stokes double layer potential against node count,

gobie stokes `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stokes called")
		graph, delay, stop := runOptions(cmd)
		defer stop()
		experiments.NewStokesIdentity(processParams(cmd)).Run(graph, delay)
	},
}

func init() {
	rootCmd.AddCommand(stokesCmd)
	stokesCmd.Flags().Float64P("mu", "m", 1, "fluid viscosity")
	stokesCmd.Flags().StringP("curve", "c", "starfish", "curve family: circle, ellipse or starfish")
}
