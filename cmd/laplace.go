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

// laplaceCmd represents the laplace command
var laplaceCmd = &cobra.Command{
	Use:   "laplace",
	Short: "Laplace double layer close evaluation sweep",
	Long: `
Sweeps target distance and node count for the Laplace double layer potential,
comparing native quadrature against the compensated close evaluation scheme,

gobie laplace `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("laplace called")
		graph, delay, stop := runOptions(cmd)
		defer stop()
		c, err := experiments.NewLaplaceClose(processParams(cmd))
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			return
		}
		c.Run(graph, delay)
	},
}

func init() {
	rootCmd.AddCommand(laplaceCmd)
	laplaceCmd.Flags().StringP("side", "s", "interior", "which side of the curve to evaluate: interior or exterior")
	laplaceCmd.Flags().StringP("curve", "c", "starfish", "curve family: circle, ellipse or starfish")
}
