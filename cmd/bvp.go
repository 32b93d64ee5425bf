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

// bvpCmd represents the bvp command
var bvpCmd = &cobra.Command{
	Use:   "bvp",
	Short: "Interior Laplace Dirichlet solve with close evaluation",
	Long: `
Solves the interior Dirichlet problem with a double layer ansatz and walks a
target fan up to the boundary with the compensated evaluation scheme,

gobie bvp `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bvp called")
		graph, delay, stop := runOptions(cmd)
		defer stop()
		experiments.NewDirichletBVP(processParams(cmd)).Run(graph, delay)
	},
}

func init() {
	rootCmd.AddCommand(bvpCmd)
	bvpCmd.Flags().StringP("curve", "c", "starfish", "curve family: circle, ellipse or starfish")
}
