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
	"io/ioutil"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spectralkit/gobie/params"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gobie",
	Short: "Boundary integral convergence experiments for Laplace and Stokes",
	Long: `
Runs the numerical experiments of the close evaluation paper: dense Nystrom
kernel matrices and compensated close evaluation for the Laplace and Stokes
double layer potentials on closed curves, printed as convergence tables.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gobie.yaml)")
	rootCmd.PersistentFlags().StringP("paramsFile", "I", "", "YAML file carrying the experiment parameters")
	rootCmd.PersistentFlags().BoolP("graph", "g", false, "display a graph while computing")
	rootCmd.PersistentFlags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile of the run")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gobie" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gobie")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// processParams builds the experiment parameters from defaults, the optional
// YAML file and the command line overrides, in that order.
func processParams(cmd *cobra.Command) (ip *params.Parameters) {
	ip = params.NewParameters()
	if file, _ := cmd.Flags().GetString("paramsFile"); len(file) != 0 {
		data, err := ioutil.ReadFile(file)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = ip.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	if cmd.Flags().Changed("side") {
		ip.Side, _ = cmd.Flags().GetString("side")
	}
	if cmd.Flags().Changed("curve") {
		ip.Curve, _ = cmd.Flags().GetString("curve")
	}
	if cmd.Flags().Changed("mu") {
		ip.Mu, _ = cmd.Flags().GetFloat64("mu")
	}
	return
}

// runOptions pulls the shared plotting and profiling switches.
func runOptions(cmd *cobra.Command) (graph bool, delay time.Duration, stop func()) {
	graph, _ = cmd.Flags().GetBool("graph")
	dr, _ := cmd.Flags().GetInt("delay")
	delay = time.Duration(dr) * time.Millisecond
	stop = func() {}
	if prof, _ := cmd.Flags().GetBool("profile"); prof {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		stop = p.Stop
	}
	return
}
