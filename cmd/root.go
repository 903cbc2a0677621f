/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

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
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "advect1d",
	Short: "Finite difference schemes for periodic linear advection",
	Long: `
Solves u_t + a*u_x = 0 on a periodic interval with a choice of finite difference
schemes, including a flux limited scheme with selectable limiters, and reports
total variation and error diagnostics of the result.

Run parameters come from flags, ADVECT1D_* environment variables, the config file
or a YAML run file given with --inputFile, e.g.

advect1d solve --scheme flux-limiter --limiter superbee --cells 200 --steps 2000`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.advect1d.yaml)")

	// Run parameters shared by every solver command
	rootCmd.PersistentFlags().StringP("inputFile", "I", "", "YAML run file, see InputParameters1D for the keys")
	rootCmd.PersistentFlags().StringP("scheme", "s", "", "scheme: upwind-forward, upwind-backward, upwind-trapezoidal, centered-forward, centered-backward, centered-trapezoidal, lax-wendroff, leapfrog, flux-limiter")
	rootCmd.PersistentFlags().StringP("limiter", "l", "", "flux limiter: upwind, lax-wendroff, beam-warming, fromm, minmod, superbee, sweby, mc, van-leer")
	rootCmd.PersistentFlags().Float64("beta", 0, "Sweby limiter parameter, between 1 and 2")
	rootCmd.PersistentFlags().Float64("epsilon", 0, "regularization of the limiter slope ratio")
	rootCmd.PersistentFlags().Float64P("velocity", "a", 0, "advection velocity")
	rootCmd.PersistentFlags().Float64("xMin", 0, "left end of the periodic domain")
	rootCmd.PersistentFlags().Float64("xMax", 0, "right end of the periodic domain")
	rootCmd.PersistentFlags().IntP("cells", "x", 0, "number of cells")
	rootCmd.PersistentFlags().IntP("steps", "t", 0, "number of time levels")
	rootCmd.PersistentFlags().IntP("revolutions", "r", 0, "number of times the solution crosses the domain")
	rootCmd.PersistentFlags().String("initType", "", "initial condition: tophat, gaussian, sine")
	rootCmd.PersistentFlags().Float64("height", 0, "height of the initial profile")
	rootCmd.PersistentFlags().Float64("width", 0, "width of the initial profile, or number of periods for sine")
	rootCmd.PersistentFlags().Float64("center", 0, "center of the initial profile")
	for _, key := range runKeys {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(err)
		}
	}
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

		// Search config in home directory with name ".advect1d" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".advect1d")
	}

	viper.SetEnvPrefix("ADVECT1D")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
