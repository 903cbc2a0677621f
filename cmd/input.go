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

	"github.com/notargets/advect1d/InputParameters"
	"github.com/spf13/viper"
)

var runKeys = []string{
	"inputFile", "scheme", "limiter", "beta", "epsilon", "velocity", "xMin", "xMax",
	"cells", "steps", "revolutions", "initType", "height", "width", "center",
}

const exampleFile = `
########################################
Title: "Superbee tophat"
Scheme: flux-limiter # upwind-forward, lax-wendroff, leapfrog, ...
Limiter: superbee
Velocity: 1
Cells: 100
Steps: 1000
Revolutions: 2
InitType: tophat # gaussian, sine
Height: 1
Width: 0.2
Center: 0.5
########################################
`

// processInput layers the run parameters: defaults, then the YAML run file, then anything set by
// flag, environment or config file.
func processInput() (ip *InputParameters.InputParameters1D, err error) {
	ip = InputParameters.Defaults()
	if fileName := viper.GetString("inputFile"); len(fileName) != 0 {
		var data []byte
		if data, err = os.ReadFile(fileName); err != nil {
			return
		}
		if err = ip.Parse(data); err != nil {
			err = fmt.Errorf("unable to parse %s: %w\nExample File:%s", fileName, err, exampleFile)
			return
		}
	}
	setString := func(key string, dst *string) {
		if viper.IsSet(key) {
			*dst = viper.GetString(key)
		}
	}
	setFloat := func(key string, dst *float64) {
		if viper.IsSet(key) {
			*dst = viper.GetFloat64(key)
		}
	}
	setInt := func(key string, dst *int) {
		if viper.IsSet(key) {
			*dst = viper.GetInt(key)
		}
	}
	setString("scheme", &ip.Scheme)
	setString("limiter", &ip.Limiter)
	setFloat("beta", &ip.Beta)
	setFloat("epsilon", &ip.Epsilon)
	setFloat("velocity", &ip.Velocity)
	setFloat("xMin", &ip.XMin)
	setFloat("xMax", &ip.XMax)
	setInt("cells", &ip.Cells)
	setInt("steps", &ip.Steps)
	setInt("revolutions", &ip.Revolutions)
	setString("initType", &ip.InitType)
	setFloat("height", &ip.Height)
	setFloat("width", &ip.Width)
	setFloat("center", &ip.Center)
	err = ip.Validate()
	return
}
