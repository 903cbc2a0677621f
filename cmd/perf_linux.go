//go:build linux

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

	perf "github.com/hodgesds/perf-utils"
)

// countSolve runs solve under a CPU instruction counter and repeat under a cycle counter. When the
// perf events cannot be opened the counts are skipped and solve runs uncounted.
func countSolve(solve, repeat func() error) (err error) {
	var (
		ran        bool
		pv         *perf.ProfileValue
		perfErr    error
		countedRun = func() error {
			ran = true
			return solve()
		}
	)
	pv, perfErr = perf.CPUInstructions(countedRun)
	switch {
	case ran && perfErr != nil:
		return perfErr
	case !ran:
		fmt.Printf("unable to count CPU instructions: %v\n", perfErr)
		return solve()
	}
	fmt.Printf("CPU instructions = %d\n", pv.Value)
	if pv, perfErr = perf.CPUCycles(repeat); perfErr != nil {
		fmt.Printf("unable to count CPU cycles: %v\n", perfErr)
		return
	}
	fmt.Printf("CPU cycles = %d\n", pv.Value)
	return
}
