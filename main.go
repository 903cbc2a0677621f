package main

import "github.com/notargets/advect1d/cmd"

func main() {
	cmd.Execute()
}
