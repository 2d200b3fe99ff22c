package main

import "github.com/hexlattice/contourpress/cmd/contourpress/cmd"

func main() {
	cmd.Execute()
}
