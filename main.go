package main

import "github.com/df07/go-outdoor-mapgen/cmd"

func main() {
	cmd.Execute()
}
