package main

import "github.com/fuzzyforest/shallot-strings/cmd"

func main() {
	cmd.Execute()
}
