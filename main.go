package main

import "model-compare/cmd"

func main() {
	cmd.Execute()
}
