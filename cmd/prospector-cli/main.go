package main

import "prospector/cmd/prospector-cli/cmd"

func main() {
	cmd.Execute()
}
