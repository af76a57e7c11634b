package main

import "github.com/hifiberry/dspprofiles/cmd"

func main() {
	cmd.Execute()
}
