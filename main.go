package main

import "github.com/spectralkit/gobie/cmd"

func main() {
	cmd.Execute()
}
