package main

import "github.com/xvierd/botui/cmd"

func main() {
	cmd.Execute()
}
