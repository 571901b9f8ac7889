package main

import (
	"os"

	"github.com/sahib/termpasshash/cmd"
)

func main() {
	os.Exit(cmd.RunCmdline(os.Args))
}
