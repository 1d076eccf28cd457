package main

import (
	"os"

	"just/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
