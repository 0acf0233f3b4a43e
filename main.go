package main

import (
	"os"

	"github.com/sunwei/cheatsheet/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:]))
}
