package main

import (
	"fmt"
	"os"

	"github.com/girste/quickcheck/cmd/quickcheck/commands"
)

func main() {
	command := "run"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "run":
		os.Exit(commands.RunReport())

	case "serve":
		os.Exit(commands.RunServe())

	case "version", "--version", "-v":
		commands.PrintVersion()
		os.Exit(0)

	case "help", "--help", "-h":
		commands.PrintHelp()
		os.Exit(0)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		commands.PrintHelp()
		os.Exit(1)
	}
}
