package commands

import (
	"fmt"
	"os"

	"github.com/girste/quickcheck/internal/config"
	"github.com/girste/quickcheck/internal/mcp"
)

// RunServe serves the report as MCP tools on stdio until stdin closes.
func RunServe() int {
	for _, arg := range os.Args[2:] {
		if arg == "--help" || arg == "-h" {
			PrintServeHelp()
			return 0
		}
	}

	server := mcp.NewServer(config.LoadOrDefault())
	if err := server.Serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		return 1
	}
	return 0
}

// PrintServeHelp displays help for the serve command
func PrintServeHelp() {
	help := `quickcheck serve - Serve QuickCheck over MCP (stdio)

USAGE:
    quickcheck serve

TOOLS:
    quickcheck      Full report as text (optional argument: sshd_config)
    sshd_settings   Key sshd settings only (optional argument: sshd_config)
`
	fmt.Print(help)
}
