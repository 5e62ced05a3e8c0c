package commands

import (
	"fmt"

	"github.com/girste/quickcheck/internal/util"
)

// PrintHelp displays the main help message
func PrintHelp() {
	help := `quickcheck - Read-only Linux security snapshot

USAGE:
    quickcheck [COMMAND]

COMMANDS:
    run         Print the report (default)
    serve       Serve the report as MCP tools on stdio
    version     Show version
    help        This help

REPORT SECTIONS:
    Identity (user, hostname, uname -a, time)
    Logged-in users (who)
    Listening ports (ss -tuln, or netstat -tuln; first 20 lines)
    SSH configuration (Port, PermitRootLogin, PasswordAuthentication)
    Firewall status (ufw status, when ufw is installed)

    The report never modifies the system and always exits 0.

CONFIGURATION:
    Optional. Config file locations (in order of priority):
    - $QUICKCHECK_CONFIG_DIR/.quickcheck.yaml
    - .quickcheck.yaml (current directory)
    - ~/.quickcheck.yaml (home directory)
    - /etc/quickcheck/config.yaml (system-wide)

    Keys: sshdConfigPath, portLines, commandTimeoutSeconds

    Diagnostics go to stderr; set LOG_LEVEL=debug to see every command.
`
	fmt.Print(help)
}

// PrintVersion displays version information
func PrintVersion() {
	fmt.Printf("quickcheck version %s\n", util.Version)
}
