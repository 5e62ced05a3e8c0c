// Package quickcheck provides a read-only Linux security snapshot tool.
//
// QuickCheck prints identity, logged-in users, listening ports, key SSH
// daemon settings, and UFW firewall status for a manual spot-check.
package quickcheck
