// Package main is the entry point for the tryprobe CLI application.
// It verifies connectivity to a Tryton application server over XML-RPC.
package main

import (
	"tryprobe/cli/cmd"
)

// main is the entry point for the tryprobe CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
