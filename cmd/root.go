// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the tryprobe application.
// It implements subcommands for verifying connectivity to a Tryton application
// server over XML-RPC using the Cobra CLI framework. The package handles command
// parsing, execution, and user-facing status output.
package cmd

import (
	"fmt"
	"os"

	"tryprobe/cli/internal/config"
	"tryprobe/cli/internal/rpc"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the tryprobe application.
var rootCmd = &cobra.Command{
	Use:           "tryprobe",
	Short:         "Connectivity probe for a Tryton application server",
	Long:          `Tryprobe is a command-line diagnostic that connects to a Tryton application server over XML-RPC, authenticates, and runs read-only queries to confirm the server is reachable and initialized.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			serverVersion := "unknown"
			if client, err := rpc.New(config.Default().Endpoint()); err == nil {
				defer client.Close()
				if v, err := client.ServerVersion(); err == nil && v != "" {
					serverVersion = v
				}
			}
			fmt.Printf("tryprobe %s\nserver %s\n", Version, serverVersion)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI and server version information")
}
