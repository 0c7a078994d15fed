// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"tryprobe/cli/internal/config"
	"tryprobe/cli/internal/logging"
	"tryprobe/cli/internal/rpc"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// databasesCmd represents the databases command for listing the databases the
// server hosts. The common.db.list call requires no authentication, so this
// works against a freshly installed server with no initialized database.
var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List databases hosted by the server",
	Long: `The databases command asks the server for the list of databases it hosts.
No authentication is required, which makes this useful for checking whether
the target database exists before running the full diagnostic.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()

		client, err := rpc.New(cfg.Endpoint())
		if err != nil {
			pterm.Println("❌ " + logging.PresentError("Connection failed", err))
			return err
		}
		defer client.Close()

		names, err := client.ListDatabases()
		if err != nil {
			pterm.Println("❌ " + logging.PresentError("Error listing databases", err))
			pterm.Println("   Check that the server is running at " + cfg.ServerURL)
			return err
		}

		if len(names) == 0 {
			pterm.Println("⚠️  The server hosts no databases yet.")
			pterm.Printf("   Please run: trytond-admin -c trytond.conf -d %s --all\n", cfg.Database)
			return nil
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Databases")).
			WithLeftPadding(1).
			WithRightPadding(1).
			WithTopPadding(1).
			WithBottomPadding(1).
			Println(strings.Join(names, "\n"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(databasesCmd)
}
