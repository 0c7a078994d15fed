// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"

	"tryprobe/cli/internal/config"
	"tryprobe/cli/internal/logging"
	"tryprobe/cli/internal/rpc"
	"tryprobe/cli/internal/session"

	"github.com/spf13/cobra"
)

var (
	modelsOffset int
	modelsLimit  int
)

// modelsCmd represents the models command for listing model names. Unlike
// check, it reads the technical names of the matched records, which exercises
// an authenticated call carrying the session header.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List model names registered on the server",
	Long: `The models command logs in with the fixed admin credentials and lists the
technical names of the models registered on the server (ir.model records).
The window can be adjusted with --offset and --limit.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()

		client, err := rpc.New(cfg.Endpoint())
		if err != nil {
			fmt.Println("❌ " + logging.PresentError("Connection failed", err))
			return err
		}
		defer client.Close()

		stopSpinner := startInlineSpinner(os.Stdout, "waiting for the server")
		values, err := client.Login(cfg.Username, cfg.Password)
		if err != nil {
			stopSpinner()
			fmt.Println("❌ " + logging.PresentError("Login failed", err))
			fmt.Println("   Run 'tryprobe check' for initialization hints.")
			return err
		}
		client.SetSession(session.Compose(cfg.Username, values))

		ids, err := client.SearchModels(modelsOffset, modelsLimit)
		if err != nil {
			stopSpinner()
			fmt.Println("❌ " + logging.PresentError("Error listing models", err))
			return err
		}

		names, err := client.ReadModelNames(ids)
		stopSpinner()
		if err != nil {
			fmt.Println("❌ " + logging.PresentError("Error reading model names", err))
			return err
		}

		for _, name := range names {
			fmt.Println(name)
		}
		fmt.Printf("\nFound %d models (offset %d, limit %d)\n", len(ids), modelsOffset, modelsLimit)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	modelsCmd.Flags().IntVar(&modelsOffset, "offset", 0, "Number of records to skip")
	modelsCmd.Flags().IntVar(&modelsLimit, "limit", 10, "Maximum number of records to list")
}
