// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"io"
	"os"

	"tryprobe/cli/internal/config"
	"tryprobe/cli/internal/logging"
	"tryprobe/cli/internal/rpc"
	"tryprobe/cli/internal/session"

	"github.com/spf13/cobra"
)

// modelPreviewLimit bounds the listing query to the first handful of records;
// the probe only needs proof that authenticated queries answer.
const modelPreviewLimit = 10

// checkCmd represents the check command, the core diagnostic. It connects to
// the server, authenticates with the fixed admin credentials, and runs one
// bounded model listing to confirm the server is reachable and initialized.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Connect, authenticate, and run a trivial query against the server",
	Long: `The check command performs the full connectivity diagnostic: it connects to the
Tryton server, logs in with the fixed admin credentials, composes the session
identifier from the server's login reply, and issues one model search bounded
to the first 10 results.

A login failure is fatal and exits with code 1 along with a hint on how to
initialize the database. A failure of the listing query is reported but does
not change the exit code.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(config.Default(), os.Stdout)
	},
}

// runCheck executes the three-phase diagnostic: connect, authenticate, query.
// Only the login phase is fatal; the returned error drives the exit code.
func runCheck(cfg config.Config, out io.Writer) error {
	fmt.Fprintf(out, "Connecting to %s database '%s'...\n", cfg.ServerURL, cfg.Database)

	client, err := rpc.New(cfg.Endpoint())
	if err != nil {
		fmt.Fprintln(out, "❌ "+logging.PresentError("Connection failed", err))
		return err
	}
	defer client.Close()

	fmt.Fprintf(out, "Logging in as %s...\n", cfg.Username)
	stopSpinner := startInlineSpinner(out, "waiting for the server")
	values, err := client.Login(cfg.Username, cfg.Password)
	stopSpinner()
	if err != nil {
		fmt.Fprintln(out, "❌ "+logging.PresentError("Login failed", err))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "⚠️  The database may not be initialized yet.")
		fmt.Fprintf(out, "   Please run: trytond-admin -c trytond.conf -d %s --all\n", cfg.Database)
		return err
	}

	// The session identifier is the username plus whatever sequence the
	// server returned, colon-joined. Its shape is not validated.
	sessionID := session.Compose(cfg.Username, values)
	client.SetSession(sessionID)

	fmt.Fprintln(out, "✅ Logged in successfully!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Connection successful!")
	fmt.Fprintf(out, "Session ID: %s\n", sessionID)

	models, err := client.SearchModels(0, modelPreviewLimit)
	if err != nil {
		fmt.Fprintln(out, logging.PresentError("Error listing models", err))
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Found %d models (showing first %d)\n", len(models), modelPreviewLimit)
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
