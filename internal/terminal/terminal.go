// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides small helpers for terminal-dependent output.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdout is attached to a terminal.
// Progress spinners are suppressed when output is piped or captured.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
