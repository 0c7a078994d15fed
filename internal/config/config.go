// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config holds the fixed connection settings for the diagnostic.
// Endpoint and credentials are deliberately hard-coded: tryprobe is a
// connectivity probe for a local development server, not a configurable
// client, and it reads no environment variables and no config file.
package config

import "strings"

const (
	// DefaultServerURL is the XML-RPC endpoint of the local trytond instance.
	DefaultServerURL = "http://localhost:8001/"
	// DefaultDatabase is the database the probe targets.
	DefaultDatabase = "demo"
	// DefaultUsername is the admin account created by trytond-admin.
	DefaultUsername = "admin"
	// DefaultPassword is the default admin password.
	DefaultPassword = "admin"
)

// Config holds the connection settings for a single probe run.
type Config struct {
	ServerURL string
	Database  string
	Username  string
	Password  string
}

// Default returns the fixed settings the probe runs with.
func Default() Config {
	return Config{
		ServerURL: DefaultServerURL,
		Database:  DefaultDatabase,
		Username:  DefaultUsername,
		Password:  DefaultPassword,
	}
}

// Endpoint joins the server URL with the database path segment, the way
// trytond routes XML-RPC requests (http://host:port/<database>/).
func (c Config) Endpoint() string {
	return strings.TrimRight(c.ServerURL, "/") + "/" + c.Database + "/"
}
