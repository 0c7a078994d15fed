// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package rpc wraps the XML-RPC surface of a trytond application server.
// It exposes the handful of methods the probe needs (login, model search,
// database listing, server version) over a single client handle and injects
// the session identifier on authenticated calls. The wire protocol itself is
// delegated entirely to the XML-RPC library; no negotiation happens here.
package rpc

import (
	"net"
	"net/http"
	"time"

	apperrors "tryprobe/cli/internal/errors"
	"tryprobe/cli/internal/session"

	"github.com/kolo/xmlrpc"
)

const (
	dialTimeout     = 5 * time.Second
	responseTimeout = 10 * time.Second
)

// Client is a thin handle over the server's XML-RPC method surface.
// It is not safe for concurrent use; the probe is fully sequential.
type Client struct {
	endpoint  string
	rpc       *xmlrpc.Client
	transport *sessionTransport
}

// sessionTransport injects the trytond session header on every request once
// a session identifier has been set.
type sessionTransport struct {
	base          http.RoundTripper
	authorization string
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.authorization == "" {
		return t.base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", t.authorization)
	return t.base.RoundTrip(clone)
}

// New creates a client handle for the given endpoint URL. No network traffic
// happens until the first call.
func New(endpoint string) (*Client, error) {
	transport := &sessionTransport{
		base: &http.Transport{
			DialContext:           (&net.Dialer{Timeout: dialTimeout}).DialContext,
			TLSHandshakeTimeout:   dialTimeout,
			ResponseHeaderTimeout: responseTimeout,
		},
	}
	rc, err := xmlrpc.NewClient(endpoint, transport)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ConnectFailed, "invalid endpoint "+endpoint, err)
	}
	return &Client{endpoint: endpoint, rpc: rc, transport: transport}, nil
}

// Endpoint returns the URL this client talks to.
func (c *Client) Endpoint() string { return c.endpoint }

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error { return c.rpc.Close() }

// Login calls common.db.login and returns the value sequence the server
// answered with. The sequence's shape is not validated: current servers
// return [user id, session key], but whatever comes back is passed through.
func (c *Client) Login(username, password string) ([]any, error) {
	var raw any
	args := []any{username, map[string]any{"password": password}}
	if err := c.rpc.Call("common.db.login", args, &raw); err != nil {
		return nil, apperrors.Wrap(apperrors.LoginFailed, "common.db.login", err)
	}
	return asSequence(raw), nil
}

// SetSession stores a composite session identifier; subsequent calls carry it
// in the Authorization header the way trytond expects.
func (c *Client) SetSession(id string) {
	c.transport.authorization = session.Header(id)
}

// SearchModels calls model.ir.model.search with an empty domain and the given
// window, returning the matched record ids.
func (c *Client) SearchModels(offset, limit int) ([]any, error) {
	var raw any
	args := []any{[]any{}, offset, limit, nil}
	if err := c.rpc.Call("model.ir.model.search", args, &raw); err != nil {
		return nil, apperrors.Wrap(apperrors.QueryFailed, "model.ir.model.search", err)
	}
	return asSequence(raw), nil
}

// ReadModelNames reads the technical names of the given ir.model record ids.
// Records the server answers in an unexpected shape are skipped.
func (c *Client) ReadModelNames(ids []any) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var raw any
	args := []any{ids, []string{"model"}, map[string]any{}}
	if err := c.rpc.Call("model.ir.model.read", args, &raw); err != nil {
		return nil, apperrors.Wrap(apperrors.QueryFailed, "model.ir.model.read", err)
	}
	var names []string
	for _, rec := range asSequence(raw) {
		fields, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := fields["model"].(string); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// ListDatabases calls common.db.list and returns the database names the
// server hosts. No authentication is required.
func (c *Client) ListDatabases() ([]string, error) {
	var names []string
	if err := c.rpc.Call("common.db.list", nil, &names); err != nil {
		return nil, apperrors.Wrap(apperrors.QueryFailed, "common.db.list", err)
	}
	return names, nil
}

// ServerVersion calls common.server.version and returns the reported version.
func (c *Client) ServerVersion() (string, error) {
	var version string
	if err := c.rpc.Call("common.server.version", []any{nil, nil}, &version); err != nil {
		return "", apperrors.Wrap(apperrors.QueryFailed, "common.server.version", err)
	}
	return version, nil
}

// asSequence normalizes a decoded reply into a value sequence. Arrays pass
// through, nil becomes empty, and any scalar becomes a one-element sequence.
func asSequence(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}
