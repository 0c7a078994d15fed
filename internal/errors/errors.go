// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. The kinds annotate where in the probe a failure
// happened; they never change how a failure is handled.
//
// The package supports wrapping underlying errors while maintaining error kind information.
package errors

import "fmt"

// Kind is a machine-readable error category.
type Kind string

const (
	// ConnectFailed indicates the client handle could not be created.
	ConnectFailed Kind = "connect_failed"
	// LoginFailed indicates the login call was rejected or unreachable.
	LoginFailed Kind = "login_failed"
	// QueryFailed indicates a read-only RPC call failed after login.
	QueryFailed Kind = "query_failed"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }
