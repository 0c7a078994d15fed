// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session composes the session identifier issued at login.
// trytond's login call answers with a sequence of values (user id and
// session key in current servers); the identifier is the username followed
// by a colon-joined rendering of that sequence, whatever its shape.
package session

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Compose builds the composite session identifier from the username and the
// values the server returned from login. The sequence is rendered as-is with
// no validation of its length or element types; an empty sequence yields the
// bare username.
func Compose(username string, values []any) string {
	parts := make([]string, 0, len(values)+1)
	parts = append(parts, username)
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ":")
}

// Header renders a composite identifier as the value of the Authorization
// header trytond expects on authenticated calls ("Session <base64>").
func Header(id string) string {
	return "Session " + base64.StdEncoding.EncodeToString([]byte(id))
}
