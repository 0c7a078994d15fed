// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		username string
		values   []any
		want     string
	}{
		{
			name:     "user id and session key",
			username: "admin",
			values:   []any{int64(1), "a1b2c3d4"},
			want:     "admin:1:a1b2c3d4",
		},
		{
			name:     "empty sequence yields bare username",
			username: "admin",
			values:   nil,
			want:     "admin",
		},
		{
			name:     "single value",
			username: "demo",
			values:   []any{"only"},
			want:     "demo:only",
		},
		{
			name:     "mixed value types rendered verbatim",
			username: "admin",
			values:   []any{42, true, "key"},
			want:     "admin:42:true:key",
		},
		{
			name:     "values containing colons are not escaped",
			username: "admin",
			values:   []any{"a:b"},
			want:     "admin:a:b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.username, tt.values)
			if got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	id := "admin:1:a1b2c3d4"
	got := Header(id)
	if !strings.HasPrefix(got, "Session ") {
		t.Fatalf("Header() = %q, want 'Session ' prefix", got)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "Session "))
	if err != nil {
		t.Fatalf("Header() payload is not valid base64: %v", err)
	}
	if string(decoded) != id {
		t.Errorf("Header() payload = %q, want %q", decoded, id)
	}
}
