// Copyright (c) 2025 Tryprobe
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tryprobe/cli/internal/config"
)

const checkLoginOK = `<?xml version="1.0"?>
<methodResponse>
  <params>
    <param>
      <value><array><data>
        <value><int>1</int></value>
        <value><string>sessionkey</string></value>
      </data></array></value>
    </param>
  </params>
</methodResponse>`

const checkLoginFault = `<?xml version="1.0"?>
<methodResponse>
  <fault>
    <value><struct>
      <member><name>faultCode</name><value><int>404</int></value></member>
      <member><name>faultString</name><value><string>Wrong password</string></value></member>
    </struct></value>
  </fault>
</methodResponse>`

const checkEmptySearch = `<?xml version="1.0"?>
<methodResponse>
  <params>
    <param>
      <value><array><data></data></array></value>
    </param>
  </params>
</methodResponse>`

// newCheckServer answers login and search with the given canned responses.
func newCheckServer(t *testing.T, loginResp, searchResp string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(r.Body); err != nil {
			t.Errorf("reading request body: %v", err)
		}
		w.Header().Set("Content-Type", "text/xml")
		switch {
		case strings.Contains(buf.String(), "<methodName>common.db.login</methodName>"):
			_, _ = w.Write([]byte(loginResp))
		case strings.Contains(buf.String(), "<methodName>model.ir.model.search</methodName>"):
			_, _ = w.Write([]byte(searchResp))
		default:
			t.Errorf("unexpected method call: %s", buf.String())
			http.Error(w, "unexpected method", http.StatusNotFound)
		}
	}))
}

func testConfig(serverURL string) config.Config {
	return config.Config{
		ServerURL: serverURL + "/",
		Database:  "demo",
		Username:  "admin",
		Password:  "admin",
	}
}

func TestRunCheckLoginRejected(t *testing.T) {
	srv := newCheckServer(t, checkLoginFault, checkEmptySearch)
	defer srv.Close()

	var out bytes.Buffer
	err := runCheck(testConfig(srv.URL), &out)
	if err == nil {
		t.Fatal("runCheck() expected error on rejected login")
	}
	if !strings.Contains(out.String(), "Login failed") {
		t.Errorf("output missing login failure message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "trytond-admin -c trytond.conf -d demo --all") {
		t.Errorf("output missing remediation hint:\n%s", out.String())
	}
}

func TestRunCheckEmptyModelList(t *testing.T) {
	srv := newCheckServer(t, checkLoginOK, checkEmptySearch)
	defer srv.Close()

	var out bytes.Buffer
	err := runCheck(testConfig(srv.URL), &out)
	if err != nil {
		t.Fatalf("runCheck() error: %v", err)
	}
	if !strings.Contains(out.String(), "Session ID: admin:1:sessionkey") {
		t.Errorf("output missing composed session identifier:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Found 0 models (showing first 10)") {
		t.Errorf("output missing model count:\n%s", out.String())
	}
}

func TestRunCheckSearchFailureIsNonFatal(t *testing.T) {
	srv := newCheckServer(t, checkLoginOK, checkLoginFault)
	defer srv.Close()

	var out bytes.Buffer
	err := runCheck(testConfig(srv.URL), &out)
	if err != nil {
		t.Fatalf("runCheck() error: %v, want nil on search failure", err)
	}
	if !strings.Contains(out.String(), "Error listing models") {
		t.Errorf("output missing search failure message:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Found") {
		t.Errorf("output should not report a count after a failed search:\n%s", out.String())
	}
}
