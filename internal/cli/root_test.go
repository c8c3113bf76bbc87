package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/codegen-labs/codegen/internal/release"
	"github.com/spf13/viper"
)

// isolate points HOME at a fresh directory and clears global config state.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CODEGEN_ENDPOINT", "")
	t.Setenv("CODEGEN_TIMEOUT", "")
	t.Setenv("CODEGEN_NO_COLOR", "")
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

// runCLI executes args against a fresh command tree.
func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	viper.Reset()
	var out, errOut bytes.Buffer
	a := newApp("dev", "none", "unknown", strings.NewReader(stdin), &out, &errOut)
	err = a.run(context.Background(), args)
	return out.String(), errOut.String(), err
}

// newProxy starts a generation service that answers every prompt with
// status and body, and counts requests.
func newProxy(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	hits := new(atomic.Int32)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, hits
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("output missing %q\n--- got ---\n%s", want, output)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("version --short: %v", err)
	}
	if out != "dev\n" {
		t.Errorf("version --short = %q, want %q", out, "dev\n")
	}

	out, _, err = runCLI(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("version --json: %v", err)
	}
	assertContains(t, out, `"commit": "none"`)

	out, _, _ = runCLI(t, "", "version")
	assertContains(t, out, "codegen version dev (commit: none, built: unknown)")
}

func TestConfigSetGetList(t *testing.T) {
	home := isolate(t)

	if _, _, err := runCLI(t, "", "config", "set", "timeout", "5s"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".codegen", "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out, _, err := runCLI(t, "", "config", "get", "timeout")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(out) != "5s" {
		t.Errorf("config get timeout = %q, want 5s", out)
	}

	out, _, err = runCLI(t, "", "config", "list")
	if err != nil {
		t.Fatalf("config list: %v", err)
	}
	assertContains(t, out, "timeout = 5s")
	assertContains(t, out, "endpoint = https://")
}

func TestConfigSetIgnoresGlobalOverrides(t *testing.T) {
	home := isolate(t)
	t.Setenv("CODEGEN_NO_COLOR", "true")

	if _, _, err := runCLI(t, "", "--endpoint", "http://flag.test/generate", "config", "set", "timeout", "5s"); err != nil {
		t.Fatalf("config set: %v", err)
	}

	data := readFile(t, filepath.Join(home, ".codegen", "config.yaml"))
	if strings.Contains(data, "endpoint") || strings.Contains(data, "no_color") {
		t.Errorf("config file picked up overrides:\n%s", data)
	}
	assertContains(t, data, "timeout: 5s")
}

func TestConfigHelpNamesEnvVars(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, "", "config", "--help")
	if err != nil {
		t.Fatalf("config --help: %v", err)
	}
	for _, name := range []string{"CODEGEN_ENDPOINT", "CODEGEN_TIMEOUT", "CODEGEN_NO_COLOR"} {
		assertContains(t, out, name)
	}
}

func TestConfigRejectsBadInput(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown key on set", []string{"config", "set", "color", "red"}, `unknown config key "color"`},
		{"unknown key on get", []string{"config", "get", "color"}, `unknown config key "color"`},
		{"bad timeout", []string{"config", "set", "timeout", "soon"}, `invalid timeout "soon"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := runCLI(t, "", tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			assertContains(t, err.Error(), tt.want)
			assertContains(t, stderr, "✗ ")
		})
	}
}

func TestUnknownFlagIsReported(t *testing.T) {
	isolate(t)

	_, stderr, err := runCLI(t, "", "component", "--colour", "red")
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	assertContains(t, stderr, "unknown flag: --colour")
}

func TestDoctor(t *testing.T) {
	isolate(t)
	root := t.TempDir()

	t.Run("healthy", func(t *testing.T) {
		server, _ := newProxy(t, http.StatusOK, `{"content":"ok"}`)
		out, _, err := runCLI(t, "", "doctor", "--endpoint", server.URL, "--root", root)
		if err != nil {
			t.Fatalf("doctor: %v", err)
		}
		assertContains(t, out, "[ OK ] "+server.URL)
		assertContains(t, out, "[ OK ] "+root+" is writable")
		assertContains(t, out, "not found, using defaults")

		entries, _ := os.ReadDir(root)
		if len(entries) != 0 {
			t.Errorf("doctor left %d files in root", len(entries))
		}
	})

	t.Run("service down", func(t *testing.T) {
		server, _ := newProxy(t, http.StatusBadGateway, `{"error":"down"}`)
		out, _, err := runCLI(t, "", "doctor", "--endpoint", server.URL, "--root", root)
		if err == nil {
			t.Fatal("expected doctor to fail")
		}
		assertContains(t, err.Error(), "1 check(s) failed")
		assertContains(t, out, "[FAIL] "+server.URL)
	})

	t.Run("offline", func(t *testing.T) {
		out, _, err := runCLI(t, "", "doctor", "--offline", "--root", root)
		if err != nil {
			t.Fatalf("doctor --offline: %v", err)
		}
		assertContains(t, out, "[SKIP]")
	})

	t.Run("root is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		out, _, err := runCLI(t, "", "doctor", "--offline", "--root", file)
		if err == nil {
			t.Fatal("expected doctor to fail")
		}
		assertContains(t, out, "not a directory")
	})
}

func TestReleaseBannerAfterRefresh(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	github, hits := newProxy(t, http.StatusOK, `{"tag_name":"v2.0.0"}`)

	run := func(args ...string) (string, error) {
		viper.Reset()
		var out, errOut bytes.Buffer
		a := newApp("1.0.0", "abc", "today", strings.NewReader(""), &out, &errOut)
		a.releaseOps = []release.Option{release.WithAPIBase(github.URL), release.WithHTTPClient(github.Client())}
		err := a.run(context.Background(), args)
		return errOut.String(), err
	}

	stderr, err := run("doctor", "--offline", "--root", root)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if strings.Contains(stderr, "Update available") {
		t.Errorf("banner shown before any check:\n%s", stderr)
	}

	stderr, err = run("doctor", "--offline", "--root", root)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	assertContains(t, stderr, "Update available: 1.0.0 -> v2.0.0")
	if hits.Load() != 1 {
		t.Errorf("release API hit %d times, want 1", hits.Load())
	}

	stderr, _ = run("version")
	if strings.Contains(stderr, "Update available") {
		t.Errorf("version printed the banner:\n%s", stderr)
	}
}
