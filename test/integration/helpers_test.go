//go:build integration

package integration_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/codegen-labs/codegen/internal/ai"
	"github.com/codegen-labs/codegen/internal/generator"
	"github.com/spf13/afero"
	"go.uber.org/zap/zaptest"
)

// proxy is a scripted generation service. Replies are served in order; the
// last one repeats once the script runs out.
type proxy struct {
	*httptest.Server

	mu      sync.Mutex
	replies []reply
	prompts []string
}

type reply struct {
	status int
	body   string
}

func newProxy(t *testing.T, replies ...reply) *proxy {
	t.Helper()
	p := &proxy{replies: replies}
	p.Server = httptest.NewServer(http.HandlerFunc(p.serve))
	t.Cleanup(p.Close)
	return p
}

func (p *proxy) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	p.mu.Lock()
	p.prompts = append(p.prompts, string(body))
	rep := p.replies[0]
	if len(p.replies) > 1 {
		p.replies = p.replies[1:]
	}
	p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	io.WriteString(w, rep.body)
}

func (p *proxy) requests() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.prompts...)
}

// newGenerator wires a real client and the OS filesystem rooted at root.
func newGenerator(t *testing.T, endpoint, root string) *generator.Generator {
	t.Helper()
	logger := zaptest.NewLogger(t)
	client := ai.New(ai.WithEndpoint(endpoint), ai.WithLogger(logger))
	return generator.New(client,
		generator.WithFs(afero.NewBasePathFs(afero.NewOsFs(), root)),
		generator.WithLogger(logger),
	)
}

// readGolden returns a reference template output from the templates package.
func readGolden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "internal", "templates", "testdata", name))
	if err != nil {
		t.Fatalf("reading golden %s: %v", name, err)
	}
	return string(data)
}

// assertFileEquals fails if the file doesn't exist or differs from want.
func assertFileEquals(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("file %s mismatch.\n--- got ---\n%s\n--- want ---\n%s", path, data, want)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}
