package release

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func newGitHub(t *testing.T, status int, body string, hits *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		if !strings.HasSuffix(r.URL.Path, "/releases/latest") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLatest(t *testing.T) {
	server := newGitHub(t, http.StatusOK, `{"tag_name":"v1.2.0","html_url":"https://example.test/r"}`, nil)
	c := New("1.0.0", WithAPIBase(server.URL), WithHTTPClient(server.Client()))

	rel, err := c.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() error: %v", err)
	}
	if rel.Version != "v1.2.0" {
		t.Errorf("Version = %q, want v1.2.0", rel.Version)
	}
}

func TestLatestErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, ``},
		{"rate limited", http.StatusForbidden, ``},
		{"server error", http.StatusBadGateway, ``},
		{"bad json", http.StatusOK, `{`},
		{"no tag", http.StatusOK, `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newGitHub(t, tt.status, tt.body, nil)
			c := New("1.0.0", WithAPIBase(server.URL), WithHTTPClient(server.Client()))
			if _, err := c.Latest(context.Background()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRefreshWritesRecordAndBannerReadsIt(t *testing.T) {
	fs := afero.NewMemMapFs()
	hits := 0
	server := newGitHub(t, http.StatusOK, `{"tag_name":"v2.0.0"}`, &hits)
	c := New("1.0.0", WithAPIBase(server.URL), WithHTTPClient(server.Client()), WithFs(fs))

	c.Refresh(context.Background(), "/home/.codegen")
	rec, err := newStore(fs, "/home/.codegen").read()
	if err != nil || rec == nil {
		t.Fatalf("read() = %v, %v", rec, err)
	}
	if !rec.Newer || rec.Latest != "v2.0.0" || rec.Build != "1.0.0" {
		t.Errorf("record = %+v, want 1.0.0 -> v2.0.0", rec)
	}

	// A recent record means no second request.
	c.Refresh(context.Background(), "/home/.codegen")
	if hits != 1 {
		t.Errorf("GitHub hit %d times, want 1", hits)
	}

	var buf bytes.Buffer
	c.PrintBanner(&buf, "/home/.codegen")
	if !strings.Contains(buf.String(), "Update available: 1.0.0 -> v2.0.0") {
		t.Errorf("banner = %q", buf.String())
	}
}

func TestBannerQuietWhenCurrent(t *testing.T) {
	fs := afero.NewMemMapFs()
	server := newGitHub(t, http.StatusOK, `{"tag_name":"v1.0.0"}`, nil)
	c := New("v1.0.0", WithAPIBase(server.URL), WithHTTPClient(server.Client()), WithFs(fs))

	c.Refresh(context.Background(), "/cfg")
	var buf bytes.Buffer
	c.PrintBanner(&buf, "/cfg")
	if buf.Len() != 0 {
		t.Errorf("banner = %q, want none", buf.String())
	}
}

func TestDevBuildSkipsCheck(t *testing.T) {
	fs := afero.NewMemMapFs()
	hits := 0
	server := newGitHub(t, http.StatusOK, `{"tag_name":"v2.0.0"}`, &hits)
	c := New("dev", WithAPIBase(server.URL), WithHTTPClient(server.Client()), WithFs(fs))

	c.Refresh(context.Background(), "/cfg")
	if hits != 0 {
		t.Errorf("dev build contacted GitHub %d times", hits)
	}

	if err := newStore(fs, "/cfg").write(record{Build: "dev", Latest: "v2.0.0", Newer: true, LookedUp: time.Now()}); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	c.PrintBanner(&buf, "/cfg")
	if buf.Len() != 0 {
		t.Errorf("dev build printed banner %q", buf.String())
	}
}

func TestStoreReadMissingAndCorrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	st := newStore(fs, "/cfg")

	rec, err := st.read()
	if rec != nil || err != nil {
		t.Errorf("read() before first lookup = %v, %v", rec, err)
	}

	if err := afero.WriteFile(fs, "/cfg/"+recordFile, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := st.read(); err == nil {
		t.Error("expected decode error")
	}
}

func TestRecordDue(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		rec   *record
		build string
		want  bool
	}{
		{"no record", nil, "1.0.0", true},
		{"recent", &record{Build: "1.0.0", LookedUp: now}, "1.0.0", false},
		{"other build", &record{Build: "1.0.0", LookedUp: now}, "1.1.0", true},
		{"expired", &record{Build: "1.0.0", LookedUp: now.Add(-2 * RecheckAfter)}, "1.0.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.due(tt.build, now); got != tt.want {
				t.Errorf("due(%q) = %v, want %v", tt.build, got, tt.want)
			}
		})
	}
}
