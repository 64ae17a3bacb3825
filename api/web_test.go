package api

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	var body struct {
		Status        string `json:"status"`
		UptimeSeconds *int   `json:"uptime_seconds"`
	}
	resp := doJSON(t, http.MethodGet, server.URL+"/api/health", nil, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body.Status != "ok" || body.UptimeSeconds == nil {
		t.Fatalf("body = %+v, want ok with an uptime", body)
	}
}

func TestWebPagesRender(t *testing.T) {
	server, _ := newTestServer(t)

	for _, path := range []string{"/", "/about", "/faq", "/help", "/projects"} {
		resp, err := http.Get(server.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: status = %d, want 200", path, resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("GET %s: Content-Type = %q, want text/html", path, ct)
		}
		if !strings.Contains(string(raw), "<html") {
			t.Fatalf("GET %s: body does not look like a page", path)
		}
	}
}

func TestStaticAssetsServed(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/static/css/style.css")
	if err != nil {
		t.Fatalf("GET stylesheet: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET stylesheet: status = %d, want 200", resp.StatusCode)
	}
}
