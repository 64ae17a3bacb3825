package api

import (
	"net/http"
	"strings"
	"testing"
)

type projectResponse struct {
	ID         int64  `json:"id"`
	CreatorID  int64  `json:"creator_id"`
	Title      string `json:"title"`
	CategoryID int64  `json:"category_id"`
	IsActive   bool   `json:"is_active"`
	Creator    *struct {
		Email string `json:"email"`
	} `json:"creator"`
	Category *struct {
		Name string `json:"name"`
	} `json:"category"`
}

func TestProjectLifecycle(t *testing.T) {
	server, _ := newTestServer(t)

	creatorID := registerUser(t, server.URL, "creator@example.com")
	categoryID := createCategory(t, server.URL, "education")

	var created projectResponse
	resp := doJSON(t, http.MethodPost, server.URL+"/api/projects/", map[string]any{
		"creator_id":    creatorID,
		"title":         "Library Van",
		"description":   "A mobile library",
		"target_amount": 100000,
		"category_id":   categoryID,
		"date_start":    1700000000,
		"date_end":      1710000000,
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status = %d, want 201", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("create: Content-Type = %q, want application/json", ct)
	}
	if created.ID == 0 {
		t.Fatal("create: response has no id")
	}
	if created.Creator == nil || created.Creator.Email != "creator@example.com" {
		t.Fatalf("create: creator not embedded: %+v", created.Creator)
	}

	var fetched projectResponse
	resp = doJSON(t, http.MethodGet, server.URL+"/api/projects/"+itoa(created.ID), nil, &fetched)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: status = %d, want 200", resp.StatusCode)
	}
	if fetched.Title != "Library Van" || fetched.Category == nil || fetched.Category.Name != "education" {
		t.Fatalf("get: %+v does not match what was created", fetched)
	}

	var listed []projectResponse
	resp = doJSON(t, http.MethodGet, server.URL+"/api/projects/?category_id="+itoa(categoryID), nil, &listed)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: status = %d, want 200", resp.StatusCode)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("list: %+v, want the created project", listed)
	}

	var deleted map[string]string
	resp = doJSON(t, http.MethodDelete, server.URL+"/api/projects/"+itoa(created.ID), nil, &deleted)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status = %d, want 200", resp.StatusCode)
	}
	if deleted["status"] != "success" {
		t.Fatalf("delete: body = %v, want success", deleted)
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/api/projects/"+itoa(created.ID), nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: status = %d, want 404", resp.StatusCode)
	}
}

func TestProjectCreateMalformedJSON(t *testing.T) {
	server, _ := newTestServer(t)

	var body ErrorResponse
	resp := doJSON(t, http.MethodPost, server.URL+"/api/projects/", "not an object", &body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body.Status != "error" {
		t.Fatalf("body = %+v, want an error envelope", body)
	}
}

func TestProjectListRejectsBadQuery(t *testing.T) {
	server, _ := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "negative skip", query: "?skip=-1"},
		{name: "zero limit", query: "?limit=0"},
		{name: "oversized limit", query: "?limit=101"},
		{name: "non-numeric skip", query: "?skip=abc"},
		{name: "non-numeric filter", query: "?category_id=abc"},
		{name: "non-boolean filter", query: "?is_active=maybe"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodGet, server.URL+"/api/projects/"+tc.query, nil, nil)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("GET %s: status = %d, want 400", tc.query, resp.StatusCode)
			}
		})
	}
}

func TestProjectListEmptyIsJSONArray(t *testing.T) {
	server, _ := newTestServer(t)

	var listed []projectResponse
	resp := doJSON(t, http.MethodGet, server.URL+"/api/projects/", nil, &listed)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if listed == nil {
		t.Fatal("empty list decoded as null, want []")
	}
}
