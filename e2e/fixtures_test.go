//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// fakePixabay serves a fixed number of hits for every query.
// "xyzzyunknown" has no hits and "explode" answers with a 500.
type fakePixabay struct {
	*httptest.Server
	total int

	mu       sync.Mutex
	requests []string // "query:page"
}

type fakeHit struct {
	ID            int    `json:"id"`
	PageURL       string `json:"pageURL"`
	Tags          string `json:"tags"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
	ImageWidth    int    `json:"imageWidth"`
	ImageHeight   int    `json:"imageHeight"`
	User          string `json:"user"`
}

func newFakePixabay(total int) *fakePixabay {
	f := &fakePixabay{total: total}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *fakePixabay) serve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	f.mu.Lock()
	f.requests = append(f.requests, fmt.Sprintf("%s:%d", query, page))
	f.mu.Unlock()

	switch query {
	case "explode":
		http.Error(w, "[ERROR 500] upstream exploded", http.StatusInternalServerError)
		return
	case "xyzzyunknown":
		_ = json.NewEncoder(w).Encode(map[string]any{"total": 0, "totalHits": 0, "hits": []fakeHit{}})
		return
	}

	hits := []fakeHit{}
	for i := (page - 1) * perPage; i < page*perPage && i < f.total; i++ {
		hits = append(hits, fakeHit{
			ID:            i + 1,
			PageURL:       fmt.Sprintf("https://pixabay.example/photo-%d", i+1),
			Tags:          fmt.Sprintf("%s, sample %d", query, i+1),
			WebformatURL:  fmt.Sprintf("https://cdn.example/%d_640.jpg", i+1),
			LargeImageURL: fmt.Sprintf("https://cdn.example/%d_1280.jpg", i+1),
			ImageWidth:    1920,
			ImageHeight:   1080,
			User:          "tester",
		})
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"total": f.total, "totalHits": f.total, "hits": hits})
}

// Requests returns the "query:page" pairs received so far
func (f *fakePixabay) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.requests))
	copy(out, f.requests)
	return out
}

// CreateTestWorkspace creates a temporary home with a config pointing at server
func (tf *TUITestFramework) CreateTestWorkspace(server *fakePixabay) (string, error) {
	tmpDir, err := os.MkdirTemp("", "pixgallery-test-*")
	if err != nil {
		return "", err
	}
	tf.workspace = tmpDir

	cfg := fmt.Sprintf(`version = 1

[api]
key = "e2e-key"
base_url = %q
per_page = 12
requests_per_minute = 0

[ui]
columns = 3
show_author = true

[log]
path = %q
level = "debug"
`, server.URL+"/api/", filepath.Join(tmpDir, "pixgallery.log"))

	if err := os.WriteFile(tf.ConfigPath(), []byte(cfg), 0600); err != nil {
		return "", err
	}
	return tmpDir, nil
}

// ConfigPath returns the config file inside the workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}
