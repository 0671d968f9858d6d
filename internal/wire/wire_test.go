package wire

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"review-listing/internal/data/entity"
	"review-listing/internal/data/repository"
	"review-listing/internal/view"
	"review-listing/pkg/database"
	"review-listing/pkg/utils"

	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App:    utils.AppConfig{Name: "Review Board"},
		Review: utils.ReviewConfig{MinRating: 3, ListLimit: 10, MaxRating: 5},
	}
}

// setupTestApp wires the full router over a fresh SQLite database
func setupTestApp(t *testing.T) (*App, *repository.Repository) {
	t.Helper()

	db, closer, err := database.InitSQLite(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(closer)
	if err := repository.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	views, err := view.NewManagerFromDir(zap.NewNop(), "", false)
	if err != nil {
		t.Fatalf("NewManagerFromDir() error = %v", err)
	}

	repo := repository.NewRepository(db, zap.NewNop())
	return Wiring(repo, views, testConfig(), zap.NewNop()), repo
}

func addReview(t *testing.T, repo *repository.Repository, rating int, title string, posted time.Time) *entity.Review {
	t.Helper()
	r := &entity.Review{PostedOn: posted, Rating: rating, Username: "sam", Title: title, Comments: "ok"}
	if err := repo.Review.Create(context.Background(), r); err != nil {
		t.Fatalf("setup: Create() error = %v", err)
	}
	return r
}

func do(app *App, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestReviewsPage(t *testing.T) {
	app, repo := setupTestApp(t)
	now := time.Now().UTC()
	addReview(t, repo, 5, "Best <b>pizza</b>", now.Add(-time.Hour))
	addReview(t, repo, 2, "Cold fries", now.Add(-30*time.Minute))
	addReview(t, repo, 4, "Friendly staff", now.Add(-10*time.Minute))

	rec := do(app, http.MethodGet, "/reviews", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<title>Top reviews · Review Board</title>") {
		t.Error("layout title missing")
	}
	if strings.Contains(body, "Cold fries") {
		t.Error("review rated 2 listed on top page")
	}
	if strings.Contains(body, "<b>pizza</b>") || !strings.Contains(body, "Best &lt;b&gt;pizza&lt;/b&gt;") {
		t.Error("review title not escaped")
	}
	newer, older := strings.Index(body, "Friendly staff"), strings.Index(body, "Best &lt;b&gt;")
	if newer < 0 || older < 0 || newer > older {
		t.Errorf("reviews not newest first (positions %d, %d)", newer, older)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestReviewPage(t *testing.T) {
	app, repo := setupTestApp(t)
	r := addReview(t, repo, 4, "Quiet terrace", time.Now().UTC())

	rec := do(app, http.MethodGet, "/reviews/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h1>"+r.Title+"</h1>") {
		t.Errorf("review page missing title:\n%s", rec.Body.String())
	}

	tests := []struct {
		target string
		status int
	}{
		{"/reviews/99", http.StatusNotFound},
		{"/reviews/abc", http.StatusBadRequest},
		{"/no/such/page", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := do(app, http.MethodGet, tt.target, "")
		if rec.Code != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.target, rec.Code, tt.status)
		}
		if !strings.Contains(rec.Body.String(), http.StatusText(tt.status)) {
			t.Errorf("GET %s error page missing status text", tt.target)
		}
	}
}

func TestRootRedirect(t *testing.T) {
	app, _ := setupTestApp(t)

	rec := do(app, http.MethodGet, "/", "")
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/reviews" {
		t.Errorf("GET / = %d Location %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestHealth(t *testing.T) {
	app, _ := setupTestApp(t)

	rec := do(app, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("GET /health = %d %q", rec.Code, rec.Body.String())
	}
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  map[string]any  `json:"errors"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestReviewAPI_Lifecycle(t *testing.T) {
	app, _ := setupTestApp(t)

	rec := do(app, http.MethodPost, "/api/reviews", `{"username":"kim","title":"Great","rating":5,"comments":"yes"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID     uint `json:"id"`
		Rating int  `json:"rating"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == 0 || created.Rating != 5 {
		t.Errorf("created = %+v", created)
	}

	rec = do(app, http.MethodPut, "/api/reviews/1", `{"rating":2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = do(app, http.MethodGet, "/api/reviews/top", "")
	var top []json.RawMessage
	if err := json.Unmarshal(decode(t, rec).Data, &top); err != nil {
		t.Fatalf("decode top: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("top after downgrade has %d reviews, want 0", len(top))
	}

	rec = do(app, http.MethodGet, "/api/reviews?min_rating=1&per_page=5", "")
	var page struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Total   int64 `json:"total"`
			PerPage int   `json:"per_page"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(decode(t, rec).Data, &page); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if page.Pagination.Total != 1 || page.Pagination.PerPage != 5 || len(page.Data) != 1 {
		t.Errorf("list page = %+v", page)
	}

	rec = do(app, http.MethodGet, "/api/reviews/stats", "")
	if rec.Code != http.StatusOK {
		t.Errorf("stats status = %d", rec.Code)
	}

	rec = do(app, http.MethodDelete, "/api/reviews/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d", rec.Code)
	}
	rec = do(app, http.MethodGet, "/api/reviews/1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET deleted status = %d, want 404", rec.Code)
	}
}

func TestReviewAPI_BadRequests(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"malformed json", http.MethodPost, "/api/reviews", `{`, http.StatusBadRequest},
		{"missing fields", http.MethodPost, "/api/reviews", `{"rating":3}`, http.StatusBadRequest},
		{"rating too high", http.MethodPost, "/api/reviews", `{"username":"a","title":"b","rating":6}`, http.StatusBadRequest},
		{"blank username", http.MethodPost, "/api/reviews", `{"username":"  ","title":"b","rating":4}`, http.StatusBadRequest},
		{"bad id", http.MethodGet, "/api/reviews/xyz", "", http.StatusBadRequest},
		{"bad sort", http.MethodGet, "/api/reviews?sort=secret", "", http.StatusBadRequest},
		{"update missing", http.MethodPut, "/api/reviews/5", `{"rating":3}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(app, tt.method, tt.target, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
			if decode(t, rec).Status {
				t.Error("status field = true on error")
			}
		})
	}
}
