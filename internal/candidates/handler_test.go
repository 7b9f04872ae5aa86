package candidates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/queue"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/tenants"
)

type captureQueue struct {
	msgs []queue.Message
	err  error
}

func (q *captureQueue) Send(ctx context.Context, msg queue.Message) error {
	if q.err != nil {
		return q.err
	}
	q.msgs = append(q.msgs, msg)
	return nil
}

func newTestRouter(q queue.Client) (*gin.Engine, *MemoryRepo) {
	gin.SetMode(gin.TestMode)

	tenantRepo := tenants.NewMemoryRepo()
	tenantRepo.Put(tenants.Tenant{ID: "t1", Slug: "acme", Name: "Acme"})

	repo := NewMemoryRepo()
	repo.Put(Candidate{
		ID: "c1", TenantID: "t1", FullName: "Ana Benitez", Active: true,
		Profile: json.RawMessage(`{"skillsMatch":50}`),
	})
	repo.Put(Candidate{
		ID: "c2", TenantID: "t1", FullName: "Bruno Diaz", Active: false,
		Profile: json.RawMessage(`{}`),
	})

	handler := NewHandler(tenantRepo, repo, q)

	router := gin.New()
	router.Use(middleware.RequestID())
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router, repo
}

func TestUpdateProfilePersistsAndPublishes(t *testing.T) {
	q := &captureQueue{}
	router, repo := newTestRouter(q)

	body := `{"skillsMatch":90,"formationScore":80}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/tenants/acme/candidates/c1/profile", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	candidate, err := repo.GetActiveByID(context.Background(), "t1", "c1")
	if err != nil {
		t.Fatalf("GetActiveByID: %v", err)
	}
	if string(candidate.Profile) != body {
		t.Fatalf("profile = %s, want %s", candidate.Profile, body)
	}

	if len(q.msgs) != 1 {
		t.Fatalf("published %d messages, want 1", len(q.msgs))
	}
	msg := q.msgs[0]
	if msg.Type != queue.TypeProfileChanged || msg.TenantID != "t1" || msg.CandidateID != "c1" {
		t.Fatalf("message = %+v", msg)
	}
	if msg.Version != 1 || msg.EnqueuedAt == "" || msg.RequestID == "" {
		t.Fatalf("message metadata = %+v", msg)
	}
}

func TestUpdateProfileUnknownTenant(t *testing.T) {
	q := &captureQueue{}
	router, _ := newTestRouter(q)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/tenants/ghost/candidates/c1/profile", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
	if len(q.msgs) != 0 {
		t.Fatalf("published %d messages, want 0", len(q.msgs))
	}
}

func TestUpdateProfileUnknownCandidate(t *testing.T) {
	q := &captureQueue{}
	router, _ := newTestRouter(q)

	// c2 exists but is inactive, so the write path must treat it as gone.
	for _, id := range []string{"missing", "c2"} {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/tenants/acme/candidates/"+id+"/profile", strings.NewReader(`{}`))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusNotFound {
			t.Fatalf("id %s: status = %d, want 404", id, resp.Code)
		}
	}
	if len(q.msgs) != 0 {
		t.Fatalf("published %d messages, want 0", len(q.msgs))
	}
}

func TestUpdateProfileRejectsInvalidBody(t *testing.T) {
	q := &captureQueue{}
	router, _ := newTestRouter(q)

	for _, body := range []string{"", "{oops"} {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/tenants/acme/candidates/c1/profile", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d, want 400", body, resp.Code)
		}
	}
	if len(q.msgs) != 0 {
		t.Fatalf("published %d messages, want 0", len(q.msgs))
	}
}

func TestUpdateProfileSurvivesPublishFailure(t *testing.T) {
	q := &captureQueue{err: errors.New("sqs unavailable")}
	router, repo := newTestRouter(q)

	body := `{"skillsMatch":70}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/tenants/acme/candidates/c1/profile", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	candidate, err := repo.GetActiveByID(context.Background(), "t1", "c1")
	if err != nil {
		t.Fatalf("GetActiveByID: %v", err)
	}
	if string(candidate.Profile) != body {
		t.Fatalf("profile = %s, want %s", candidate.Profile, body)
	}
}
