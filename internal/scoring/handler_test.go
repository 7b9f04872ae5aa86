package scoring_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/bootstrap"
	"ats-backend/internal/candidates"
	"ats-backend/internal/scoring"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/tenants"
)

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port: "0",
		Env:  "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	tenantRepo, ok := app.TenantsRepo.(*tenants.MemoryRepo)
	if !ok {
		t.Fatalf("expected in-memory tenants repo")
	}
	tenantRepo.Put(tenants.Tenant{ID: "tenant-1", Slug: "acme", Name: "Acme Recruiting"})

	candidateRepo, ok := app.CandidatesRepo.(*candidates.MemoryRepo)
	if !ok {
		t.Fatalf("expected in-memory candidates repo")
	}
	candidateRepo.Put(candidates.Candidate{
		ID: "cand-a", TenantID: "tenant-1", FullName: "Ana Benitez", Active: true,
		Profile: json.RawMessage(`{"formationScore":90,"experienceYears":8,"skillsMatch":80,"competenciesMatch":70,"keywordMatch":60}`),
	})
	candidateRepo.Put(candidates.Candidate{
		ID: "cand-b", TenantID: "tenant-1", FullName: "Bruno Diaz", Active: true,
		Profile: json.RawMessage(`{"formacion":50,"aniosExperiencia":10,"habilidades":50,"competencias":50,"palabrasClave":50}`),
	})
	candidateRepo.Put(candidates.Candidate{
		ID: "cand-inactive", TenantID: "tenant-1", FullName: "Ines Vega", Active: false,
		Profile: json.RawMessage(`{"formationScore":100}`),
	})

	return app
}

func TestRankingEndpoint(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/acme/ranking?top=2", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Tenant  string                    `json:"tenant"`
		Count   int                       `json:"count"`
		Results []scoring.RankedCandidate `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if body.Tenant != "acme" || body.Count != 2 {
		t.Fatalf("body = %+v", body)
	}
	if len(body.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(body.Results))
	}
	if body.Results[0].CandidateID != "cand-a" || body.Results[0].Total != 78.5 {
		t.Fatalf("first result = %+v, want cand-a at 78.5", body.Results[0])
	}
	if body.Results[1].CandidateID != "cand-b" {
		t.Fatalf("second result = %+v, want cand-b", body.Results[1])
	}
}

func TestRankingEndpointUnknownTenant(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/ghost/ranking", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestRankingEndpointInvalidTop(t *testing.T) {
	app := buildTestApp(t)

	for _, query := range []string{"top=0", "top=-3", "top=abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/acme/ranking?"+query, nil)
		resp := httptest.NewRecorder()
		app.Router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", query, resp.Code)
		}
	}
}

func TestRankingEndpointDefaultsTop(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/acme/ranking", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	var body struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Only the two active candidates rank.
	if body.Count != 2 {
		t.Fatalf("count = %d, want 2", body.Count)
	}
}
