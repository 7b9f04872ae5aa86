package candidates

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/queue"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/server/respond"
	"ats-backend/internal/shared/telemetry"
	"ats-backend/internal/tenants"
)

const (
	maxProfileBytes = 64 << 10

	errorCodeValidation = "VALIDATION_ERROR"
	errorCodeNotFound   = "NOT_FOUND"
	errorCodeInternal   = "INTERNAL_ERROR"
)

// Handler serves the candidate profile write path. Profile changes publish a
// recompute event so the score cache stays warm between ranking requests.
type Handler struct {
	Tenants tenants.Repo
	Repo    Repo
	Queue   queue.Client
}

func NewHandler(tenantsRepo tenants.Repo, repo Repo, q queue.Client) *Handler {
	return &Handler{Tenants: tenantsRepo, Repo: repo, Queue: q}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/tenants/:slug/candidates/:id/profile", h.updateProfile)
}

func (h *Handler) updateProfile(c *gin.Context) {
	if h.Repo == nil || h.Tenants == nil {
		respond.Error(c, http.StatusInternalServerError, errorCodeInternal, "candidate service unavailable", nil)
		return
	}

	slug := c.Param("slug")
	candidateID := c.Param("id")

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxProfileBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, errorCodeValidation, "failed to read request body", nil)
		return
	}
	if len(body) > maxProfileBytes {
		respond.Error(c, http.StatusBadRequest, errorCodeValidation, "profile document too large", gin.H{"maxBytes": maxProfileBytes})
		return
	}
	if len(body) == 0 || !json.Valid(body) {
		respond.Error(c, http.StatusBadRequest, errorCodeValidation, "profile must be a JSON document", nil)
		return
	}

	ctx := c.Request.Context()

	tenant, err := h.Tenants.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, tenants.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, errorCodeNotFound, "tenant not found", gin.H{"tenant": slug})
			return
		}
		respond.Error(c, http.StatusInternalServerError, errorCodeInternal, "failed to resolve tenant", nil)
		return
	}

	candidate, err := h.Repo.UpdateProfile(ctx, tenant.ID, candidateID, body)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, errorCodeNotFound, "candidate not found", gin.H{"candidate": candidateID})
			return
		}
		respond.Error(c, http.StatusInternalServerError, errorCodeInternal, "failed to update profile", nil)
		return
	}

	h.publishProfileChanged(c, tenant.ID, candidate.ID)

	respond.OK(c, gin.H{
		"candidate": gin.H{
			"id":        candidate.ID,
			"fullName":  candidate.FullName,
			"updatedAt": candidate.UpdatedAt,
		},
	})
}

// publishProfileChanged is best-effort: ranking recomputes on read, so a lost
// event only delays the cache refresh.
func (h *Handler) publishProfileChanged(c *gin.Context, tenantID, candidateID string) {
	if h.Queue == nil {
		return
	}
	msg := queue.Message{
		Type:        queue.TypeProfileChanged,
		TenantID:    tenantID,
		CandidateID: candidateID,
		RequestID:   middleware.RequestIDFromContext(c),
		EnqueuedAt:  time.Now().UTC().Format(time.RFC3339),
		Version:     1,
	}
	if err := h.Queue.Send(c.Request.Context(), msg); err != nil {
		telemetry.Warn("candidates.profile_changed_publish_failed", map[string]any{
			"tenant_id":    tenantID,
			"candidate_id": candidateID,
			"error":        err.Error(),
		})
	}
}
