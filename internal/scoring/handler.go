package scoring

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/respond"
	"ats-backend/internal/tenants"
)

const defaultTopN = 10

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tenants/:slug/ranking", h.ranking)
}

func (h *Handler) ranking(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "scoring service unavailable", nil)
		return
	}

	slug := c.Param("slug")
	top := defaultTopN
	if raw := c.Query("top"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "top must be an integer", gin.H{"top": raw})
			return
		}
		top = parsed
	}

	start := time.Now()
	ranked, err := h.Svc.TopN(c.Request.Context(), slug, top)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTopN):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "top must be at least 1", gin.H{"top": top})
		case errors.Is(err, tenants.ErrNotFound):
			respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "tenant not found", gin.H{"tenant": slug})
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to rank candidates", nil)
		}
		return
	}

	metrics.IncRankingsServed()
	metrics.ObserveRankingDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	c.Set("rankedCount", len(ranked))

	respond.OK(c, gin.H{
		"tenant":  slug,
		"count":   len(ranked),
		"results": ranked,
	})
}
