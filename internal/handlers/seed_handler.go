package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dashboard-seed-backend/internal/repository"
	"dashboard-seed-backend/internal/services/seeder"
)

// Seeder runs one seeding pass. Satisfied by *seeder.Service; tests plug
// in fakes.
type Seeder interface {
	Run(ctx context.Context) (*seeder.Result, error)
}

type SeedHandler struct {
	seeder Seeder
	runs   *repository.SeedRunRepository
	log    *zap.Logger
}

func NewSeedHandler(s Seeder, runs *repository.SeedRunRepository, log *zap.Logger) *SeedHandler {
	return &SeedHandler{seeder: s, runs: runs, log: log}
}

// Seed handles GET /api/seed. Every failure collapses to a generic 500
// carrying the error message.
func (h *SeedHandler) Seed(c *gin.Context) {
	res, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		h.log.Error("seeding failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": res.Message()})
}

// ListRuns handles GET /api/seed/runs.
func (h *SeedHandler) ListRuns(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	runs, err := h.runs.Recent(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
