package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/httpresp"
)

// Pinger checks that the database answers.
type Pinger func(ctx context.Context) error

type IndexHandler struct {
	*Base
	ping Pinger
}

func NewIndexHandler(base *Base, ping Pinger) *IndexHandler {
	return &IndexHandler{Base: base, ping: ping}
}

func (h *IndexHandler) Index(c *gin.Context) {
	sections := []gin.H{}
	for _, e := range []entity{
		userEntity,
		caregiverEntity,
		memberEntity,
		addressEntity,
		jobEntity,
		jobApplicationEntity,
		appointmentEntity,
	} {
		sections = append(sections, gin.H{
			"name": e.Title,
			"list": e.Path,
			"new":  e.newPath(),
		})
	}
	httpresp.OK(c, gin.H{"sections": sections, "flashes": orNone(h.flashes(c))})
}

func (h *IndexHandler) Health(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		h.logger(c).Warn("health check failed", zap.Error(err))
		httperr.Unavailable(c, "database_unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func orNone[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
