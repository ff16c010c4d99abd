package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/audit"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/httpresp"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

type AuditReader interface {
	Recent(ctx context.Context, f audit.Filter) ([]models.AuditLog, error)
}

type AuditLogsHandler struct {
	*Base
	reader AuditReader
}

func NewAuditLogsHandler(base *Base, reader AuditReader) *AuditLogsHandler {
	return &AuditLogsHandler{Base: base, reader: reader}
}

// List supports ?action= and ?entity= filters.
func (h *AuditLogsHandler) List(c *gin.Context) {
	logs, err := h.reader.Recent(c.Request.Context(), audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	})
	if err != nil {
		h.writeError(c, httperr.Classify(err))
		return
	}
	httpresp.List(c, logs, h.flashes(c))
}
