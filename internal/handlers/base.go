package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/caregivers-platform/internal/flash"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/middleware"
)

// ======================================================
// SHARED HANDLER PLUMBING
// ======================================================

type Auditor interface {
	Log(ctx context.Context, action, entity, entityKey string, metadata any) error
}

// Base carries what every CRUD handler needs to answer a request: the
// flash store, the audit trail and a logger.
type Base struct {
	flash flash.Store
	audit Auditor
	log   *zap.Logger
}

func NewBase(store flash.Store, auditor Auditor, log *zap.Logger) *Base {
	return &Base{flash: store, audit: auditor, log: log}
}

// entity names a resource the way its messages and routes spell it.
type entity struct {
	Name  string // lower case, used in "Error creating <name>: ..."
	Title string // sentence case, used in "<Title> created successfully!"
	Path  string // list path
	Audit string // audit_log.entity
}

func (e entity) newPath() string { return e.Path + "/new" }

func (e entity) editPath(key string) string { return e.Path + "/" + key + "/edit" }

const (
	verbCreate = "creating"
	verbUpdate = "updating"
	verbDelete = "deleting"
)

func (b *Base) logger(c *gin.Context) *zap.Logger {
	return b.log.With(zap.String("request_id", c.GetString(middleware.ContextRequestID)))
}

func (b *Base) flashes(c *gin.Context) []flash.Message {
	msgs, err := b.flash.Pop(c)
	if err != nil {
		b.logger(c).Warn("read flash messages", zap.Error(err))
	}
	return msgs
}

func (b *Base) redirect(c *gin.Context, location string, m flash.Message) {
	if err := b.flash.Add(c, m); err != nil {
		b.logger(c).Warn("store flash message", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, location)
}

func (b *Base) succeed(c *gin.Context, e entity, done string) {
	b.redirect(c, e.Path, flash.Success(fmt.Sprintf("%s %s successfully!", e.Title, done)))
}

func (b *Base) notFound(c *gin.Context, e entity) {
	b.redirect(c, e.Path, flash.Error(e.Title+" not found!"))
}

// fail answers a failed write. Connectivity problems get a 503 body, a
// missing row goes back to the list and everything else returns to back
// with the error in a flash message.
func (b *Base) fail(c *gin.Context, err error, e entity, verb, back string) {
	switch httperr.KindOf(err) {
	case httperr.KindConnectivity:
		b.unavailable(c, err)
		return
	case httperr.KindNotFound:
		b.notFound(c, e)
		return
	case httperr.KindInternal:
		b.logger(c).Error("unexpected failure",
			zap.String("entity", e.Audit),
			zap.String("verb", verb),
			zap.Error(err),
		)
	}

	b.redirect(c, back, flash.Error(fmt.Sprintf("Error %s %s: %s", verb, e.Name, err.Error())))
}

// writeError answers a failed read with a JSON error body.
func (b *Base) writeError(c *gin.Context, err error) {
	kind := httperr.KindOf(err)
	if kind == httperr.KindConnectivity {
		b.unavailable(c, err)
		return
	}

	b.logger(c).Error("read failed", zap.Error(err))
	code := "internal_error"
	var e *httperr.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	switch kind {
	case httperr.KindValidation:
		httperr.BadRequest(c, code, err.Error())
	case httperr.KindNotFound:
		httperr.WriteNotFound(c, code, err.Error())
	case httperr.KindInternal:
		httperr.WriteInternal(c, code, "Something went wrong.")
	default:
		httperr.Write(c, httperr.StatusFor(kind), code, err.Error())
	}
}

func (b *Base) unavailable(c *gin.Context, err error) {
	b.logger(c).Error("database unavailable", zap.Error(err))
	httperr.Unavailable(c, "database_unavailable", "The database is unavailable. Try again later.")
}

func (b *Base) record(c *gin.Context, action string, e entity, key string, metadata any) {
	if b.audit == nil {
		return
	}
	if err := b.audit.Log(c.Request.Context(), action, e.Audit, key, metadata); err != nil {
		b.logger(c).Warn("write audit log",
			zap.String("action", action),
			zap.String("entity", e.Audit),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func key(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
