package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/audit"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/caregiver"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/httpresp"
	"github.com/BruksfildServices01/caregivers-platform/internal/media"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var caregiverEntity = entity{Name: "caregiver", Title: "Caregiver", Path: "/caregivers", Audit: "caregiver"}

// ======================================================
// REQUESTS
// ======================================================

type caregiverForm struct {
	Photo          string `form:"photo"`
	Gender         string `form:"gender" binding:"required"`
	CaregivingType string `form:"caregiving_type" binding:"required"`
	HourlyRate     string `form:"hourly_rate" binding:"required"`
}

func (f caregiverForm) model() (*models.Caregiver, error) {
	rate, err := parseDecimal("hourly_rate", f.HourlyRate)
	if err != nil {
		return nil, err
	}
	return &models.Caregiver{
		Photo:          f.Photo,
		Gender:         f.Gender,
		CaregivingType: f.CaregivingType,
		HourlyRate:     rate,
	}, nil
}

// createCaregiverForm carries the identity row and the caregiver row.
type createCaregiverForm struct {
	userForm
	caregiverForm
}

type PhotoUploader interface {
	Upload(ctx context.Context, caregiverID uint, r io.Reader) (string, error)
}

// ======================================================
// HANDLER
// ======================================================

type CaregiverHandler struct {
	*Base
	repo   caregiver.Repository
	photos PhotoUploader
}

// NewCaregiverHandler accepts a nil photos when photo storage is not
// configured.
func NewCaregiverHandler(base *Base, repo caregiver.Repository, photos PhotoUploader) *CaregiverHandler {
	return &CaregiverHandler{Base: base, repo: repo, photos: photos}
}

func (h *CaregiverHandler) List(c *gin.Context) {
	caregivers, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.List(c, caregivers, h.flashes(c))
}

func (h *CaregiverHandler) New(c *gin.Context) {
	httpresp.Form(c, nil, nil, h.flashes(c))
}

func (h *CaregiverHandler) Create(c *gin.Context) {
	back := caregiverEntity.newPath()

	var form createCaregiverForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, caregiverEntity, verbCreate, back)
		return
	}

	cg, err := form.caregiverForm.model()
	if err != nil {
		h.fail(c, err, caregiverEntity, verbCreate, back)
		return
	}
	u, err := form.userForm.model()
	if err != nil {
		h.fail(c, err, caregiverEntity, verbCreate, back)
		return
	}

	if err := h.repo.Create(c.Request.Context(), u, cg); err != nil {
		h.fail(c, err, caregiverEntity, verbCreate, back)
		return
	}

	h.record(c, audit.ActionCreate, caregiverEntity, key(cg.CaregiverUserID), gin.H{
		"email":           u.Email,
		"caregiving_type": cg.CaregivingType,
	})
	h.succeed(c, caregiverEntity, "created")
}

func (h *CaregiverHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, caregiverEntity)
		return
	}

	cg, found, err := h.repo.Find(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, caregiverEntity, verbUpdate, caregiverEntity.Path)
		return
	}
	if !found {
		h.notFound(c, caregiverEntity)
		return
	}

	httpresp.Form(c, cg, nil, h.flashes(c))
}

func (h *CaregiverHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, caregiverEntity)
		return
	}
	back := caregiverEntity.editPath(key(id))

	var form caregiverForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, caregiverEntity, verbUpdate, back)
		return
	}

	cg, err := form.model()
	if err != nil {
		h.fail(c, err, caregiverEntity, verbUpdate, back)
		return
	}

	if _, err := h.repo.Update(c.Request.Context(), id, cg); err != nil {
		h.fail(c, err, caregiverEntity, verbUpdate, back)
		return
	}

	h.record(c, audit.ActionUpdate, caregiverEntity, key(id), nil)
	h.succeed(c, caregiverEntity, "updated")
}

func (h *CaregiverHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, caregiverEntity)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, caregiverEntity, verbDelete, caregiverEntity.Path)
		return
	}

	h.record(c, audit.ActionDelete, caregiverEntity, key(id), nil)
	h.succeed(c, caregiverEntity, "deleted")
}

// ======================================================
// PHOTO
// ======================================================

// UploadPhoto takes a multipart "photo" file, stores a normalized copy
// and saves its URL on the caregiver.
func (h *CaregiverHandler) UploadPhoto(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, caregiverEntity)
		return
	}
	back := caregiverEntity.editPath(key(id))

	if h.photos == nil {
		h.fail(c, httperr.Validation("photo_storage_disabled", "photo storage is not configured"),
			caregiverEntity, verbUpdate, back)
		return
	}

	ctx := c.Request.Context()
	if _, found, err := h.repo.Find(ctx, id); err != nil {
		h.fail(c, err, caregiverEntity, verbUpdate, back)
		return
	} else if !found {
		h.notFound(c, caregiverEntity)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes+(1<<20))
	header, err := c.FormFile("photo")
	if err != nil {
		h.fail(c, &httperr.MissingFieldError{Fields: []string{"photo"}}, caregiverEntity, verbUpdate, back)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.fail(c, httperr.Internal(err), caregiverEntity, verbUpdate, back)
		return
	}
	defer file.Close()

	url, err := h.photos.Upload(ctx, id, file)
	if err != nil {
		h.fail(c, err, caregiverEntity, verbUpdate, back)
		return
	}

	if err := h.repo.SetPhoto(ctx, id, url); err != nil {
		h.fail(c, err, caregiverEntity, verbUpdate, back)
		return
	}

	h.record(c, audit.ActionPhotoUpload, caregiverEntity, key(id), gin.H{"photo": url})
	h.succeed(c, caregiverEntity, "updated")
}
