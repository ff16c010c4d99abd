package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/audit"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/user"
	"github.com/BruksfildServices01/caregivers-platform/internal/httperr"
	"github.com/BruksfildServices01/caregivers-platform/internal/httpresp"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
	"github.com/BruksfildServices01/caregivers-platform/internal/security"
)

var userEntity = entity{Name: "user", Title: "User", Path: "/users", Audit: "user"}

// ======================================================
// REQUESTS
// ======================================================

type userForm struct {
	Email              string `form:"email" binding:"required"`
	GivenName          string `form:"given_name" binding:"required"`
	Surname            string `form:"surname" binding:"required"`
	City               string `form:"city" binding:"required"`
	PhoneNumber        string `form:"phone_number" binding:"required"`
	ProfileDescription string `form:"profile_description"`
	Password           string `form:"password" binding:"required"`
}

// model hashes the submitted password; the plain text is never stored.
func (f userForm) model() (*models.User, error) {
	hash, err := security.HashPassword(f.Password)
	if errors.Is(err, security.ErrPasswordTooLong) {
		return nil, httperr.Validation("invalid_value", "password must be at most 72 bytes")
	}
	if err != nil {
		return nil, httperr.Internal(err)
	}
	return &models.User{
		Email:              f.Email,
		GivenName:          f.GivenName,
		Surname:            f.Surname,
		City:               f.City,
		PhoneNumber:        f.PhoneNumber,
		ProfileDescription: f.ProfileDescription,
		Password:           hash,
	}, nil
}

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	*Base
	repo user.Repository
}

func NewUserHandler(base *Base, repo user.Repository) *UserHandler {
	return &UserHandler{Base: base, repo: repo}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.List(c, users, h.flashes(c))
}

func (h *UserHandler) New(c *gin.Context) {
	httpresp.Form(c, nil, nil, h.flashes(c))
}

func (h *UserHandler) Create(c *gin.Context) {
	var form userForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, userEntity, verbCreate, userEntity.newPath())
		return
	}

	u, err := form.model()
	if err != nil {
		h.fail(c, err, userEntity, verbCreate, userEntity.newPath())
		return
	}

	if err := h.repo.Create(c.Request.Context(), u); err != nil {
		h.fail(c, err, userEntity, verbCreate, userEntity.newPath())
		return
	}

	h.record(c, audit.ActionCreate, userEntity, key(u.UserID), gin.H{"email": u.Email})
	h.succeed(c, userEntity, "created")
}

func (h *UserHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, userEntity)
		return
	}

	u, found, err := h.repo.Find(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, userEntity, verbUpdate, userEntity.Path)
		return
	}
	if !found {
		h.notFound(c, userEntity)
		return
	}

	httpresp.Form(c, u, nil, h.flashes(c))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, userEntity)
		return
	}
	back := userEntity.editPath(key(id))

	var form userForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, userEntity, verbUpdate, back)
		return
	}

	u, err := form.model()
	if err != nil {
		h.fail(c, err, userEntity, verbUpdate, back)
		return
	}

	if _, err := h.repo.Update(c.Request.Context(), id, u); err != nil {
		h.fail(c, err, userEntity, verbUpdate, back)
		return
	}

	h.record(c, audit.ActionUpdate, userEntity, key(id), nil)
	h.succeed(c, userEntity, "updated")
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, userEntity)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, userEntity, verbDelete, userEntity.Path)
		return
	}

	h.record(c, audit.ActionDelete, userEntity, key(id), nil)
	h.succeed(c, userEntity, "deleted")
}
