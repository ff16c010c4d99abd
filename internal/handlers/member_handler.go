package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/audit"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/member"
	"github.com/BruksfildServices01/caregivers-platform/internal/httpresp"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var memberEntity = entity{Name: "member", Title: "Member", Path: "/members", Audit: "member"}

type memberForm struct {
	HouseRules           string `form:"house_rules"`
	DependentDescription string `form:"dependent_description"`
}

func (f memberForm) model() *models.Member {
	return &models.Member{
		HouseRules:           f.HouseRules,
		DependentDescription: f.DependentDescription,
	}
}

type createMemberForm struct {
	userForm
	memberForm
}

type MemberHandler struct {
	*Base
	repo member.Repository
}

func NewMemberHandler(base *Base, repo member.Repository) *MemberHandler {
	return &MemberHandler{Base: base, repo: repo}
}

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.List(c, members, h.flashes(c))
}

func (h *MemberHandler) New(c *gin.Context) {
	httpresp.Form(c, nil, nil, h.flashes(c))
}

func (h *MemberHandler) Create(c *gin.Context) {
	back := memberEntity.newPath()

	var form createMemberForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, memberEntity, verbCreate, back)
		return
	}

	u, err := form.userForm.model()
	if err != nil {
		h.fail(c, err, memberEntity, verbCreate, back)
		return
	}
	m := form.memberForm.model()

	if err := h.repo.Create(c.Request.Context(), u, m); err != nil {
		h.fail(c, err, memberEntity, verbCreate, back)
		return
	}

	h.record(c, audit.ActionCreate, memberEntity, key(m.MemberUserID), gin.H{"email": u.Email})
	h.succeed(c, memberEntity, "created")
}

func (h *MemberHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, memberEntity)
		return
	}

	m, found, err := h.repo.Find(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, memberEntity, verbUpdate, memberEntity.Path)
		return
	}
	if !found {
		h.notFound(c, memberEntity)
		return
	}

	httpresp.Form(c, m, nil, h.flashes(c))
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, memberEntity)
		return
	}
	back := memberEntity.editPath(key(id))

	var form memberForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, memberEntity, verbUpdate, back)
		return
	}

	if _, err := h.repo.Update(c.Request.Context(), id, form.model()); err != nil {
		h.fail(c, err, memberEntity, verbUpdate, back)
		return
	}

	h.record(c, audit.ActionUpdate, memberEntity, key(id), nil)
	h.succeed(c, memberEntity, "updated")
}

func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, memberEntity)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, memberEntity, verbDelete, memberEntity.Path)
		return
	}

	h.record(c, audit.ActionDelete, memberEntity, key(id), nil)
	h.succeed(c, memberEntity, "deleted")
}
