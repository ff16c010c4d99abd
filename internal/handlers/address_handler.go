package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/audit"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/member"
	"github.com/BruksfildServices01/caregivers-platform/internal/httpresp"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var addressEntity = entity{Name: "address", Title: "Address", Path: "/addresses", Audit: "address"}

type addressForm struct {
	HouseNumber string `form:"house_number" binding:"required"`
	Street      string `form:"street" binding:"required"`
	Town        string `form:"town" binding:"required"`
}

func (f addressForm) model() *models.Address {
	return &models.Address{
		HouseNumber: f.HouseNumber,
		Street:      f.Street,
		Town:        f.Town,
	}
}

// createAddressForm picks the member; on edit the member is fixed by the URL.
type createAddressForm struct {
	MemberUserID string `form:"member_user_id" binding:"required"`
	addressForm
}

type AddressHandler struct {
	*Base
	repo    member.AddressRepository
	members member.Repository
}

func NewAddressHandler(base *Base, repo member.AddressRepository, members member.Repository) *AddressHandler {
	return &AddressHandler{Base: base, repo: repo, members: members}
}

func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.List(c, addresses, h.flashes(c))
}

func (h *AddressHandler) New(c *gin.Context) {
	memberIDs, err := h.members.IDs(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.Form(c, nil, gin.H{"members": memberIDs}, h.flashes(c))
}

func (h *AddressHandler) Create(c *gin.Context) {
	back := addressEntity.newPath()

	var form createAddressForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, addressEntity, verbCreate, back)
		return
	}

	memberID, err := parseID("member_user_id", form.MemberUserID)
	if err != nil {
		h.fail(c, err, addressEntity, verbCreate, back)
		return
	}

	a := form.addressForm.model()
	a.MemberUserID = memberID

	if err := h.repo.Create(c.Request.Context(), a); err != nil {
		h.fail(c, err, addressEntity, verbCreate, back)
		return
	}

	h.record(c, audit.ActionCreate, addressEntity, key(memberID), nil)
	h.succeed(c, addressEntity, "created")
}

func (h *AddressHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, addressEntity)
		return
	}

	a, found, err := h.repo.Find(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, addressEntity, verbUpdate, addressEntity.Path)
		return
	}
	if !found {
		h.notFound(c, addressEntity)
		return
	}

	httpresp.Form(c, a, nil, h.flashes(c))
}

func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, addressEntity)
		return
	}
	back := addressEntity.editPath(key(id))

	var form addressForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, addressEntity, verbUpdate, back)
		return
	}

	if _, err := h.repo.Update(c.Request.Context(), id, form.model()); err != nil {
		h.fail(c, err, addressEntity, verbUpdate, back)
		return
	}

	h.record(c, audit.ActionUpdate, addressEntity, key(id), nil)
	h.succeed(c, addressEntity, "updated")
}

func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, addressEntity)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, addressEntity, verbDelete, addressEntity.Path)
		return
	}

	h.record(c, audit.ActionDelete, addressEntity, key(id), nil)
	h.succeed(c, addressEntity, "deleted")
}
