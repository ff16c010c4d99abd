package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/audit"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/appointment"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/caregiver"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/member"
	"github.com/BruksfildServices01/caregivers-platform/internal/httpresp"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var appointmentEntity = entity{Name: "appointment", Title: "Appointment", Path: "/appointments", Audit: "appointment"}

// ======================================================
// REQUESTS
// ======================================================

type appointmentForm struct {
	CaregiverUserID string `form:"caregiver_user_id" binding:"required"`
	MemberUserID    string `form:"member_user_id" binding:"required"`
	AppointmentDate string `form:"appointment_date" binding:"required"`
	AppointmentTime string `form:"appointment_time" binding:"required"`
	WorkHours       string `form:"work_hours" binding:"required"`
	Status          string `form:"status" binding:"required"`
}

func (f appointmentForm) model() (*models.Appointment, error) {
	caregiverID, err := parseID("caregiver_user_id", f.CaregiverUserID)
	if err != nil {
		return nil, err
	}
	memberID, err := parseID("member_user_id", f.MemberUserID)
	if err != nil {
		return nil, err
	}
	date, err := parseDate("appointment_date", f.AppointmentDate)
	if err != nil {
		return nil, err
	}
	clock, err := parseClock("appointment_time", f.AppointmentTime)
	if err != nil {
		return nil, err
	}
	hours, err := parseDecimal("work_hours", f.WorkHours)
	if err != nil {
		return nil, err
	}
	status, err := appointment.ParseStatus(f.Status)
	if err != nil {
		return nil, err
	}

	return &models.Appointment{
		CaregiverUserID: caregiverID,
		MemberUserID:    memberID,
		AppointmentDate: date,
		AppointmentTime: clock,
		WorkHours:       hours,
		Status:          string(status),
	}, nil
}

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	*Base
	repo       appointment.Repository
	caregivers caregiver.Repository
	members    member.Repository
}

func NewAppointmentHandler(
	base *Base,
	repo appointment.Repository,
	caregivers caregiver.Repository,
	members member.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{Base: base, repo: repo, caregivers: caregivers, members: members}
}

func (h *AppointmentHandler) options(c *gin.Context) (gin.H, error) {
	ctx := c.Request.Context()
	caregiverIDs, err := h.caregivers.IDs(ctx)
	if err != nil {
		return nil, err
	}
	memberIDs, err := h.members.IDs(ctx)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"caregivers": caregiverIDs,
		"members":    memberIDs,
		"statuses":   appointment.Statuses(),
	}, nil
}

func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.List(c, list, h.flashes(c))
}

func (h *AppointmentHandler) New(c *gin.Context) {
	opts, err := h.options(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.Form(c, nil, opts, h.flashes(c))
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	back := appointmentEntity.newPath()

	var form appointmentForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, appointmentEntity, verbCreate, back)
		return
	}

	ap, err := form.model()
	if err != nil {
		h.fail(c, err, appointmentEntity, verbCreate, back)
		return
	}

	if err := h.repo.Create(c.Request.Context(), ap); err != nil {
		h.fail(c, err, appointmentEntity, verbCreate, back)
		return
	}

	h.record(c, audit.ActionCreate, appointmentEntity, key(ap.AppointmentID), gin.H{"status": ap.Status})
	h.succeed(c, appointmentEntity, "created")
}

func (h *AppointmentHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, appointmentEntity)
		return
	}

	ap, found, err := h.repo.Find(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, appointmentEntity, verbUpdate, appointmentEntity.Path)
		return
	}
	if !found {
		h.notFound(c, appointmentEntity)
		return
	}

	opts, err := h.options(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.Form(c, ap, opts, h.flashes(c))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, appointmentEntity)
		return
	}
	back := appointmentEntity.editPath(key(id))

	var form appointmentForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, appointmentEntity, verbUpdate, back)
		return
	}

	ap, err := form.model()
	if err != nil {
		h.fail(c, err, appointmentEntity, verbUpdate, back)
		return
	}

	if _, err := h.repo.Update(c.Request.Context(), id, ap); err != nil {
		h.fail(c, err, appointmentEntity, verbUpdate, back)
		return
	}

	h.record(c, audit.ActionUpdate, appointmentEntity, key(id), gin.H{"status": ap.Status})
	h.succeed(c, appointmentEntity, "updated")
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, appointmentEntity)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, appointmentEntity, verbDelete, appointmentEntity.Path)
		return
	}

	h.record(c, audit.ActionDelete, appointmentEntity, key(id), nil)
	h.succeed(c, appointmentEntity, "deleted")
}
