package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/audit"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/job"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/member"
	"github.com/BruksfildServices01/caregivers-platform/internal/httpresp"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var jobEntity = entity{Name: "job", Title: "Job", Path: "/jobs", Audit: "job"}

type jobForm struct {
	MemberUserID           string `form:"member_user_id" binding:"required"`
	RequiredCaregivingType string `form:"required_caregiving_type" binding:"required"`
	OtherRequirements      string `form:"other_requirements"`
	DatePosted             string `form:"date_posted" binding:"required"`
}

func (f jobForm) model() (*models.Job, error) {
	memberID, err := parseID("member_user_id", f.MemberUserID)
	if err != nil {
		return nil, err
	}
	posted, err := parseDate("date_posted", f.DatePosted)
	if err != nil {
		return nil, err
	}
	return &models.Job{
		MemberUserID:           memberID,
		RequiredCaregivingType: f.RequiredCaregivingType,
		OtherRequirements:      f.OtherRequirements,
		DatePosted:             posted,
	}, nil
}

type JobHandler struct {
	*Base
	repo    job.Repository
	members member.Repository
}

func NewJobHandler(base *Base, repo job.Repository, members member.Repository) *JobHandler {
	return &JobHandler{Base: base, repo: repo, members: members}
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.List(c, jobs, h.flashes(c))
}

func (h *JobHandler) options(c *gin.Context) (gin.H, error) {
	memberIDs, err := h.members.IDs(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return gin.H{"members": memberIDs}, nil
}

func (h *JobHandler) New(c *gin.Context) {
	opts, err := h.options(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.Form(c, nil, opts, h.flashes(c))
}

func (h *JobHandler) Create(c *gin.Context) {
	back := jobEntity.newPath()

	var form jobForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, jobEntity, verbCreate, back)
		return
	}

	j, err := form.model()
	if err != nil {
		h.fail(c, err, jobEntity, verbCreate, back)
		return
	}

	if err := h.repo.Create(c.Request.Context(), j); err != nil {
		h.fail(c, err, jobEntity, verbCreate, back)
		return
	}

	h.record(c, audit.ActionCreate, jobEntity, key(j.JobID), gin.H{"member_user_id": j.MemberUserID})
	h.succeed(c, jobEntity, "created")
}

func (h *JobHandler) Edit(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, jobEntity)
		return
	}

	j, found, err := h.repo.Find(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, jobEntity, verbUpdate, jobEntity.Path)
		return
	}
	if !found {
		h.notFound(c, jobEntity)
		return
	}

	opts, err := h.options(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.Form(c, j, opts, h.flashes(c))
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, jobEntity)
		return
	}
	back := jobEntity.editPath(key(id))

	var form jobForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, jobEntity, verbUpdate, back)
		return
	}

	j, err := form.model()
	if err != nil {
		h.fail(c, err, jobEntity, verbUpdate, back)
		return
	}

	if _, err := h.repo.Update(c.Request.Context(), id, j); err != nil {
		h.fail(c, err, jobEntity, verbUpdate, back)
		return
	}

	h.record(c, audit.ActionUpdate, jobEntity, key(id), nil)
	h.succeed(c, jobEntity, "updated")
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c, jobEntity)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, jobEntity, verbDelete, jobEntity.Path)
		return
	}

	h.record(c, audit.ActionDelete, jobEntity, key(id), nil)
	h.succeed(c, jobEntity, "deleted")
}
