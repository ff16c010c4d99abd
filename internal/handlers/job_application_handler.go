package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/audit"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/caregiver"
	"github.com/BruksfildServices01/caregivers-platform/internal/domain/job"
	"github.com/BruksfildServices01/caregivers-platform/internal/httpresp"
	"github.com/BruksfildServices01/caregivers-platform/internal/models"
)

var jobApplicationEntity = entity{
	Name:  "job application",
	Title: "Job application",
	Path:  "/job_applications",
	Audit: "job_application",
}

type jobApplicationForm struct {
	DateApplied string `form:"date_applied" binding:"required"`
}

type createJobApplicationForm struct {
	CaregiverUserID string `form:"caregiver_user_id" binding:"required"`
	JobID           string `form:"job_id" binding:"required"`
	jobApplicationForm
}

func (f createJobApplicationForm) model() (*models.JobApplication, error) {
	caregiverID, err := parseID("caregiver_user_id", f.CaregiverUserID)
	if err != nil {
		return nil, err
	}
	jobID, err := parseID("job_id", f.JobID)
	if err != nil {
		return nil, err
	}
	applied, err := parseDate("date_applied", f.DateApplied)
	if err != nil {
		return nil, err
	}
	return &models.JobApplication{
		CaregiverUserID: caregiverID,
		JobID:           jobID,
		DateApplied:     applied,
	}, nil
}

type JobApplicationHandler struct {
	*Base
	repo       job.ApplicationRepository
	caregivers caregiver.Repository
	jobs       job.Repository
}

func NewJobApplicationHandler(
	base *Base,
	repo job.ApplicationRepository,
	caregivers caregiver.Repository,
	jobs job.Repository,
) *JobApplicationHandler {
	return &JobApplicationHandler{Base: base, repo: repo, caregivers: caregivers, jobs: jobs}
}

func applicationKey(c *gin.Context) (job.ApplicationKey, bool) {
	caregiverID, ok := paramID(c, "caregiver_id")
	if !ok {
		return job.ApplicationKey{}, false
	}
	jobID, ok := paramID(c, "job_id")
	if !ok {
		return job.ApplicationKey{}, false
	}
	return job.ApplicationKey{CaregiverUserID: caregiverID, JobID: jobID}, true
}

func (h *JobApplicationHandler) options(c *gin.Context) (gin.H, error) {
	ctx := c.Request.Context()
	caregiverIDs, err := h.caregivers.IDs(ctx)
	if err != nil {
		return nil, err
	}
	jobIDs, err := h.jobs.IDs(ctx)
	if err != nil {
		return nil, err
	}
	return gin.H{"caregivers": caregiverIDs, "jobs": jobIDs}, nil
}

func (h *JobApplicationHandler) List(c *gin.Context) {
	apps, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.List(c, apps, h.flashes(c))
}

func (h *JobApplicationHandler) New(c *gin.Context) {
	opts, err := h.options(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.Form(c, nil, opts, h.flashes(c))
}

func (h *JobApplicationHandler) Create(c *gin.Context) {
	back := jobApplicationEntity.newPath()

	var form createJobApplicationForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, jobApplicationEntity, verbCreate, back)
		return
	}

	app, err := form.model()
	if err != nil {
		h.fail(c, err, jobApplicationEntity, verbCreate, back)
		return
	}

	if err := h.repo.Create(c.Request.Context(), app); err != nil {
		h.fail(c, err, jobApplicationEntity, verbCreate, back)
		return
	}

	k := job.ApplicationKey{CaregiverUserID: app.CaregiverUserID, JobID: app.JobID}
	h.record(c, audit.ActionCreate, jobApplicationEntity, k.String(), nil)
	h.succeed(c, jobApplicationEntity, "created")
}

func (h *JobApplicationHandler) Edit(c *gin.Context) {
	k, ok := applicationKey(c)
	if !ok {
		h.notFound(c, jobApplicationEntity)
		return
	}

	app, found, err := h.repo.Find(c.Request.Context(), k)
	if err != nil {
		h.fail(c, err, jobApplicationEntity, verbUpdate, jobApplicationEntity.Path)
		return
	}
	if !found {
		h.notFound(c, jobApplicationEntity)
		return
	}

	opts, err := h.options(c)
	if err != nil {
		h.writeError(c, err)
		return
	}
	httpresp.Form(c, app, opts, h.flashes(c))
}

func (h *JobApplicationHandler) Update(c *gin.Context) {
	k, ok := applicationKey(c)
	if !ok {
		h.notFound(c, jobApplicationEntity)
		return
	}
	back := jobApplicationEntity.editPath(k.String())

	var form jobApplicationForm
	if err := bindForm(c, &form); err != nil {
		h.fail(c, err, jobApplicationEntity, verbUpdate, back)
		return
	}

	applied, err := parseDate("date_applied", form.DateApplied)
	if err != nil {
		h.fail(c, err, jobApplicationEntity, verbUpdate, back)
		return
	}

	if _, err := h.repo.Update(c.Request.Context(), k, &models.JobApplication{DateApplied: applied}); err != nil {
		h.fail(c, err, jobApplicationEntity, verbUpdate, back)
		return
	}

	h.record(c, audit.ActionUpdate, jobApplicationEntity, k.String(), nil)
	h.succeed(c, jobApplicationEntity, "updated")
}

func (h *JobApplicationHandler) Delete(c *gin.Context) {
	k, ok := applicationKey(c)
	if !ok {
		h.notFound(c, jobApplicationEntity)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), k); err != nil {
		h.fail(c, err, jobApplicationEntity, verbDelete, jobApplicationEntity.Path)
		return
	}

	h.record(c, audit.ActionDelete, jobApplicationEntity, k.String(), nil)
	h.succeed(c, jobApplicationEntity, "deleted")
}
