package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/caregivers-platform/internal/handlers"
)

// Handlers groups everything the router serves. Photo is optional.
type Handlers struct {
	Index           *handlers.IndexHandler
	Users           *handlers.UserHandler
	Caregivers      *handlers.CaregiverHandler
	Members         *handlers.MemberHandler
	Addresses       *handlers.AddressHandler
	Jobs            *handlers.JobHandler
	JobApplications *handlers.JobApplicationHandler
	Appointments    *handlers.AppointmentHandler
	AuditLogs       *handlers.AuditLogsHandler

	PhotoUploadsEnabled bool
}

// crud is the route set shared by every single-key entity.
type crud interface {
	List(c *gin.Context)
	New(c *gin.Context)
	Create(c *gin.Context)
	Edit(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerCRUD(r gin.IRouter, path string, h crud) {
	g := r.Group(path)
	g.GET("", h.List)
	g.GET("/new", h.New)
	g.POST("/new", h.Create)
	g.GET("/:id/edit", h.Edit)
	g.POST("/:id/edit", h.Update)
	g.POST("/:id/delete", h.Delete)
}

func RegisterRoutes(r *gin.Engine, h Handlers) {

	// ======================================================
	// INDEX / HEALTH
	// ======================================================
	r.GET("/", h.Index.Index)
	r.GET("/health", h.Index.Health)

	// ======================================================
	// CRUD
	// ======================================================
	registerCRUD(r, "/users", h.Users)
	registerCRUD(r, "/caregivers", h.Caregivers)
	registerCRUD(r, "/members", h.Members)
	registerCRUD(r, "/addresses", h.Addresses)
	registerCRUD(r, "/jobs", h.Jobs)
	registerCRUD(r, "/appointments", h.Appointments)

	apps := r.Group("/job_applications")
	{
		apps.GET("", h.JobApplications.List)
		apps.GET("/new", h.JobApplications.New)
		apps.POST("/new", h.JobApplications.Create)
		apps.GET("/:caregiver_id/:job_id/edit", h.JobApplications.Edit)
		apps.POST("/:caregiver_id/:job_id/edit", h.JobApplications.Update)
		apps.POST("/:caregiver_id/:job_id/delete", h.JobApplications.Delete)
	}

	// ======================================================
	// SUPPORT
	// ======================================================
	if h.PhotoUploadsEnabled {
		r.POST("/caregivers/:id/photo", h.Caregivers.UploadPhoto)
	}
	r.GET("/audit_logs", h.AuditLogs.List)
}
