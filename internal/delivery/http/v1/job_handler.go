package v1

import (
	"net/http"

	"hirehand-backend/internal/delivery/http/response"
	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public, admin *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{
		jobUC: jobUC,
	}

	public.GET("/jobs", handler.List)
	public.GET("/jobs/featured", handler.Featured)
	public.GET("/jobs/:id", handler.Get)
	public.POST("/jobs/:id/apply", handler.Apply)

	admin.POST("/jobs", handler.Create)
	admin.GET("/jobs/:id/applications", handler.ListApplications)
	admin.GET("/applications/:id", handler.GetApplication)
}

func (h *JobHandler) List(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	filter := domain.JobFilter{
		ActiveOnly:   boolQuery(c, "active_only"),
		FeaturedOnly: boolQuery(c, "featured_only"),
		Industry:     c.Query("industry"),
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), filter, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

func (h *JobHandler) Featured(c *gin.Context) {
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.jobUC.FeaturedJobs(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Featured jobs retrieved", jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var in domain.JobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) Apply(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.ApplyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.jobUC.ApplyToJob(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *JobHandler) GetApplication(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.jobUC.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application retrieved", app)
}

func (h *JobHandler) ListApplications(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	apps, err := h.jobUC.ListApplications(c.Request.Context(), id, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}
