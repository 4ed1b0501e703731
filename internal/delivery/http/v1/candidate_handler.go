package v1

import (
	"net/http"
	"strings"

	"hirehand-backend/internal/delivery/http/response"
	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(public, admin *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{
		candidateUC: candidateUC,
	}

	public.POST("/candidates", handler.Create)
	admin.GET("/candidates", handler.List)
	admin.GET("/candidates/by-email", handler.GetByEmail)
	admin.GET("/candidates/:id", handler.Get)
}

func (h *CandidateHandler) Create(c *gin.Context) {
	var in domain.CandidateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	candidate, err := h.candidateUC.CreateCandidate(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate profile created", candidate)
}

func (h *CandidateHandler) List(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	filter := domain.CandidateFilter{
		AvailableOnly: boolQuery(c, "available_only"),
	}
	if raw := c.Query("skills"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Skills = append(filter.Skills, s)
			}
		}
	}
	if raw := c.Query("experience_min"); raw != "" {
		min, err := intQuery(c, "experience_min", 0)
		if err != nil {
			c.Error(err)
			return
		}
		filter.ExperienceMin = &min
	}

	candidates, err := h.candidateUC.ListCandidates(c.Request.Context(), filter, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates retrieved", candidates)
}

func (h *CandidateHandler) GetByEmail(c *gin.Context) {
	candidate, err := h.candidateUC.FindCandidateByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate retrieved", candidate)
}
