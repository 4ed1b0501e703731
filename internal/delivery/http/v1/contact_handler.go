package v1

import (
	"net/http"

	"hirehand-backend/internal/delivery/http/response"
	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes. Submission is public,
// reading messages is admin only.
func NewContactHandler(public, admin *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.Submit)
	admin.GET("/contact-messages", handler.List)
	admin.GET("/contact-messages/latest", handler.Latest)
	admin.GET("/contact-messages/:id", handler.Get)
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var in domain.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg, err := h.contactUC.Submit(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Your message has been sent successfully!", msg)
}

func (h *ContactHandler) List(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	msgs, err := h.contactUC.ListMessages(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Messages retrieved", msgs)
}

// Latest returns the most recent message from the sender given in the
// email query parameter.
func (h *ContactHandler) Latest(c *gin.Context) {
	msg, err := h.contactUC.LatestMessageFrom(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message retrieved", msg)
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	msg, err := h.contactUC.GetMessage(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message retrieved", msg)
}
