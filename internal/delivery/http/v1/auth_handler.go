package v1

import (
	"net/http"

	"hirehand-backend/internal/delivery/http/response"
	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/apperror"
	"hirehand-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	tokens *auth.TokenManager
}

func NewAuthHandler(public, protected, admin *gin.RouterGroup, authUC domain.AuthUsecase, tokens *auth.TokenManager, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC: authUC,
		tokens: tokens,
	}

	public.POST("/auth/register", handler.Register)
	public.POST("/auth/login", loginLimiter, handler.Login)
	protected.GET("/auth/profile", handler.Profile)
	admin.GET("/users", handler.ListUsers)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in domain.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in domain.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.VerifyCredentials(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	users, err := h.authUC.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved", users)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, _ := c.Get(string(domain.KeyUserID))
	id, ok := userID.(int64)
	if !ok {
		c.Error(apperror.Unauthorized("Authorization required"))
		return
	}

	user, err := h.authUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", user)
}
