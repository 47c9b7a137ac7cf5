package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifemate-backend/internal/delivery/http/response"
	"lifemate-backend/internal/domain"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the session routes. Tokens are issued by the external
// auth service; this API only reports who the caller is.
func NewAuthHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

// Me godoc
// @Summary      Current user
// @Description  Returns the authenticated user as stored, including the role used for authorization
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}
