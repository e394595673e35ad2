package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smsdesk/smsdesk/internal/api/dto"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/service"
	"github.com/smsdesk/smsdesk/internal/types"
)

type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// @Summary Login
// @Description Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.AuthResponse
// @Failure 403 {object} types.Result
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err, types.RedirectBack)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err, types.RedirectBack)
		return
	}

	c.JSON(http.StatusOK, resp)
}
