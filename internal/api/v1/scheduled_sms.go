package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/service"
	"github.com/smsdesk/smsdesk/internal/types"
)

type ScheduledSMSHandler struct {
	service service.ScheduledSMSService
	log     *logger.Logger
}

func NewScheduledSMSHandler(service service.ScheduledSMSService, log *logger.Logger) *ScheduledSMSHandler {
	return &ScheduledSMSHandler{
		service: service,
		log:     log,
	}
}

// @Summary List scheduled messages
// @Tags Scheduled SMS
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ListScheduledSMSResponse
// @Router /scheduled-sms [get]
func (h *ScheduledSMSHandler) ListScheduledSMS(c *gin.Context) {
	resp, err := h.service.ListScheduledSMS(c.Request.Context(), caller(c))
	if err != nil {
		fail(c, err, types.RedirectBack)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Show a scheduled message
// @Tags Scheduled SMS
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scheduled SMS ID"
// @Success 200 {object} dto.ScheduledSMSResponse
// @Failure 403 {object} types.Result
// @Failure 404 {object} types.Result
// @Router /scheduled-sms/{id} [get]
func (h *ScheduledSMSHandler) GetScheduledSMS(c *gin.Context) {
	resp, err := h.service.GetScheduledSMS(c.Request.Context(), caller(c), c.Param("id"))
	if err != nil {
		fail(c, err, types.RedirectBack)
		return
	}

	c.JSON(http.StatusOK, resp)
}
