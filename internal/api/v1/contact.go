package v1

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/smsdesk/smsdesk/internal/api/dto"
	"github.com/smsdesk/smsdesk/internal/logger"
	"github.com/smsdesk/smsdesk/internal/service"
	"github.com/smsdesk/smsdesk/internal/types"
)

type ContactHandler struct {
	service service.ContactService
	log     *logger.Logger
}

func NewContactHandler(service service.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log,
	}
}

// @Summary List contacts
// @Description Admins see every contact, other users only their own
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param group path string true "Group ID"
// @Success 200 {object} dto.ListContactsResponse
// @Failure 404 {object} types.Result
// @Router /groups/{group}/contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	resp, err := h.service.ListContacts(c.Request.Context(), caller(c), c.Param("group"))
	if err != nil {
		fail(c, err, types.RedirectBack)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Contact create form
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param group path string true "Group ID"
// @Success 200 {object} dto.ContactFormResponse
// @Failure 404 {object} types.Result
// @Router /groups/{group}/contacts/create [get]
func (h *ContactHandler) CreateForm(c *gin.Context) {
	resp, err := h.service.GetCreateForm(c.Request.Context(), caller(c), c.Param("group"))
	if err != nil {
		fail(c, err, types.RedirectBack)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Contact edit form
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param group path string true "Group ID"
// @Param contact path string true "Contact ID"
// @Success 200 {object} dto.ContactFormResponse
// @Failure 404 {object} types.Result
// @Router /groups/{group}/contacts/{contact}/edit [get]
func (h *ContactHandler) EditForm(c *gin.Context) {
	resp, err := h.service.GetEditForm(c.Request.Context(), caller(c), c.Param("group"), c.Param("contact"))
	if err != nil {
		fail(c, err, types.RedirectBack)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Create a contact
// @Description Only Kenyan mobile numbers are accepted; they are stored in E.164 form
// @Tags Contacts
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param group path string true "Group ID"
// @Param contact body dto.CreateContactRequest true "Contact"
// @Success 201 {object} types.Result
// @Failure 409 {object} types.Result
// @Failure 422 {object} types.Result
// @Router /groups/{group}/contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	groupID := c.Param("group")
	formPath := service.CreateContactPath(groupID)

	var req dto.CreateContactRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err, formPath)
		return
	}

	result, err := h.service.CreateContact(c.Request.Context(), caller(c), groupID, req)
	if err != nil {
		fail(c, err, formPath)
		return
	}

	respond(c, http.StatusCreated, result)
}

// @Summary Update a contact
// @Tags Contacts
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param group path string true "Group ID"
// @Param contact path string true "Contact ID"
// @Param body body dto.UpdateContactRequest true "Contact"
// @Success 200 {object} types.Result
// @Failure 404 {object} types.Result
// @Failure 422 {object} types.Result
// @Router /groups/{group}/contacts/{contact} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	groupID := c.Param("group")
	contactID := c.Param("contact")
	formPath := service.EditContactPath(groupID, contactID)

	var req dto.UpdateContactRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err, formPath)
		return
	}

	result, err := h.service.UpdateContact(c.Request.Context(), caller(c), groupID, contactID, req)
	if err != nil {
		fail(c, err, formPath)
		return
	}

	respond(c, http.StatusOK, result)
}

// @Summary Delete a contact
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param group path string true "Group ID"
// @Param contact path string true "Contact ID"
// @Success 200 {object} types.Result
// @Failure 404 {object} types.Result
// @Router /groups/{group}/contacts/{contact} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	result, err := h.service.DeleteContact(c.Request.Context(), caller(c), c.Param("group"), c.Param("contact"))
	if err != nil {
		fail(c, err, types.RedirectBack)
		return
	}

	respond(c, http.StatusOK, result)
}

// @Summary Delete many contacts
// @Description Deletes every contact whose id is listed in rowCheck
// @Tags Contacts
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param body body dto.BulkDeleteContactsRequest true "Contact ids"
// @Success 200 {object} types.Result
// @Router /contacts/bulk-delete [post]
func (h *ContactHandler) BulkDeleteContacts(c *gin.Context) {
	var req dto.BulkDeleteContactsRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err, types.RedirectBack)
		return
	}
	if len(req.IDs) == 0 {
		// html forms post checkbox arrays as rowCheck[]
		req.IDs = c.PostFormArray("rowCheck[]")
	}

	result, err := h.service.BulkDeleteContacts(c.Request.Context(), caller(c), req)
	if err != nil {
		fail(c, err, types.RedirectBack)
		return
	}

	respond(c, http.StatusOK, result)
}

// @Summary Download the sample contacts file
// @Tags Contacts
// @Produce octet-stream
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 404 {object} types.Result
// @Router /contacts/sample [get]
func (h *ContactHandler) DownloadSample(c *gin.Context) {
	path, err := h.service.GetSampleFile(c.Request.Context())
	if err != nil {
		fail(c, err, types.RedirectBack)
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
