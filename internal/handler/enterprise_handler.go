package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docvault/internal/service"
)

// EnterpriseHandler handles enterprise registry endpoints.
type EnterpriseHandler struct {
	enterpriseService service.EnterpriseService
}

// NewEnterpriseHandler creates a new EnterpriseHandler.
func NewEnterpriseHandler(enterpriseService service.EnterpriseService) *EnterpriseHandler {
	return &EnterpriseHandler{enterpriseService: enterpriseService}
}

// RegisterEnterpriseRequest is the payload for registering an enterprise.
type RegisterEnterpriseRequest struct {
	EnterpriseID string `json:"enterprise_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

// Register handles POST /api/v1/enterprises
func (h *EnterpriseHandler) Register(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}

	var req RegisterEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	enterprise, err := h.enterpriseService.Register(c.Request.Context(), &service.RegisterEnterpriseInput{
		EnterpriseID: req.EnterpriseID,
		Name:         req.Name,
		CallerID:     caller,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, enterprise)
}

// Lookup handles GET /api/v1/enterprises/:id
func (h *EnterpriseHandler) Lookup(c *gin.Context) {
	enterprise, err := h.enterpriseService.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, enterprise)
}
