package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docvault/internal/domain"
	"docvault/internal/service"
)

// AccessHandler handles grant, revoke, access recording, and audit trail
// endpoints.
type AccessHandler struct {
	accessService service.AccessService
}

// NewAccessHandler creates a new AccessHandler.
func NewAccessHandler(accessService service.AccessService) *AccessHandler {
	return &AccessHandler{accessService: accessService}
}

// GrantRequest is the payload for granting document access.
type GrantRequest struct {
	UserID string                 `json:"user_id" binding:"required"`
	Level  domain.PermissionLevel `json:"level"`
}

// Grant handles POST /api/v1/enterprises/:id/documents/:docID/grants
func (h *AccessHandler) Grant(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}

	var req GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	err := h.accessService.Grant(c.Request.Context(), &service.GrantInput{
		EnterpriseID: c.Param("id"),
		DocumentID:   c.Param("docID"),
		GrantorID:    caller,
		GranteeID:    req.UserID,
		Level:        req.Level,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"granted": true})
}

// Revoke handles DELETE /api/v1/enterprises/:id/documents/:docID/grants/:user
func (h *AccessHandler) Revoke(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}

	err := h.accessService.Revoke(c.Request.Context(),
		c.Param("id"), c.Param("docID"), caller, c.Param("user"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"revoked": true})
}

// ListGrants handles GET /api/v1/enterprises/:id/documents/:docID/grants
func (h *AccessHandler) ListGrants(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	grants, total, err := h.accessService.ListGrants(c.Request.Context(),
		c.Param("id"), c.Param("docID"), caller, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, grants, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// RecordAccess handles POST /api/v1/enterprises/:id/documents/:docID/access
func (h *AccessHandler) RecordAccess(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}

	err := h.accessService.RecordAccess(c.Request.Context(),
		c.Param("id"), c.Param("docID"), caller)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"accessed": true})
}

// GetAuditEntry handles GET /api/v1/enterprises/:id/documents/:docID/audit/:seq
func (h *AccessHandler) GetAuditEntry(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}

	sequence, err := strconv.ParseInt(c.Param("seq"), 10, 64)
	if err != nil || sequence < 1 {
		RespondError(c, http.StatusBadRequest, "INVALID_SEQUENCE", "sequence must be a positive integer")
		return
	}

	entry, err := h.accessService.GetAuditEntry(c.Request.Context(),
		c.Param("id"), c.Param("docID"), caller, sequence)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entry)
}

// ListAuditTrail handles GET /api/v1/enterprises/:id/documents/:docID/audit
func (h *AccessHandler) ListAuditTrail(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	entries, total, err := h.accessService.ListAuditTrail(c.Request.Context(),
		c.Param("id"), c.Param("docID"), caller, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}
