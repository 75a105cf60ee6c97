package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docvault/internal/domain"
	"docvault/internal/service"
)

// DocumentHandler handles document registry endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// CreateDocumentRequest is the payload for registering a document. The
// content hash is the hex encoding of the 32-byte hash of the off-system
// content.
type CreateDocumentRequest struct {
	DocumentID   string `json:"document_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DocumentType string `json:"document_type"`
	ContentHash  string `json:"content_hash" binding:"required"`
}

// UpdateDocumentRequest is the payload for replacing document metadata.
type UpdateDocumentRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DocumentType string `json:"document_type"`
	ContentHash  string `json:"content_hash" binding:"required"`
}

// Create handles POST /api/v1/enterprises/:id/documents
func (h *DocumentHandler) Create(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	hash, err := domain.ParseContentHash(req.ContentHash)
	if err != nil {
		HandleError(c, err)
		return
	}

	document, err := h.documentService.Create(c.Request.Context(), &service.CreateDocumentInput{
		EnterpriseID: c.Param("id"),
		DocumentID:   req.DocumentID,
		Name:         req.Name,
		Description:  req.Description,
		DocumentType: req.DocumentType,
		ContentHash:  hash,
		CallerID:     caller,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, document)
}

// Get handles GET /api/v1/enterprises/:id/documents/:docID
func (h *DocumentHandler) Get(c *gin.Context) {
	document, err := h.documentService.Get(c.Request.Context(), c.Param("id"), c.Param("docID"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, document)
}

// List handles GET /api/v1/enterprises/:id/documents
func (h *DocumentHandler) List(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	documents, total, err := h.documentService.List(c.Request.Context(), c.Param("id"), caller, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, documents, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/enterprises/:id/documents/:docID
func (h *DocumentHandler) Update(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	hash, err := domain.ParseContentHash(req.ContentHash)
	if err != nil {
		HandleError(c, err)
		return
	}

	document, err := h.documentService.Update(c.Request.Context(), &service.UpdateDocumentInput{
		EnterpriseID: c.Param("id"),
		DocumentID:   c.Param("docID"),
		Name:         req.Name,
		Description:  req.Description,
		DocumentType: req.DocumentType,
		ContentHash:  hash,
		CallerID:     caller,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, document)
}

// Delete handles DELETE /api/v1/enterprises/:id/documents/:docID
func (h *DocumentHandler) Delete(c *gin.Context) {
	caller, ok := principal(c)
	if !ok {
		return
	}

	err := h.documentService.SoftDelete(c.Request.Context(), c.Param("id"), c.Param("docID"), caller)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
