package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docvault/internal/domain"
	"docvault/internal/handler"
	"docvault/internal/service"
	"docvault/mocks"
)

func newAccessHandler() (*handler.AccessHandler, *mocks.MockAccessService) {
	mockSvc := new(mocks.MockAccessService)
	h := handler.NewAccessHandler(mockSvc)
	return h, mockSvc
}

func docParams() gin.Params {
	return gin.Params{{Key: "id", Value: "acme"}, {Key: "docID", Value: "d1"}}
}

// --- Grant ---

func TestAccessHandler_Grant_Success(t *testing.T) {
	h, mockSvc := newAccessHandler()

	mockSvc.On("Grant", mock.Anything, mock.MatchedBy(func(input *service.GrantInput) bool {
		return input.GrantorID == "alice" && input.GranteeID == "bob" && input.Level == domain.PermissionRead
	})).Return(nil)

	body, _ := json.Marshal(map[string]string{
		"user_id": "bob",
		"level":   "read",
	})

	w := httptest.NewRecorder()
	c := authedContext(w, "alice")
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/enterprises/acme/documents/d1/grants", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = docParams()

	h.Grant(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestAccessHandler_Grant_UngrantableLevel(t *testing.T) {
	h, mockSvc := newAccessHandler()

	mockSvc.On("Grant", mock.Anything, mock.AnythingOfType("*service.GrantInput")).
		Return(domain.ErrInvalidPermission)

	body, _ := json.Marshal(map[string]string{
		"user_id": "bob",
		"level":   "manage",
	})

	w := httptest.NewRecorder()
	c := authedContext(w, "alice")
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/enterprises/acme/documents/d1/grants", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = docParams()

	h.Grant(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "INVALID_PERMISSION", resp.Error.Code)
}

func TestAccessHandler_Grant_UnknownLevelName(t *testing.T) {
	h, mockSvc := newAccessHandler()

	body, _ := json.Marshal(map[string]string{
		"user_id": "bob",
		"level":   "superuser",
	})

	w := httptest.NewRecorder()
	c := authedContext(w, "alice")
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/enterprises/acme/documents/d1/grants", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = docParams()

	h.Grant(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Grant", mock.Anything, mock.Anything)
}

// --- Revoke ---

func TestAccessHandler_Revoke_Success(t *testing.T) {
	h, mockSvc := newAccessHandler()

	mockSvc.On("Revoke", mock.Anything, "acme", "d1", "alice", "bob").Return(nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "alice")
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/enterprises/acme/documents/d1/grants/bob", http.NoBody)
	c.Params = append(docParams(), gin.Param{Key: "user", Value: "bob"})

	h.Revoke(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestAccessHandler_Revoke_Forbidden(t *testing.T) {
	h, mockSvc := newAccessHandler()

	mockSvc.On("Revoke", mock.Anything, "acme", "d1", "bob", "carol").
		Return(domain.ErrUnauthorized)

	w := httptest.NewRecorder()
	c := authedContext(w, "bob")
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/enterprises/acme/documents/d1/grants/carol", http.NoBody)
	c.Params = append(docParams(), gin.Param{Key: "user", Value: "carol"})

	h.Revoke(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- RecordAccess ---

func TestAccessHandler_RecordAccess_Success(t *testing.T) {
	h, mockSvc := newAccessHandler()

	mockSvc.On("RecordAccess", mock.Anything, "acme", "d1", "bob").Return(nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "bob")
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/enterprises/acme/documents/d1/access", http.NoBody)
	c.Params = docParams()

	h.RecordAccess(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

// --- Audit ---

func TestAccessHandler_GetAuditEntry_Success(t *testing.T) {
	h, mockSvc := newAccessHandler()

	entry := &domain.AuditEntry{EnterpriseID: "acme", DocumentID: "d1", Sequence: 3, Action: domain.ActionShare}
	mockSvc.On("GetAuditEntry", mock.Anything, "acme", "d1", "alice", int64(3)).Return(entry, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "alice")
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/enterprises/acme/documents/d1/audit/3", http.NoBody)
	c.Params = append(docParams(), gin.Param{Key: "seq", Value: "3"})

	h.GetAuditEntry(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestAccessHandler_GetAuditEntry_BadSequence(t *testing.T) {
	h, mockSvc := newAccessHandler()

	for _, bad := range []string{"zero", "0", "-1"} {
		w := httptest.NewRecorder()
		c := authedContext(w, "alice")
		c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/enterprises/acme/documents/d1/audit/"+bad, http.NoBody)
		c.Params = append(docParams(), gin.Param{Key: "seq", Value: bad})

		h.GetAuditEntry(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, "seq %q", bad)
	}
	mockSvc.AssertNotCalled(t, "GetAuditEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAccessHandler_ListAuditTrail_Success(t *testing.T) {
	h, mockSvc := newAccessHandler()

	entries := []domain.AuditEntry{
		{Sequence: 1, Action: domain.ActionCreate},
		{Sequence: 2, Action: domain.ActionShare},
	}
	mockSvc.On("ListAuditTrail", mock.Anything, "acme", "d1", "alice", 0, 20).Return(entries, 2, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, "alice")
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/enterprises/acme/documents/d1/audit", http.NoBody)
	c.Params = docParams()

	h.ListAuditTrail(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Meta.Total)
}

func TestAccessHandler_ListGrants_Forbidden(t *testing.T) {
	h, mockSvc := newAccessHandler()

	mockSvc.On("ListGrants", mock.Anything, "acme", "d1", "bob", 0, 20).
		Return(nil, 0, domain.ErrUnauthorized)

	w := httptest.NewRecorder()
	c := authedContext(w, "bob")
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/enterprises/acme/documents/d1/grants", http.NoBody)
	c.Params = docParams()

	h.ListGrants(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
