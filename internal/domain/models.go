package domain

import (
	"encoding/hex"
	"encoding/json"
	"time"
)

// ContentHashSize is the fixed size of a document content hash in bytes.
const ContentHashSize = 32

// ContentHash references off-system document content. The registry never
// stores raw content, only this hash.
type ContentHash []byte

// MarshalJSON renders the hash as a hex string.
func (h ContentHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

// UnmarshalJSON accepts a hex string of exactly ContentHashSize bytes.
func (h *ContentHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := ParseContentHash(s)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// Enterprise is a tenant namespace. The owner is fixed at registration and
// never changes.
type Enterprise struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Owner        string    `db:"owner" json:"owner"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}

// Document is a versioned metadata record referencing off-system content by
// hash. (EnterpriseID, ID) is unique and permanently reserved once created;
// CreatedAt never changes and Version increments exactly once per update.
type Document struct {
	EnterpriseID string      `db:"enterprise_id" json:"enterprise_id"`
	ID           string      `db:"id" json:"id"`
	Name         string      `db:"name" json:"name"`
	Description  string      `db:"description" json:"description"`
	ContentHash  ContentHash `db:"content_hash" json:"content_hash"`
	DocumentType string      `db:"document_type" json:"document_type"`
	Version      int64       `db:"version" json:"version"`
	IsActive     bool        `db:"is_active" json:"is_active"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	LastUpdated  time.Time   `db:"last_updated" json:"last_updated"`
}

// Grant binds a user to a document at a permission level. At most one live
// grant exists per (enterprise, document, user); re-granting overwrites.
type Grant struct {
	EnterpriseID string          `db:"enterprise_id" json:"enterprise_id"`
	DocumentID   string          `db:"document_id" json:"document_id"`
	UserID       string          `db:"user_id" json:"user_id"`
	Level        PermissionLevel `db:"level" json:"level"`
	GrantedBy    string          `db:"granted_by" json:"granted_by"`
	GrantedAt    time.Time       `db:"granted_at" json:"granted_at"`
}

// AuditEntry is one immutable record of an action against a document or
// enterprise. Sequence starts at 1 per (enterprise, document) and is
// strictly increasing with no gaps. Enterprise-scoped events carry an
// empty DocumentID.
type AuditEntry struct {
	ID           string      `db:"id" json:"id"`
	EnterpriseID string      `db:"enterprise_id" json:"enterprise_id"`
	DocumentID   string      `db:"document_id" json:"document_id"`
	Sequence     int64       `db:"sequence" json:"sequence"`
	UserID       string      `db:"user_id" json:"user_id"`
	Action       AuditAction `db:"action" json:"action"`
	Details      string      `db:"details" json:"details"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}
