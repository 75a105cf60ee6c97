package domain

import (
	"encoding/hex"
	"fmt"
)

// Field length ceilings for persisted string fields.
const (
	MaxIDLen           = 64
	MaxNameLen         = 256
	MaxDescriptionLen  = 500
	MaxDocumentTypeLen = 64
)

// ValidateID checks an enterprise or document identifier.
func ValidateID(field, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	if len(id) > MaxIDLen {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrValidation, field, MaxIDLen)
	}
	return nil
}

// ValidateName checks a display name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, MaxNameLen)
	}
	return nil
}

// ValidateDescription checks a description.
func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, MaxDescriptionLen)
	}
	return nil
}

// ValidateDocumentType checks a document type label.
func ValidateDocumentType(documentType string) error {
	if len(documentType) > MaxDocumentTypeLen {
		return fmt.Errorf("%w: document_type exceeds %d characters", ErrValidation, MaxDocumentTypeLen)
	}
	return nil
}

// ValidateContentHash checks that the hash is exactly ContentHashSize bytes.
func ValidateContentHash(h ContentHash) error {
	if len(h) != ContentHashSize {
		return fmt.Errorf("%w: content_hash must be exactly %d bytes", ErrValidation, ContentHashSize)
	}
	return nil
}

// ParseContentHash decodes a hex-encoded content hash and validates its size.
func ParseContentHash(s string) (ContentHash, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: content_hash is not valid hex", ErrValidation)
	}
	if err := ValidateContentHash(decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}
