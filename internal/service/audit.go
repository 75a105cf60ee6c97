package service

import (
	"context"
	"fmt"
	"time"

	"docvault/internal/domain"
	"docvault/internal/ids"
	"docvault/internal/port"
)

// appendAudit allocates the next sequence number for the (enterprise,
// document) pair and stores one audit entry. Authorization happens upstream
// in the calling operation; the append itself cannot be blocked. Enterprise
// scoped events pass an empty documentID.
func appendAudit(ctx context.Context, r port.Repositories, enterpriseID, documentID, userID string, action domain.AuditAction, details string) error {
	sequence, err := r.Audit().NextSequence(ctx, enterpriseID, documentID)
	if err != nil {
		return fmt.Errorf("allocating audit sequence: %w", err)
	}

	entry := &domain.AuditEntry{
		ID:           ids.New(),
		EnterpriseID: enterpriseID,
		DocumentID:   documentID,
		Sequence:     sequence,
		UserID:       userID,
		Action:       action,
		Details:      details,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.Audit().Append(ctx, entry); err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}
	return nil
}
