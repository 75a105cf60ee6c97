package memory

import (
	"context"
	"sort"

	"docvault/internal/domain"
)

type enterpriseRepo struct {
	view
}

func (r enterpriseRepo) Create(_ context.Context, enterprise *domain.Enterprise) error {
	defer r.lock()()
	st := r.store.st
	if _, exists := st.enterprises[enterprise.ID]; exists {
		return domain.ErrDuplicateEnterprise
	}
	st.enterprises[enterprise.ID] = *enterprise
	return nil
}

func (r enterpriseRepo) GetByID(_ context.Context, id string) (*domain.Enterprise, error) {
	defer r.rlock()()
	enterprise, ok := r.store.st.enterprises[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &enterprise, nil
}

type documentRepo struct {
	view
}

func (r documentRepo) Create(_ context.Context, document *domain.Document) error {
	defer r.lock()()
	st := r.store.st
	key := documentKey{document.EnterpriseID, document.ID}
	if _, exists := st.documents[key]; exists {
		return domain.ErrDuplicateDocument
	}
	st.documents[key] = *document
	return nil
}

func (r documentRepo) GetByID(_ context.Context, enterpriseID, documentID string) (*domain.Document, error) {
	defer r.rlock()()
	document, ok := r.store.st.documents[documentKey{enterpriseID, documentID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &document, nil
}

func (r documentRepo) Update(_ context.Context, document *domain.Document) error {
	defer r.lock()()
	st := r.store.st
	key := documentKey{document.EnterpriseID, document.ID}
	if _, exists := st.documents[key]; !exists {
		return domain.ErrNotFound
	}
	st.documents[key] = *document
	return nil
}

func (r documentRepo) ListByEnterprise(_ context.Context, enterpriseID string, offset, limit int) ([]domain.Document, int, error) {
	defer r.rlock()()
	var all []domain.Document
	for key, document := range r.store.st.documents {
		if key.enterpriseID == enterpriseID {
			all = append(all, document)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	return paginate(all, offset, limit), len(all), nil
}

type grantRepo struct {
	view
}

func (r grantRepo) Upsert(_ context.Context, grant *domain.Grant) error {
	defer r.lock()()
	key := grantKey{grant.EnterpriseID, grant.DocumentID, grant.UserID}
	r.store.st.grants[key] = *grant
	return nil
}

func (r grantRepo) GetByDocumentAndUser(_ context.Context, enterpriseID, documentID, userID string) (*domain.Grant, error) {
	defer r.rlock()()
	grant, ok := r.store.st.grants[grantKey{enterpriseID, documentID, userID}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &grant, nil
}

func (r grantRepo) Delete(_ context.Context, enterpriseID, documentID, userID string) error {
	defer r.lock()()
	key := grantKey{enterpriseID, documentID, userID}
	if _, ok := r.store.st.grants[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.st.grants, key)
	return nil
}

func (r grantRepo) ListByDocument(_ context.Context, enterpriseID, documentID string, offset, limit int) ([]domain.Grant, int, error) {
	defer r.rlock()()
	var all []domain.Grant
	for key, grant := range r.store.st.grants {
		if key.enterpriseID == enterpriseID && key.documentID == documentID {
			all = append(all, grant)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].GrantedAt.Equal(all[j].GrantedAt) {
			return all[i].GrantedAt.Before(all[j].GrantedAt)
		}
		return all[i].UserID < all[j].UserID
	})
	return paginate(all, offset, limit), len(all), nil
}

// auditLogRepo is append-and-read only; entries are never mutated or removed.
type auditLogRepo struct {
	view
}

func (r auditLogRepo) NextSequence(_ context.Context, enterpriseID, documentID string) (int64, error) {
	defer r.lock()()
	st := r.store.st
	key := documentKey{enterpriseID, documentID}
	next, ok := st.counters[key]
	if !ok {
		next = 1
	}
	st.counters[key] = next + 1
	return next, nil
}

func (r auditLogRepo) Append(_ context.Context, entry *domain.AuditEntry) error {
	defer r.lock()()
	key := auditKey{entry.EnterpriseID, entry.DocumentID, entry.Sequence}
	r.store.st.entries[key] = *entry
	return nil
}

func (r auditLogRepo) GetBySequence(_ context.Context, enterpriseID, documentID string, sequence int64) (*domain.AuditEntry, error) {
	defer r.rlock()()
	entry, ok := r.store.st.entries[auditKey{enterpriseID, documentID, sequence}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

func (r auditLogRepo) ListByDocument(_ context.Context, enterpriseID, documentID string, offset, limit int) ([]domain.AuditEntry, int, error) {
	defer r.rlock()()
	var all []domain.AuditEntry
	for key, entry := range r.store.st.entries {
		if key.enterpriseID == enterpriseID && key.documentID == documentID {
			all = append(all, entry)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Sequence < all[j].Sequence })
	return paginate(all, offset, limit), len(all), nil
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
