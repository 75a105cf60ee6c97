// Package memory provides a mutex-guarded in-memory implementation of the
// state store. It backs unit tests and mirrors the serial execution model of
// the durable store: Atomic holds the write lock for the whole operation and
// rolls the state back if the operation fails partway.
package memory

import (
	"context"
	"sync"

	"docvault/internal/domain"
	"docvault/internal/port"
)

type documentKey struct {
	enterpriseID string
	documentID   string
}

type grantKey struct {
	enterpriseID string
	documentID   string
	userID       string
}

type auditKey struct {
	enterpriseID string
	documentID   string
	sequence     int64
}

type state struct {
	enterprises map[string]domain.Enterprise
	documents   map[documentKey]domain.Document
	grants      map[grantKey]domain.Grant
	entries     map[auditKey]domain.AuditEntry
	counters    map[documentKey]int64
}

func newState() *state {
	return &state{
		enterprises: make(map[string]domain.Enterprise),
		documents:   make(map[documentKey]domain.Document),
		grants:      make(map[grantKey]domain.Grant),
		entries:     make(map[auditKey]domain.AuditEntry),
		counters:    make(map[documentKey]int64),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.enterprises {
		c.enterprises[k] = v
	}
	for k, v := range s.documents {
		c.documents[k] = v
	}
	for k, v := range s.grants {
		c.grants[k] = v
	}
	for k, v := range s.entries {
		c.entries[k] = v
	}
	for k, v := range s.counters {
		c.counters[k] = v
	}
	return c
}

// Store is an in-memory port.Store.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore creates an empty in-memory Store.
func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) Enterprises() port.EnterpriseRepository {
	return enterpriseRepo{view{store: s}}
}

func (s *Store) Documents() port.DocumentRepository {
	return documentRepo{view{store: s}}
}

func (s *Store) Grants() port.GrantRepository {
	return grantRepo{view{store: s}}
}

func (s *Store) Audit() port.AuditLogRepository {
	return auditLogRepo{view{store: s}}
}

// Atomic runs fn with exclusive access to the whole store. On error the
// pre-operation state is restored, so a failed operation leaves no partial
// writes behind.
func (s *Store) Atomic(_ context.Context, fn func(r port.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(txRepositories{store: s}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// view gives repository adapters access to the store. Outside a transaction
// each call takes the store lock; inside Atomic the lock is already held.
type view struct {
	store *Store
	inTx  bool
}

func (v view) lock() func() {
	if v.inTx {
		return func() {}
	}
	v.store.mu.Lock()
	return v.store.mu.Unlock
}

func (v view) rlock() func() {
	if v.inTx {
		return func() {}
	}
	v.store.mu.RLock()
	return v.store.mu.RUnlock
}

type txRepositories struct {
	store *Store
}

func (t txRepositories) Enterprises() port.EnterpriseRepository {
	return enterpriseRepo{view{store: t.store, inTx: true}}
}

func (t txRepositories) Documents() port.DocumentRepository {
	return documentRepo{view{store: t.store, inTx: true}}
}

func (t txRepositories) Grants() port.GrantRepository {
	return grantRepo{view{store: t.store, inTx: true}}
}

func (t txRepositories) Audit() port.AuditLogRepository {
	return auditLogRepo{view{store: t.store, inTx: true}}
}
