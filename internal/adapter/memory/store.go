// Package memory implements the pre-consultation store in process memory.
// Aggregates are kept in their flat record form, so the same mapping and
// version rules apply as in the PostgreSQL store.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/preconsultation-backend/internal/adapter/record"
	"github.com/heartmarshall/preconsultation-backend/internal/assignment"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// Store is a concurrency-safe in-memory aggregate store.
type Store struct {
	mu      sync.RWMutex
	records map[uuid.UUID]record.Record
	byRef   map[string]uuid.UUID
	order   []uuid.UUID
}

// New creates an empty store.
func New() *Store {
	return &Store{
		records: make(map[uuid.UUID]record.Record),
		byRef:   make(map[string]uuid.UUID),
	}
}

// Load returns the aggregate by id or domain.ErrNotFound.
func (s *Store) Load(_ context.Context, id uuid.UUID) (*domain.PreConsultation, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("pre-consultation %s: %w", id, domain.ErrNotFound)
	}
	return record.FromRecord(rec)
}

// FindByCaseReference returns the aggregate of the case or domain.ErrNotFound.
func (s *Store) FindByCaseReference(ctx context.Context, caseReference string) (*domain.PreConsultation, error) {
	s.mu.RLock()
	id, ok := s.byRef[caseReference]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("pre-consultation for case %s: %w", caseReference, domain.ErrNotFound)
	}
	return s.Load(ctx, id)
}

// ListByInquiryIDs returns the aggregates of the given inquiries in
// insertion order.
func (s *Store) ListByInquiryIDs(_ context.Context, inquiryIDs []string) ([]*domain.PreConsultation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.PreConsultation, 0, len(inquiryIDs))
	for _, id := range s.order {
		rec := s.records[id]
		if !slices.Contains(inquiryIDs, rec.Root.InquiryID) {
			continue
		}
		p, err := record.FromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Create inserts a new aggregate.
func (s *Store) Create(_ context.Context, p *domain.PreConsultation) error {
	rec, err := record.ToRecord(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[p.ID]; ok {
		return fmt.Errorf("pre-consultation %s: %w", p.ID, domain.ErrAlreadyExists)
	}
	if _, ok := s.byRef[p.CaseReference]; ok {
		return fmt.Errorf("pre-consultation for case %s: %w", p.CaseReference, domain.ErrAlreadyExists)
	}

	s.records[p.ID] = rec
	s.byRef[p.CaseReference] = p.ID
	s.order = append(s.order, p.ID)
	return nil
}

// Save replaces the aggregate if the stored version equals expectedVersion.
func (s *Store) Save(_ context.Context, p *domain.PreConsultation, expectedVersion int) error {
	rec, err := record.ToRecord(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.records[p.ID]
	if !ok {
		return fmt.Errorf("pre-consultation %s: %w", p.ID, domain.ErrNotFound)
	}
	if stored.Root.Version != expectedVersion {
		return domain.NewConcurrencyConflictError(p.ID.String(), expectedVersion)
	}

	s.records[p.ID] = rec
	return nil
}

// ListAssignmentsByRole returns every assignment of role held by one of
// userIDs.
func (s *Store) ListAssignmentsByRole(_ context.Context, role domain.AssignmentRole, userIDs []string) ([]assignment.ActiveAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []assignment.ActiveAssignment
	for _, id := range s.order {
		rec := s.records[id]
		for _, a := range rec.Assignments {
			if a.Role != role.String() || !slices.Contains(userIDs, a.AssignedUserID) {
				continue
			}
			out = append(out, assignment.ActiveAssignment{
				UserID:        a.AssignedUserID,
				CaseReference: rec.Root.CaseReference,
			})
		}
	}
	return out, nil
}

// Len returns the number of stored aggregates.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
