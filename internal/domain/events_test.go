package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func submitted(id uuid.UUID) ServiceSelectionSubmitted {
	return ServiceSelectionSubmitted{
		EventMeta: EventMeta{
			ID:          uuid.New(),
			AggregateID: id,
			CreatedBy:   "patient-1",
			CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			CommandName: "SubmitServiceSelection",
			Comments:    "PreConsultation created",
		},
		CaseReference: "IRN-100",
		InquiryID:     "inq-100",
		Services:      []Service{VideoConsultation{}, RadiologyReview{}},
	}
}

func assigned(id uuid.UUID, user string) OfficerAssigned {
	return OfficerAssigned{
		EventMeta: EventMeta{
			ID:          uuid.New(),
			AggregateID: id,
			CreatedBy:   "workflow",
			CreatedAt:   time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
			CommandName: "AssignOfficer",
			Comments:    "officer assigned",
		},
		Assignment: Assignment{
			ID:             uuid.New(),
			Role:           RoleReviewingOfficer,
			AssignedUserID: user,
			Mode:           AssignmentAutomatic,
		},
	}
}

func TestApply_CreationYieldsVersionZero(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	p, err := Apply(nil, submitted(id))
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if p.ID != id || p.Version != 0 || !p.IsNew {
		t.Fatalf("unexpected snapshot: id=%s version=%d isNew=%v", p.ID, p.Version, p.IsNew)
	}
	if len(p.AuditHistory) != 1 || p.AuditHistory[0].Version != 0 {
		t.Fatalf("expected one audit entry at version 0, got %+v", p.AuditHistory)
	}
	if len(p.Services) != 2 || p.CaseReference != "IRN-100" {
		t.Fatalf("services or case reference not set: %+v", p)
	}
}

func TestApply_CreationOnExistingFails(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	p, _ := Apply(nil, submitted(id))

	if _, err := Apply(p, submitted(id)); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestApply_MutationWithoutAggregateFails(t *testing.T) {
	t.Parallel()

	_, err := Apply(nil, assigned(uuid.New(), "mo-1"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApply_MutationOnOtherAggregateFails(t *testing.T) {
	t.Parallel()

	p, _ := Apply(nil, submitted(uuid.New()))
	if _, err := Apply(p, assigned(uuid.New(), "mo-1")); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
}

func TestApply_VersionMonotonic(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	p, err := Apply(nil, submitted(id))
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	events := []Event{
		assigned(id, "mo-1"),
		OfficerReassigned{
			EventMeta: assigned(id, "").EventMeta,
			Assignment: Assignment{
				ID:               uuid.New(),
				Role:             RoleReviewingOfficer,
				AssignedUserID:   "mo-2",
				Mode:             AssignmentManual,
				AssignedByUserID: "cmo-1",
			},
		},
		PatientNotified{
			EventMeta:    assigned(id, "").EventMeta,
			Notification: Notification{Type: NotifyServiceToPatient, ID: "n-1"},
		},
		PatientNotified{
			EventMeta:    assigned(id, "").EventMeta,
			Notification: Notification{Type: NotifyServiceToPatient, ID: "n-2"},
		},
	}

	for i, e := range events {
		next, err := Apply(p, e)
		if err != nil {
			t.Fatalf("Apply(%s) error: %v", e.Name(), err)
		}
		if next.Version != p.Version+1 {
			t.Fatalf("event %d: version %d, want %d", i, next.Version, p.Version+1)
		}
		if len(next.AuditHistory) != len(p.AuditHistory)+1 {
			t.Fatalf("event %d: audit history not appended", i)
		}
		if last := next.AuditHistory[len(next.AuditHistory)-1]; last.Version != next.Version {
			t.Fatalf("event %d: audit entry stamped %d, want %d", i, last.Version, next.Version)
		}
		if next.IsNew {
			t.Fatalf("event %d: mutated snapshot must not be new", i)
		}
		p = next
	}

	if p.Version != 4 {
		t.Fatalf("final version = %d, want 4", p.Version)
	}
	if len(p.Assignments) != 1 {
		t.Fatalf("expected a single assignment per role, got %d", len(p.Assignments))
	}
	if a, _ := p.Assignment(RoleReviewingOfficer); a.AssignedUserID != "mo-2" || a.Mode != AssignmentManual {
		t.Fatalf("reassignment did not replace assignment: %+v", a)
	}
	if n := p.Notifications[NotifyServiceToPatient]; n.ID != "n-2" || len(p.Notifications) != 1 {
		t.Fatalf("notification not overwritten: %+v", p.Notifications)
	}

	// Identical comments still produce separate entries.
	if p.AuditHistory[3].Comments != p.AuditHistory[4].Comments {
		t.Fatal("test setup: expected equal comments")
	}
}

func TestApply_DoesNotModifyOld(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	p, _ := Apply(nil, submitted(id))
	before := len(p.AuditHistory)

	next, err := Apply(p, assigned(id, "mo-1"))
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if p.Version != 0 || len(p.AuditHistory) != before || len(p.Assignments) != 0 {
		t.Fatalf("old snapshot was modified: %+v", p)
	}
	if !p.IsNew {
		t.Fatal("old snapshot lost IsNew")
	}
	if next == p {
		t.Fatal("Apply must return a new snapshot")
	}
}

func TestClone_Isolation(t *testing.T) {
	t.Parallel()

	p := &PreConsultation{
		ID:            uuid.New(),
		Services:      []Service{RadiologyReview{}},
		Assignments:   map[AssignmentRole]Assignment{RoleReviewingOfficer: {AssignedUserID: "mo-1"}},
		Notifications: map[NotificationType]Notification{},
		ReviewStatus:  &ReviewStatus{State: ReviewApproved},
	}
	c := p.Clone()

	c.Services[0] = TravelToRemoteSite{}
	c.Assignments[RoleReviewingOfficer] = Assignment{AssignedUserID: "mo-2"}
	c.Notifications[NotifyServiceToPatient] = Notification{ID: "n"}
	c.ReviewStatus.State = ReviewRejected

	if p.Services[0].Name() != ServiceRadiologyReview {
		t.Error("services shared with clone")
	}
	if p.Assignments[RoleReviewingOfficer].AssignedUserID != "mo-1" {
		t.Error("assignments shared with clone")
	}
	if len(p.Notifications) != 0 {
		t.Error("notifications shared with clone")
	}
	if p.ReviewStatus.State != ReviewApproved {
		t.Error("review status shared with clone")
	}

	var nilAgg *PreConsultation
	if nilAgg.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
