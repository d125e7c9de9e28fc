package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeededCase is a minimal pre-consultation row inserted directly with SQL.
type SeededCase struct {
	ID            uuid.UUID
	CaseReference string
	InquiryID     string
}

// SeedPreConsultation inserts a version 0 pre-consultation with a single
// radiology review and one audit entry.
func SeedPreConsultation(t *testing.T, pool *pgxpool.Pool) SeededCase {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	c := SeededCase{
		ID:            uuid.New(),
		CaseReference: "IRN-" + suffix,
		InquiryID:     "inq-" + suffix,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO pre_consultations (id, version, version_comments, case_reference, inquiry_id, service_names)
		 VALUES ($1, 0, 'seeded', $2, $3, '{RADIOLOGY_REVIEW}')`,
		c.ID, c.CaseReference, c.InquiryID,
	)
	if err != nil {
		t.Fatalf("SeedPreConsultation: insert root: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO pre_consultation_audit_entries (pre_consultation_id, version, comments, created_by, command_name, created_at)
		 VALUES ($1, 0, 'seeded', 'seeder', 'SubmitServiceSelection', $2)`,
		c.ID, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("SeedPreConsultation: insert audit entry: %v", err)
	}

	return c
}

// SeedAssignment assigns userID to the seeded case under role.
func SeedAssignment(t *testing.T, pool *pgxpool.Pool, c SeededCase, role, userID string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO pre_consultation_assignments (id, pre_consultation_id, role, assigned_user_id, assigned_date, mode)
		 VALUES ($1, $2, $3, $4, $5, 'AUTOMATIC')`,
		uuid.New(), c.ID, role, userID, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("SeedAssignment: %v", err)
	}
}
