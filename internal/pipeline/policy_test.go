package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/internal/pipeline"
)

func TestAuthorizers(t *testing.T) {
	t.Parallel()

	cmo := domain.Caller{UserID: "c", Role: domain.CallerCMO, Source: domain.SourceUser}
	hmt := domain.Caller{UserID: "h", Role: domain.CallerHMT, Source: domain.SourceUser}
	pmc := domain.Caller{UserID: "p", Role: domain.CallerPMC, Source: domain.SourceUser}
	wf := domain.Caller{UserID: "w", Source: domain.SourceWorkflow}

	tests := []struct {
		name   string
		auth   pipeline.Authorizer[createCmd]
		caller domain.Caller
		allow  bool
	}{
		{"admin cmo", pipeline.AdminOnly[createCmd](), cmo, true},
		{"admin hmt", pipeline.AdminOnly[createCmd](), hmt, true},
		{"admin pmc", pipeline.AdminOnly[createCmd](), pmc, false},
		{"workflow wf", pipeline.WorkflowOnly[createCmd](), wf, true},
		{"workflow cmo", pipeline.WorkflowOnly[createCmd](), cmo, false},
		{"any of", pipeline.AnyOf(pipeline.WorkflowOnly[createCmd](), pipeline.AdminOnly[createCmd]()), hmt, true},
		{"any of none", pipeline.AnyOf(pipeline.WorkflowOnly[createCmd](), pipeline.AdminOnly[createCmd]()), pmc, false},
		{"any of empty", pipeline.AnyOf[createCmd](), cmo, false},
		{"deny all", pipeline.DenyAll[createCmd](), cmo, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.auth(context.Background(), tt.caller, createCmd{ref: "x"}, nil)
			if tt.allow {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrForbidden)
		})
	}
}

func TestExistsBy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	existing := &domain.PreConsultation{CaseReference: "IRN-1"}

	found := pipeline.ExistsBy(func(context.Context, createCmd) (*domain.PreConsultation, error) {
		return existing, nil
	})
	d, err := found(ctx, createCmd{}, nil)
	require.NoError(t, err)
	assert.False(t, d.Proceed)
	assert.Same(t, existing, d.Existing)

	missing := pipeline.ExistsBy(func(context.Context, createCmd) (*domain.PreConsultation, error) {
		return nil, domain.ErrNotFound
	})
	d, err = missing(ctx, createCmd{}, nil)
	require.NoError(t, err)
	assert.True(t, d.Proceed)

	boom := errors.New("db down")
	failing := pipeline.ExistsBy(func(context.Context, createCmd) (*domain.PreConsultation, error) {
		return nil, boom
	})
	_, err = failing(ctx, createCmd{}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestInherentlyIdempotent(t *testing.T) {
	t.Parallel()

	d, err := pipeline.InherentlyIdempotent[assignCmd]()(context.Background(), assignCmd{}, &domain.PreConsultation{})
	require.NoError(t, err)
	assert.True(t, d.Proceed)
}
