// Package preconsultation implements the PreConsultation aggregate store
// using PostgreSQL. The aggregate is written as one root row plus child rows
// through the record mapper; every write is version-checked.
package preconsultation

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/preconsultation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/preconsultation-backend/internal/adapter/record"
	"github.com/heartmarshall/preconsultation-backend/internal/assignment"
	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

const entity = "pre_consultation"

// Table names.
const (
	tableRoot          = "pre_consultations"
	tableAudit         = "pre_consultation_audit_entries"
	tableReports       = "pre_consultation_medical_reports"
	tableIdentityDocs  = "pre_consultation_identity_documents"
	tableAssignments   = "pre_consultation_assignments"
	tableReminders     = "pre_consultation_reminders"
	tableNotifications = "pre_consultation_notifications"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides aggregate persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new pre-consultation repository.
func New(pool *pgxpool.Pool, tx *postgres.TxManager) *Repo {
	return &Repo{pool: pool, tx: tx}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Load returns the aggregate by id. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Load(ctx context.Context, id uuid.UUID) (*domain.PreConsultation, error) {
	rec, err := r.loadRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return record.FromRecord(rec)
}

// FindByCaseReference returns the aggregate of the case.
// Returns domain.ErrNotFound if the case has none.
func (r *Repo) FindByCaseReference(ctx context.Context, caseReference string) (*domain.PreConsultation, error) {
	ids, err := r.selectIDs(ctx, squirrel.Eq{"case_reference": caseReference})
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%s for case %s: %w", entity, caseReference, domain.ErrNotFound)
	}
	return r.Load(ctx, ids[0])
}

// ListByInquiryIDs returns the aggregates of the given inquiries in creation order.
func (r *Repo) ListByInquiryIDs(ctx context.Context, inquiryIDs []string) ([]*domain.PreConsultation, error) {
	if len(inquiryIDs) == 0 {
		return nil, nil
	}

	ids, err := r.selectIDs(ctx, squirrel.Eq{"inquiry_id": inquiryIDs})
	if err != nil {
		return nil, err
	}

	out := make([]*domain.PreConsultation, 0, len(ids))
	for _, id := range ids {
		p, err := r.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ListAssignmentsByRole returns every assignment of role held by one of userIDs,
// with the case reference of the assigned aggregate.
func (r *Repo) ListAssignmentsByRole(ctx context.Context, role domain.AssignmentRole, userIDs []string) ([]assignment.ActiveAssignment, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	sql, args, err := psql.
		Select("a.assigned_user_id", "p.case_reference").
		From(tableAssignments + " a").
		Join(tableRoot + " p ON p.id = a.pre_consultation_id").
		Where(squirrel.Eq{"a.role": role.String(), "a.assigned_user_id": userIDs}).
		OrderBy("a.assigned_date", "a.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list assignments: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[assignment.ActiveAssignment])
	if err != nil {
		return nil, fmt.Errorf("scan assignments: %w", err)
	}
	return out, nil
}

func (r *Repo) selectIDs(ctx context.Context, where squirrel.Sqlizer) ([]uuid.UUID, error) {
	sql, args, err := psql.Select("id").From(tableRoot).Where(where).OrderBy("created_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s ids: %w", entity, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scan %s ids: %w", entity, err)
	}
	return ids, nil
}

// loadRecord reads the root row and all child rows in one batch, so they
// come from a single implicit transaction.
func (r *Repo) loadRecord(ctx context.Context, id uuid.UUID) (record.Record, error) {
	queries := []squirrel.SelectBuilder{
		psql.Select(rootColumns...).From(tableRoot).Where(squirrel.Eq{"id": id}),
		psql.Select("comments", "version", "created_by", "command_name", "created_at").
			From(tableAudit).Where(squirrel.Eq{"pre_consultation_id": id}).OrderBy("seq"),
		psql.Select(reportColumns...).From(tableReports).Where(squirrel.Eq{"pre_consultation_id": id}).OrderBy("position"),
		psql.Select(identityColumns...).From(tableIdentityDocs).Where(squirrel.Eq{"pre_consultation_id": id}).OrderBy("position"),
		psql.Select(assignmentColumns...).From(tableAssignments).Where(squirrel.Eq{"pre_consultation_id": id}).OrderBy("role"),
		psql.Select(reminderColumns...).From(tableReminders).Where(squirrel.Eq{"pre_consultation_id": id}).OrderBy("reminder_type"),
		psql.Select(notificationColumns...).From(tableNotifications).Where(squirrel.Eq{"pre_consultation_id": id}).OrderBy("notification_type"),
	}

	batch := &pgx.Batch{}
	for _, q := range queries {
		sql, args, err := q.ToSql()
		if err != nil {
			return record.Record{}, fmt.Errorf("build load query: %w", err)
		}
		batch.Queue(sql, args...)
	}

	br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer br.Close()

	var rec record.Record
	if err := br.QueryRow().Scan(rootScanTargets(&rec.Root)...); err != nil {
		return record.Record{}, postgres.MapError(err, entity, id)
	}

	var err error
	if rec.Root.AuditHistory, err = collect[domain.AuditEntry](br); err != nil {
		return record.Record{}, fmt.Errorf("load audit history %s: %w", id, err)
	}
	if rec.Reports, err = collect[record.Report](br); err != nil {
		return record.Record{}, fmt.Errorf("load medical reports %s: %w", id, err)
	}
	if rec.IdentityDocs, err = collect[record.IdentityDoc](br); err != nil {
		return record.Record{}, fmt.Errorf("load identity documents %s: %w", id, err)
	}
	if rec.Assignments, err = collect[record.AssignmentRow](br); err != nil {
		return record.Record{}, fmt.Errorf("load assignments %s: %w", id, err)
	}
	if rec.Reminders, err = collect[record.ReminderRow](br); err != nil {
		return record.Record{}, fmt.Errorf("load reminders %s: %w", id, err)
	}
	if rec.Notifications, err = collect[record.NotificationRow](br); err != nil {
		return record.Record{}, fmt.Errorf("load notifications %s: %w", id, err)
	}

	return rec, nil
}

func collect[T any](br pgx.BatchResults) ([]T, error) {
	rows, err := br.Query()
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[T])
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new aggregate with all its child rows. Returns
// domain.ErrAlreadyExists if the id or the case reference is taken.
func (r *Repo) Create(ctx context.Context, p *domain.PreConsultation) error {
	rec, err := record.ToRecord(p)
	if err != nil {
		return err
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		sql, args, err := psql.Insert(tableRoot).Columns(rootColumns...).Values(rootValues(rec.Root)...).ToSql()
		if err != nil {
			return fmt.Errorf("build insert root: %w", err)
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return postgres.MapError(err, entity, p.ID)
		}

		if err := insertAudit(ctx, q, p.ID, rec.Root.AuditHistory); err != nil {
			return err
		}
		return writeChildren(ctx, q, p.ID, rec)
	})
}

// Save replaces the aggregate if it is still at expectedVersion. The root
// update, the new audit entries and the child rows are written in one
// transaction, so a replaced assignment is never observed half-written.
func (r *Repo) Save(ctx context.Context, p *domain.PreConsultation, expectedVersion int) error {
	rec, err := record.ToRecord(p)
	if err != nil {
		return err
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		update := psql.Update(tableRoot).Set("updated_at", squirrel.Expr("now()"))
		values := rootValues(rec.Root)
		for i, col := range rootColumns {
			if col == "id" {
				continue
			}
			update = update.Set(col, values[i])
		}
		sql, args, err := update.Where(squirrel.Eq{"id": p.ID, "version": expectedVersion}).ToSql()
		if err != nil {
			return fmt.Errorf("build update root: %w", err)
		}

		tag, err := q.Exec(ctx, sql, args...)
		if err != nil {
			return postgres.MapError(err, entity, p.ID)
		}
		if tag.RowsAffected() == 0 {
			return r.missOrConflict(ctx, q, p.ID, expectedVersion)
		}

		var fresh []domain.AuditEntry
		for _, e := range rec.Root.AuditHistory {
			if e.Version > expectedVersion {
				fresh = append(fresh, e)
			}
		}
		if err := insertAudit(ctx, q, p.ID, fresh); err != nil {
			return err
		}

		return writeChildren(ctx, q, p.ID, rec)
	})
}

func (r *Repo) missOrConflict(ctx context.Context, q postgres.Querier, id uuid.UUID, expectedVersion int) error {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM `+tableRoot+` WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if !exists {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return domain.NewConcurrencyConflictError(id.String(), expectedVersion)
}

func insertAudit(ctx context.Context, q postgres.Querier, id uuid.UUID, entries []domain.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	insert := psql.Insert(tableAudit).
		Columns("pre_consultation_id", "version", "comments", "created_by", "command_name", "created_at")
	for _, e := range entries {
		insert = insert.Values(id, e.Version, e.Comments, e.CreatedBy, e.CommandName, e.Timestamp)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit_entry", id)
	}
	return nil
}
