package preconsultation

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/preconsultation-backend/internal/adapter/postgres"
	"github.com/heartmarshall/preconsultation-backend/internal/adapter/record"
)

// Column lists follow the field order of the record types, so rows can be
// scanned with pgx.RowToStructByPos.
var (
	rootColumns = []string{
		"id", "version", "version_comments", "case_reference", "inquiry_id", "service_names",
		"preferred_physician_name", "supplementary_services", "is_multi_md_consult",
		"slide_type", "pathology_type", "courier_type", "tracking_id",
		"contact_person_name", "contact_person_phone", "collect_specimen_from",
		"payment_reference_id",
		"reviewer", "reviewer_id", "review_state", "review_comments", "review_date",
	}
	reportColumns = []string{
		"report_id", "category", "report_type", "description", "taken_date", "reference_document_id", "status",
	}
	identityColumns = []string{
		"document_id", "identity_type", "aadhaar_number", "passport_number", "driving_license_number",
		"other_name", "other_number", "reference_document_id", "status",
	}
	assignmentColumns = []string{
		"id", "role", "assigned_user_id", "assigned_date", "mode", "assigned_by_user_id",
	}
	reminderColumns = []string{
		"reminder_type", "reminder_id", "created_date", "reminder_date", "status", "cancelled_date",
	}
	notificationColumns = []string{
		"notification_type", "notification_id", "notified_date", "comment",
	}
)

func rootValues(r record.Root) []any {
	return []any{
		r.ID, r.Version, r.VersionComments, r.CaseReference, r.InquiryID, r.ServiceNames,
		r.PreferredPhysicianName, r.SupplementaryServices, r.IsMultiMdConsult,
		r.SlideType, r.PathologyType, r.CourierType, r.TrackingID,
		r.ContactPersonName, r.ContactPersonPhone, r.CollectSpecimenFrom,
		r.PaymentReferenceID,
		r.Reviewer, r.ReviewerID, r.ReviewState, r.ReviewComments, r.ReviewDate,
	}
}

func rootScanTargets(r *record.Root) []any {
	return []any{
		&r.ID, &r.Version, &r.VersionComments, &r.CaseReference, &r.InquiryID, &r.ServiceNames,
		&r.PreferredPhysicianName, &r.SupplementaryServices, &r.IsMultiMdConsult,
		&r.SlideType, &r.PathologyType, &r.CourierType, &r.TrackingID,
		&r.ContactPersonName, &r.ContactPersonPhone, &r.CollectSpecimenFrom,
		&r.PaymentReferenceID,
		&r.Reviewer, &r.ReviewerID, &r.ReviewState, &r.ReviewComments, &r.ReviewDate,
	}
}

// writeChildren brings every child table of id in line with rec. Ordered
// collections are rewritten; keyed ones are upserted and the keys no longer
// present are removed.
func writeChildren(ctx context.Context, q postgres.Querier, id uuid.UUID, rec record.Record) error {
	byID := squirrel.Eq{"pre_consultation_id": id}

	// Medical reports and identity documents keep their list position.
	if err := exec(ctx, q, psql.Delete(tableReports).Where(byID)); err != nil {
		return fmt.Errorf("clear medical reports: %w", err)
	}
	if len(rec.Reports) > 0 {
		insert := psql.Insert(tableReports).Columns(append([]string{"pre_consultation_id", "position"}, reportColumns...)...)
		for i, r := range rec.Reports {
			insert = insert.Values(id, i, r.ReportID, r.Category, r.ReportType, r.Description, r.TakenDate, r.ReferenceDocumentID, r.Status)
		}
		if err := exec(ctx, q, insert); err != nil {
			return fmt.Errorf("insert medical reports: %w", err)
		}
	}

	if err := exec(ctx, q, psql.Delete(tableIdentityDocs).Where(byID)); err != nil {
		return fmt.Errorf("clear identity documents: %w", err)
	}
	if len(rec.IdentityDocs) > 0 {
		insert := psql.Insert(tableIdentityDocs).Columns(append([]string{"pre_consultation_id", "position"}, identityColumns...)...)
		for i, d := range rec.IdentityDocs {
			insert = insert.Values(id, i, d.DocumentID, d.IdentityType, d.AadhaarNumber, d.PassportNumber,
				d.DrivingLicenseNumber, d.OtherName, d.OtherNumber, d.ReferenceDocumentID, d.Status)
		}
		if err := exec(ctx, q, insert); err != nil {
			return fmt.Errorf("insert identity documents: %w", err)
		}
	}

	// Assignments: one row per role.
	roles := make([]string, 0, len(rec.Assignments))
	if len(rec.Assignments) > 0 {
		insert := psql.Insert(tableAssignments).Columns(append([]string{"pre_consultation_id"}, assignmentColumns...)...)
		for _, a := range rec.Assignments {
			roles = append(roles, a.Role)
			insert = insert.Values(id, a.ID, a.Role, a.AssignedUserID, a.AssignedDate, a.Mode, a.AssignedByUserID)
		}
		insert = insert.Suffix(`ON CONFLICT (pre_consultation_id, role) DO UPDATE SET
			id = EXCLUDED.id,
			assigned_user_id = EXCLUDED.assigned_user_id,
			assigned_date = EXCLUDED.assigned_date,
			mode = EXCLUDED.mode,
			assigned_by_user_id = EXCLUDED.assigned_by_user_id`)
		if err := exec(ctx, q, insert); err != nil {
			return fmt.Errorf("upsert assignments: %w", err)
		}
	}
	if err := exec(ctx, q, psql.Delete(tableAssignments).Where(byID).Where(squirrel.NotEq{"role": roles})); err != nil {
		return fmt.Errorf("prune assignments: %w", err)
	}

	// Reminders: one row per reminder type.
	reminderTypes := make([]string, 0, len(rec.Reminders))
	if len(rec.Reminders) > 0 {
		insert := psql.Insert(tableReminders).Columns(append([]string{"pre_consultation_id"}, reminderColumns...)...)
		for _, r := range rec.Reminders {
			reminderTypes = append(reminderTypes, r.ReminderType)
			insert = insert.Values(id, r.ReminderType, r.ReminderID, r.CreatedDate, r.ReminderDate, r.Status, r.CancelledDate)
		}
		insert = insert.Suffix(`ON CONFLICT (pre_consultation_id, reminder_type) DO UPDATE SET
			reminder_id = EXCLUDED.reminder_id,
			created_date = EXCLUDED.created_date,
			reminder_date = EXCLUDED.reminder_date,
			status = EXCLUDED.status,
			cancelled_date = EXCLUDED.cancelled_date`)
		if err := exec(ctx, q, insert); err != nil {
			return fmt.Errorf("upsert reminders: %w", err)
		}
	}
	if err := exec(ctx, q, psql.Delete(tableReminders).Where(byID).Where(squirrel.NotEq{"reminder_type": reminderTypes})); err != nil {
		return fmt.Errorf("prune reminders: %w", err)
	}

	// Notifications: one row per notification type.
	notificationTypes := make([]string, 0, len(rec.Notifications))
	if len(rec.Notifications) > 0 {
		insert := psql.Insert(tableNotifications).Columns(append([]string{"pre_consultation_id"}, notificationColumns...)...)
		for _, n := range rec.Notifications {
			notificationTypes = append(notificationTypes, n.NotificationType)
			insert = insert.Values(id, n.NotificationType, n.NotificationID, n.NotifiedDate, n.Comment)
		}
		insert = insert.Suffix(`ON CONFLICT (pre_consultation_id, notification_type) DO UPDATE SET
			notification_id = EXCLUDED.notification_id,
			notified_date = EXCLUDED.notified_date,
			comment = EXCLUDED.comment`)
		if err := exec(ctx, q, insert); err != nil {
			return fmt.Errorf("upsert notifications: %w", err)
		}
	}
	if err := exec(ctx, q, psql.Delete(tableNotifications).Where(byID).Where(squirrel.NotEq{"notification_type": notificationTypes})); err != nil {
		return fmt.Errorf("prune notifications: %w", err)
	}

	return nil
}

func exec(ctx context.Context, q postgres.Querier, stmt squirrel.Sqlizer) error {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sql, args...)
	return err
}
