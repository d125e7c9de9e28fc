package record

import (
	"fmt"
	"maps"
	"slices"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// ToRecord flattens p. It never modifies p.
func ToRecord(p *domain.PreConsultation) (Record, error) {
	rec := Record{
		Root: Root{
			ID:              p.ID,
			Version:         p.Version,
			VersionComments: p.VersionComments,
			CaseReference:   p.CaseReference,
			InquiryID:       p.InquiryID,
			AuditHistory:    slices.Clone(p.AuditHistory),
		},
	}

	if err := writeServices(&rec.Root, p.Services); err != nil {
		return Record{}, fmt.Errorf("map services: %w", err)
	}

	if p.PaymentReference != nil {
		rec.Root.PaymentReferenceID = ptr(p.PaymentReference.ID)
	}

	if rs := p.ReviewStatus; rs != nil {
		if !rs.Reviewer.IsValid() {
			return Record{}, &domain.UnmappedVariantError{Union: "reviewer role", Tag: rs.Reviewer.String()}
		}
		if !rs.State.IsValid() {
			return Record{}, &domain.UnmappedVariantError{Union: "review state", Tag: rs.State.String()}
		}
		rec.Root.Reviewer = ptr(rs.Reviewer.String())
		rec.Root.ReviewerID = ptr(rs.ReviewerID)
		rec.Root.ReviewState = ptr(rs.State.String())
		rec.Root.ReviewDate = ptr(rs.ReviewDate)
		if rs.State == domain.ReviewRejected {
			rec.Root.ReviewComments = ptr(rs.Comments)
		}
	}

	for _, r := range p.MedicalReports {
		if !r.Category.IsValid() {
			return Record{}, &domain.UnmappedVariantError{Union: "report category", Tag: r.Category.String()}
		}
		rec.Reports = append(rec.Reports, Report{
			ReportID:            r.ID,
			Category:            r.Category.String(),
			ReportType:          r.ReportType,
			Description:         nonEmpty(r.Description),
			TakenDate:           r.TakenDate,
			ReferenceDocumentID: nonEmpty(r.ReferenceDocumentID),
			Status:              nonEmpty(r.Status),
		})
	}

	for _, d := range p.IdentityDocuments {
		row, err := identityRow(d)
		if err != nil {
			return Record{}, err
		}
		rec.IdentityDocs = append(rec.IdentityDocs, row)
	}

	for _, role := range slices.Sorted(maps.Keys(p.Assignments)) {
		a := p.Assignments[role]
		row := AssignmentRow{
			ID:             a.ID,
			Role:           role.String(),
			AssignedUserID: a.AssignedUserID,
			AssignedDate:   a.AssignedDate,
			Mode:           a.Mode.String(),
		}
		switch a.Mode {
		case domain.AssignmentAutomatic:
		case domain.AssignmentManual:
			row.AssignedByUserID = ptr(a.AssignedByUserID)
		default:
			return Record{}, &domain.UnmappedVariantError{Union: "assignment mode", Tag: string(a.Mode)}
		}
		rec.Assignments = append(rec.Assignments, row)
	}

	if err := checkKeys("reminder type", p.Reminders, domain.ReminderType.IsValid); err != nil {
		return Record{}, err
	}
	for _, rt := range domain.ReminderTypes {
		r, ok := p.Reminders[rt]
		if !ok {
			continue
		}
		row := ReminderRow{
			ReminderType: rt.String(),
			ReminderID:   r.ID,
			CreatedDate:  r.CreatedDate,
			ReminderDate: r.ReminderDate,
			Status:       r.Status.String(),
		}
		switch r.Status {
		case domain.ReminderPending, domain.ReminderSent:
		case domain.ReminderCancelled:
			row.CancelledDate = r.CancelledDate
		default:
			return Record{}, &domain.UnmappedVariantError{Union: "reminder state", Tag: r.Status.String()}
		}
		rec.Reminders = append(rec.Reminders, row)
	}

	if err := checkKeys("notification type", p.Notifications, domain.NotificationType.IsValid); err != nil {
		return Record{}, err
	}
	for _, nt := range domain.NotificationTypes {
		n, ok := p.Notifications[nt]
		if !ok {
			continue
		}
		row := NotificationRow{
			NotificationType: nt.String(),
			NotificationID:   n.ID,
			NotifiedDate:     n.NotifiedDate,
		}
		if nt.RequiresComment() {
			row.Comment = ptr(n.Comment)
		}
		rec.Notifications = append(rec.Notifications, row)
	}

	return rec, nil
}

// FromRecord rebuilds the aggregate from rec.
func FromRecord(rec Record) (*domain.PreConsultation, error) {
	root := rec.Root

	services, err := readServices(root)
	if err != nil {
		return nil, fmt.Errorf("map services: %w", err)
	}

	p := &domain.PreConsultation{
		ID:              root.ID,
		Version:         root.Version,
		VersionComments: root.VersionComments,
		AuditHistory:    slices.Clone(root.AuditHistory),
		CaseReference:   root.CaseReference,
		InquiryID:       root.InquiryID,
		Services:        services,
	}

	if root.PaymentReferenceID != nil {
		p.PaymentReference = &domain.PaymentReference{ID: *root.PaymentReferenceID}
	}

	if root.ReviewState != nil {
		state := domain.ReviewState(*root.ReviewState)
		if !state.IsValid() {
			return nil, &domain.UnmappedVariantError{Union: "review state", Tag: *root.ReviewState}
		}
		reviewer := domain.ReviewerRole(deref(root.Reviewer))
		if !reviewer.IsValid() {
			return nil, &domain.UnmappedVariantError{Union: "reviewer role", Tag: reviewer.String()}
		}
		p.ReviewStatus = &domain.ReviewStatus{
			Reviewer:   reviewer,
			ReviewerID: deref(root.ReviewerID),
			State:      state,
			ReviewDate: deref(root.ReviewDate),
		}
		if state == domain.ReviewRejected {
			p.ReviewStatus.Comments = deref(root.ReviewComments)
		}
	}

	for _, r := range rec.Reports {
		category := domain.ReportCategory(r.Category)
		if !category.IsValid() {
			return nil, &domain.UnmappedVariantError{Union: "report category", Tag: r.Category}
		}
		p.MedicalReports = append(p.MedicalReports, domain.MedicalReport{
			ID:                  r.ReportID,
			Category:            category,
			ReportType:          r.ReportType,
			Description:         deref(r.Description),
			TakenDate:           r.TakenDate,
			ReferenceDocumentID: deref(r.ReferenceDocumentID),
			Status:              deref(r.Status),
		})
	}

	for _, row := range rec.IdentityDocs {
		d, err := identityDocument(row)
		if err != nil {
			return nil, err
		}
		p.IdentityDocuments = append(p.IdentityDocuments, d)
	}

	for _, row := range rec.Assignments {
		role := domain.AssignmentRole(row.Role)
		if !role.IsValid() {
			return nil, &domain.UnmappedVariantError{Union: "assignment role", Tag: row.Role}
		}
		a := domain.Assignment{
			ID:             row.ID,
			Role:           role,
			AssignedUserID: row.AssignedUserID,
			AssignedDate:   row.AssignedDate,
			Mode:           domain.AssignmentMode(row.Mode),
		}
		switch a.Mode {
		case domain.AssignmentAutomatic:
		case domain.AssignmentManual:
			a.AssignedByUserID = deref(row.AssignedByUserID)
		default:
			return nil, &domain.UnmappedVariantError{Union: "assignment mode", Tag: row.Mode}
		}
		if p.Assignments == nil {
			p.Assignments = make(map[domain.AssignmentRole]domain.Assignment, len(rec.Assignments))
		}
		p.Assignments[role] = a
	}

	for _, row := range rec.Reminders {
		rt := domain.ReminderType(row.ReminderType)
		if !rt.IsValid() {
			return nil, &domain.UnmappedVariantError{Union: "reminder type", Tag: row.ReminderType}
		}
		r := domain.Reminder{
			ID:           row.ReminderID,
			Type:         rt,
			CreatedDate:  row.CreatedDate,
			ReminderDate: row.ReminderDate,
			Status:       domain.ReminderState(row.Status),
		}
		switch r.Status {
		case domain.ReminderPending, domain.ReminderSent:
		case domain.ReminderCancelled:
			r.CancelledDate = row.CancelledDate
		default:
			return nil, &domain.UnmappedVariantError{Union: "reminder state", Tag: row.Status}
		}
		if p.Reminders == nil {
			p.Reminders = make(map[domain.ReminderType]domain.Reminder, len(rec.Reminders))
		}
		p.Reminders[rt] = r
	}

	for _, row := range rec.Notifications {
		nt := domain.NotificationType(row.NotificationType)
		if !nt.IsValid() {
			return nil, &domain.UnmappedVariantError{Union: "notification type", Tag: row.NotificationType}
		}
		n := domain.Notification{
			Type:         nt,
			ID:           row.NotificationID,
			NotifiedDate: row.NotifiedDate,
		}
		if nt.RequiresComment() {
			n.Comment = deref(row.Comment)
		}
		if p.Notifications == nil {
			p.Notifications = make(map[domain.NotificationType]domain.Notification, len(rec.Notifications))
		}
		p.Notifications[nt] = n
	}

	return p, nil
}

func identityRow(d domain.IdentityDocument) (IdentityDoc, error) {
	row := IdentityDoc{
		DocumentID:          d.ID,
		ReferenceDocumentID: nonEmpty(d.ReferenceDocumentID),
		Status:              nonEmpty(d.Status),
	}

	switch id := d.Identification.(type) {
	case domain.AadhaarCard:
		row.AadhaarNumber = ptr(id.AadhaarNumber)
	case domain.Passport:
		row.PassportNumber = ptr(id.PassportNumber)
	case domain.DrivingLicense:
		row.DrivingLicenseNumber = ptr(id.DrivingLicenseNumber)
	case domain.OtherIdentification:
		row.OtherName = ptr(id.Name)
		row.OtherNumber = ptr(id.IDNumber)
	default:
		return IdentityDoc{}, &domain.UnmappedVariantError{Union: "identity document", Tag: fmt.Sprintf("%T", d.Identification)}
	}
	row.IdentityType = d.Identification.Type().String()

	return row, nil
}

func identityDocument(row IdentityDoc) (domain.IdentityDocument, error) {
	d := domain.IdentityDocument{
		ID:                  row.DocumentID,
		ReferenceDocumentID: deref(row.ReferenceDocumentID),
		Status:              deref(row.Status),
	}

	switch domain.IdentityDocumentType(row.IdentityType) {
	case domain.IdentityAadhaarCard:
		d.Identification = domain.AadhaarCard{AadhaarNumber: deref(row.AadhaarNumber)}
	case domain.IdentityPassport:
		d.Identification = domain.Passport{PassportNumber: deref(row.PassportNumber)}
	case domain.IdentityDrivingLicense:
		d.Identification = domain.DrivingLicense{DrivingLicenseNumber: deref(row.DrivingLicenseNumber)}
	case domain.IdentityOther:
		d.Identification = domain.OtherIdentification{Name: deref(row.OtherName), IDNumber: deref(row.OtherNumber)}
	default:
		return domain.IdentityDocument{}, &domain.UnmappedVariantError{Union: "identity document", Tag: row.IdentityType}
	}

	return d, nil
}

// checkKeys rejects map keys outside the closed enum.
func checkKeys[K ~string, V any](union string, m map[K]V, valid func(K) bool) error {
	for k := range m {
		if !valid(k) {
			return &domain.UnmappedVariantError{Union: union, Tag: string(k)}
		}
	}
	return nil
}
