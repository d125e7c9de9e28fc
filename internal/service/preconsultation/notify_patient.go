package preconsultation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
	"github.com/heartmarshall/preconsultation-backend/internal/pipeline"
)

// variablePrefix namespaces template keys in the notification payload.
const variablePrefix = "PreConsultation."

// NotifyPatient sends the service-selection notification to the patient's
// primary email and records it on the aggregate.
func (s *Service) NotifyPatient(ctx context.Context, input NotifyPatientInput) (*CommandResult, error) {
	caller, err := callerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.notifyPt.Execute(ctx, input, caller)
	if err != nil {
		return nil, err
	}
	return toCommandResult(res), nil
}

func (s *Service) createPatientNotified(ctx context.Context, req pipeline.Request[NotifyPatientInput]) (domain.Event, error) {
	var (
		c        *domain.Case
		template *domain.NotificationTemplate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = s.cases.GetCase(gctx, req.Command.CaseReference)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError(domain.CodeAggregateNotFound,
				fmt.Sprintf("case %s not found", req.Command.CaseReference))
		}
		if err != nil {
			return external(domain.CodeCaseRegistryFailure, "case registry", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		template, err = s.templates.GetTemplate(gctx, domain.NotifyServiceToPatient)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewExternalServiceError(domain.CodeTemplateNotFound, "notification template", err)
		}
		if err != nil {
			return external(domain.CodeTemplateFailure, "notification template", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(c.PatientEmail) == "" {
		return nil, domain.NewExternalServiceError(domain.CodeCaseRegistryFailure, "case registry",
			fmt.Errorf("case %s has no patient email", req.Command.CaseReference))
	}

	now := req.Meta.CreatedAt
	notificationID, err := s.notify.Send(ctx, domain.NotificationRequest{
		Type:          domain.NotifyServiceToPatient,
		AggregateID:   req.Current.ID.String(),
		CreatedBy:     req.Meta.CreatedBy,
		Description:   req.Meta.Comments,
		Recipients:    []string{c.PatientEmail},
		Subject:       template.Subject,
		Body:          template.Body,
		Variables:     templateVariables(req.Current, template.Keys),
		ScheduledDate: now.AddDate(0, 0, template.DaySchedule),
	})
	if err != nil {
		return nil, external(domain.CodeNotificationFailure, "notification service", err)
	}

	s.log.InfoContext(ctx, "patient notified",
		slog.String("aggregate_id", req.Current.ID.String()),
		slog.String("notification_id", notificationID),
		slog.String("type", domain.NotifyServiceToPatient.String()),
	)

	return domain.PatientNotified{
		EventMeta: req.Meta,
		Notification: domain.Notification{
			Type:         domain.NotifyServiceToPatient,
			ID:           notificationID,
			NotifiedDate: now,
		},
	}, nil
}

// templateVariables resolves each template key against the aggregate.
// Unknown keys resolve to an empty string.
func templateVariables(p *domain.PreConsultation, keys []string) map[string]string {
	vars := make(map[string]string, len(keys))
	for _, key := range keys {
		vars["{"+variablePrefix+key+"}"] = fieldValue(p, key)
	}
	return vars
}

func fieldValue(p *domain.PreConsultation, key string) string {
	switch key {
	case "id":
		return p.ID.String()
	case "version":
		return strconv.Itoa(p.Version)
	case "caseReference", "IRN":
		return p.CaseReference
	case "inquiryId":
		return p.InquiryID
	case "services":
		names := domain.ServiceNames(p.Services)
		parts := make([]string, len(names))
		for i, n := range names {
			parts[i] = n.String()
		}
		return strings.Join(parts, ", ")
	case "primaryConsultationService":
		return p.PrimaryService().String()
	case "preferredPhysicianName":
		if c, ok := domain.ConsultationOf(p.Services); ok {
			return c.PreferredPhysicianName
		}
	case "assignedMoUserId":
		if a, ok := p.Assignment(domain.RoleReviewingOfficer); ok {
			return a.AssignedUserID
		}
	}
	return ""
}
