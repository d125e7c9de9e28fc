package gateway

import "time"

type caseResponse struct {
	CaseReference       string         `json:"caseReference"`
	InquiryID           string         `json:"inquiryId"`
	Status              string         `json:"status"`
	CreatorType         string         `json:"creatorType"`
	CreatorUserID       string         `json:"creatorUserId"`
	PatientUserID       string         `json:"patientUserId"`
	PatientPrimaryEmail string         `json:"patientPrimaryEmail"`
	AssignedUsers       []assigneeJSON `json:"assignedUsers"`
}

type assigneeJSON struct {
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

type caseReferencesJSON struct {
	CaseReferences []string `json:"caseReferences"`
}

type usersResponse struct {
	Users []struct {
		UserID string `json:"userId"`
	} `json:"users"`
}

type notificationRequest struct {
	NotificationType string            `json:"notificationType"`
	AggregateID      string            `json:"aggregateId"`
	CreatedBy        string            `json:"createdBy"`
	Description      string            `json:"description"`
	Recipients       []string          `json:"recipients"`
	Subject          string            `json:"subject"`
	Body             string            `json:"body"`
	Variables        map[string]string `json:"staticVariables"`
	ScheduledDate    time.Time         `json:"scheduledDate"`
}

type notificationResponse struct {
	NotificationID string `json:"notificationId"`
}
