package domain

import "time"

// Case is the external case (inquiry) a pre-consultation belongs to, as
// reported by the case registry.
type Case struct {
	Reference     string
	InquiryID     string
	Status        CaseStatus
	CreatorType   CreatorType
	CreatorUserID string
	PatientUserID string
	PatientEmail  string
	AssignedUsers []CaseAssignee
}

// CaseAssignee is a user assigned to the case under an IAM role.
type CaseAssignee struct {
	Role   CallerRole
	UserID string
}

// IsActive reports whether the case still accepts work.
func (c Case) IsActive() bool { return c.Status == CaseActive }

// AssignedUser returns the user assigned to the case for role.
func (c Case) AssignedUser(role CallerRole) (string, bool) {
	for _, a := range c.AssignedUsers {
		if a.Role == role {
			return a.UserID, true
		}
	}
	return "", false
}

// NotificationTemplate is a message template served by the notification
// service. Keys name the aggregate fields substituted into the body.
type NotificationTemplate struct {
	Type        NotificationType `json:"type"`
	Subject     string           `json:"subject"`
	Body        string           `json:"body"`
	Keys        []string         `json:"keys"`
	DaySchedule int              `json:"daySchedule"`
}

// NotificationRequest is one message handed to the notification service.
type NotificationRequest struct {
	Type          NotificationType
	AggregateID   string
	CreatedBy     string
	Description   string
	Recipients    []string
	Subject       string
	Body          string
	Variables     map[string]string
	ScheduledDate time.Time
}
