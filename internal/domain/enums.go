package domain

import "slices"

// ServiceName is the discriminant of the Service union.
type ServiceName string

const (
	ServiceVideoConsultation   ServiceName = "VIDEO_CONSULTATION"
	ServiceWrittenConsultation ServiceName = "WRITTEN_CONSULTATION"
	ServicePathologyReview     ServiceName = "PATHOLOGY_REVIEW"
	ServiceRadiologyReview     ServiceName = "RADIOLOGY_REVIEW"
	ServiceTravelToRemoteSite  ServiceName = "TRAVEL_TO_MSK_NEW_YORK"
)

func (n ServiceName) String() string { return string(n) }

func (n ServiceName) IsValid() bool {
	switch n {
	case ServiceVideoConsultation, ServiceWrittenConsultation, ServicePathologyReview,
		ServiceRadiologyReview, ServiceTravelToRemoteSite:
		return true
	}
	return false
}

// SupplementaryService is an add-on to a video or written consultation.
type SupplementaryService string

const (
	SupplementaryOncologyPainManagement SupplementaryService = "ONCOLOGY_PAIN_MANAGEMENT"
	SupplementaryIntegrativeMedicine    SupplementaryService = "INTEGRATIVE_MEDICINE"
)

func (s SupplementaryService) String() string { return string(s) }

func (s SupplementaryService) IsValid() bool {
	switch s {
	case SupplementaryOncologyPainManagement, SupplementaryIntegrativeMedicine:
		return true
	}
	return false
}

// SlideTypeKind is the discriminant of the SlideType union.
type SlideTypeKind string

const (
	SlideStained           SlideTypeKind = "STAINED_SLIDES"
	SlideUnstained         SlideTypeKind = "UNSTAINED_SLIDES"
	SlidePathologyBlock    SlideTypeKind = "PATHOLOGY_BLOCK"
	SlideUnstainedAndBlock SlideTypeKind = "UNSTAINED_SLIDES_AND_PATHOLOGY_BLOCK"
	SlideStainedAndBlock   SlideTypeKind = "STAINED_SLIDES_AND_PATHOLOGY_BLOCK"
	SlideNone              SlideTypeKind = "NONE"
)

func (k SlideTypeKind) String() string { return string(k) }

// PathologyKind is the discriminant of the PathologyType union.
type PathologyKind string

const (
	PathologyStandard  PathologyKind = "STANDARD_PATHOLOGY"
	PathologyExtensive PathologyKind = "EXTENSIVE_PATHOLOGY"
)

func (k PathologyKind) String() string { return string(k) }

// CourierType is the discriminant of the CourierDetails union.
type CourierType string

const (
	CourierSelf             CourierType = "SELF_COURIER"
	CourierPickUpAssistance CourierType = "PICK_UP_ASSISTANCE"
)

func (c CourierType) String() string { return string(c) }

// SpecimenLocation is where a pick-up courier collects the specimen.
type SpecimenLocation string

const (
	SpecimenFromLocation SpecimenLocation = "LOCATION"
	SpecimenFromHospital SpecimenLocation = "HOSPITAL"
)

func (l SpecimenLocation) String() string { return string(l) }

func (l SpecimenLocation) IsValid() bool {
	switch l {
	case SpecimenFromLocation, SpecimenFromHospital:
		return true
	}
	return false
}

// ReportCategory classifies an uploaded medical report.
type ReportCategory string

const (
	ReportLabReports      ReportCategory = "LAB_REPORTS"
	ReportRadiologyImages ReportCategory = "RADIOLOGY_IMAGES"
)

func (c ReportCategory) String() string { return string(c) }

func (c ReportCategory) IsValid() bool {
	switch c {
	case ReportLabReports, ReportRadiologyImages:
		return true
	}
	return false
}

// IdentityDocumentType is the discriminant of the IdentityDocument union.
type IdentityDocumentType string

const (
	IdentityAadhaarCard    IdentityDocumentType = "AADHAAR_CARD"
	IdentityPassport       IdentityDocumentType = "PASSPORT"
	IdentityDrivingLicense IdentityDocumentType = "DRIVING_LICENSE"
	IdentityOther          IdentityDocumentType = "OTHER"
)

func (t IdentityDocumentType) String() string { return string(t) }

// AssignmentRole keys the assignment map. Only one role exists today.
type AssignmentRole string

const (
	RoleReviewingOfficer AssignmentRole = "MO"
)

func (r AssignmentRole) String() string { return string(r) }

func (r AssignmentRole) IsValid() bool { return r == RoleReviewingOfficer }

// AssignmentMode records how an assignment was made.
type AssignmentMode string

const (
	AssignmentAutomatic AssignmentMode = "AUTOMATIC"
	AssignmentManual    AssignmentMode = "MANUAL"
)

func (m AssignmentMode) String() string { return string(m) }

func (m AssignmentMode) IsValid() bool {
	return m == AssignmentAutomatic || m == AssignmentManual
}

// ReviewerRole is the role that reviewed the pre-consultation.
type ReviewerRole string

const (
	ReviewerCMO ReviewerRole = "CMO"
	ReviewerHMT ReviewerRole = "HMT"
	ReviewerMO  ReviewerRole = "MO"
)

func (r ReviewerRole) String() string { return string(r) }

func (r ReviewerRole) IsValid() bool {
	switch r {
	case ReviewerCMO, ReviewerHMT, ReviewerMO:
		return true
	}
	return false
}

// ReviewState is the outcome of a review.
type ReviewState string

const (
	ReviewApproved ReviewState = "APPROVED"
	ReviewRejected ReviewState = "REJECTED"
)

func (s ReviewState) String() string { return string(s) }

func (s ReviewState) IsValid() bool {
	return s == ReviewApproved || s == ReviewRejected
}

// ReminderType keys the reminder map.
type ReminderType string

const (
	ReminderServiceSelectionPatient   ReminderType = "SERVICE_SELECTION_REMINDER_FOR_PATIENT"
	ReminderServiceSelectionClient    ReminderType = "SERVICE_SELECTION_REMINDER_FOR_CLIENT"
	ReminderCourierSlidesPatient      ReminderType = "COURIER_SAMPLE_SLIDES_REMINDER_FOR_PATIENT"
	ReminderCourierSlidesClient       ReminderType = "COURIER_SAMPLE_SLIDES_REMINDER_FOR_CLIENT"
	ReminderMedicalReportsPatient     ReminderType = "MEDICAL_REPORTS_REMINDER_FOR_PATIENT"
	ReminderMedicalReportsClient      ReminderType = "MEDICAL_REPORTS_REMINDER_FOR_CLIENT"
	ReminderGovtIdentificationPatient ReminderType = "GOVT_IDENTIFICATION_REMINDER_FOR_PATIENT"
	ReminderGovtIdentificationClient  ReminderType = "GOVT_IDENTIFICATION_REMINDER_FOR_CLIENT"
)

// ReminderTypes lists every reminder type in declaration order.
var ReminderTypes = []ReminderType{
	ReminderServiceSelectionPatient,
	ReminderServiceSelectionClient,
	ReminderCourierSlidesPatient,
	ReminderCourierSlidesClient,
	ReminderMedicalReportsPatient,
	ReminderMedicalReportsClient,
	ReminderGovtIdentificationPatient,
	ReminderGovtIdentificationClient,
}

func (t ReminderType) String() string { return string(t) }

func (t ReminderType) IsValid() bool { return slices.Contains(ReminderTypes, t) }

// ReminderState is the delivery state of a reminder.
type ReminderState string

const (
	ReminderPending   ReminderState = "PENDING"
	ReminderSent      ReminderState = "SENT"
	ReminderCancelled ReminderState = "CANCELLED"
)

func (s ReminderState) String() string { return string(s) }

func (s ReminderState) IsValid() bool {
	switch s {
	case ReminderPending, ReminderSent, ReminderCancelled:
		return true
	}
	return false
}

// NotificationType keys the notification map. PAMENT_GATEWAY_APPROVED_TO_IRT
// keeps the spelling stored by existing deployments.
type NotificationType string

const (
	NotifyMOAssignmentToHMTAndCMO              NotificationType = "MO_ASSIGNMENT_TO_HMT_AND_CMO"
	NotifyInquiryApprovalToClient              NotificationType = "INQUIRY_APPROVAL_TO_CLIENT"
	NotifyPricingBrochureToPatient             NotificationType = "PRICING_BROCHURE_TO_PATIENT"
	NotifyPhysicianPreferenceToPMC             NotificationType = "PHYSICIAN_PREFERENCE_TO_PMC"
	NotifyUploadedReportsToPMC                 NotificationType = "UPLOADED_REPORTS_TO_PMC"
	NotifyUploadedPatientGovtIDToPMC           NotificationType = "UPLOADED_PATIENT_GOVT_ID_TO_PMC"
	NotifyPatientGovtIDVerifiedToPMC           NotificationType = "PATIENT_GOVT_ID_VERIFIED_TO_PMC"
	NotifyPatientGovtIDVerifiedToPatient       NotificationType = "PATIENT_GOVT_ID_VERIFIED_TO_PATIENT"
	NotifyInquiryApprovedByMOToPatient         NotificationType = "INQUIRY_APPROVED_BY_MO_TO_PATIENT"
	NotifyInquiryApprovedByMOToClient          NotificationType = "INQUIRY_APPROVED_BY_MO_TO_CLIENT"
	NotifyProBonoPaymentToClient               NotificationType = "PRO_BONO_PAYMENT_TO_CLIENT"
	NotifyProBonoPaymentApprovedToPatient      NotificationType = "PRO_BONO_PAYMENT_APPROVED_TO_PATIENT"
	NotifyProBonoPaymentApprovedToClient       NotificationType = "PRO_BONO_PAYMENT_APPROVED_TO_CLIENT"
	NotifyProBonoPaymentApprovedToIRT          NotificationType = "PRO_BONO_PAYMENT_APPROVED_TO_IRT"
	NotifyServiceToPatient                     NotificationType = "NOTIFICATION_SERVICE_TO_PATIENT"
	NotifyWireTransferPaymentToClient          NotificationType = "WIRE_TRANSFER_PAYMENT_TO_CLIENT"
	NotifyWireTransferPaymentToNewYorkTeam     NotificationType = "WIRE_TRANSFER_PAYMENT_TO_NEWYORK_TEAM"
	NotifyWireTransferPaymentApprovedToPatient NotificationType = "WIRE_TRANSFER_PAYMENT_APPROVED_TO_PATIENT"
	NotifyWireTransferPaymentApprovedToClient  NotificationType = "WIRE_TRANSFER_PAYMENT_APPROVED_TO_CLIENT"
	NotifyWireTransferPaymentApprovedToIRT     NotificationType = "WIRE_TRANSFER_PAYMENT_APPROVED_TO_IRT"
	NotifyPaymentGatewayApprovedToPatient      NotificationType = "PAYMENT_GATEWAY_APPROVED_TO_PATIENT"
	NotifyPaymentGatewayApprovedToClient       NotificationType = "PAYMENT_GATEWAY_APPROVED_TO_CLIENT"
	NotifyPaymentGatewayApprovedToIRT          NotificationType = "PAMENT_GATEWAY_APPROVED_TO_IRT"

	NotifyPatientGovtIDRejectedToPMC           NotificationType = "PATIENT_GOVT_ID_REJECTED_TO_PMC"
	NotifyPatientGovtIDRejectedToPatient       NotificationType = "PATIENT_GOVT_ID_REJECTED_TO_PATIENT"
	NotifyInquiryRejectedByMOToPatient         NotificationType = "INQUIRY_REJECTED_BY_MO_TO_PATIENT"
	NotifyInquiryRejectedByMOToClient          NotificationType = "INQUIRY_REJECTED_BY_MO_TO_CLIENT"
	NotifyProBonoPaymentRejectedToPatient      NotificationType = "PRO_BONO_PAYMENT_REJECTED_TO_PATIENT"
	NotifyProBonoPaymentRejectedToClient       NotificationType = "PRO_BONO_PAYMENT_REJECTED_TO_CLIENT"
	NotifyWireTransferPaymentRejectedToPatient NotificationType = "WIRE_TRANSFER_PAYMENT_REJECTED_TO_PATIENT"
	NotifyWireTransferPaymentRejectedToClient  NotificationType = "WIRE_TRANSFER_PAYMENT_REJECTED_TO_CLIENT"
	NotifyPaymentGatewayRejectedToPatient      NotificationType = "PAYMENT_GATEWAY_REJECTED_TO_PATIENT"
	NotifyPaymentGatewayRejectedToClient       NotificationType = "PAYMENT_GATEWAY_REJECTED_TO_CLIENT"
)

// NotificationTypes lists every notification type. Types after the
// approval set are rejection notices and carry a comment.
var NotificationTypes = []NotificationType{
	NotifyMOAssignmentToHMTAndCMO,
	NotifyInquiryApprovalToClient,
	NotifyPricingBrochureToPatient,
	NotifyPhysicianPreferenceToPMC,
	NotifyUploadedReportsToPMC,
	NotifyUploadedPatientGovtIDToPMC,
	NotifyPatientGovtIDVerifiedToPMC,
	NotifyPatientGovtIDVerifiedToPatient,
	NotifyInquiryApprovedByMOToPatient,
	NotifyInquiryApprovedByMOToClient,
	NotifyProBonoPaymentToClient,
	NotifyProBonoPaymentApprovedToPatient,
	NotifyProBonoPaymentApprovedToClient,
	NotifyProBonoPaymentApprovedToIRT,
	NotifyServiceToPatient,
	NotifyWireTransferPaymentToClient,
	NotifyWireTransferPaymentToNewYorkTeam,
	NotifyWireTransferPaymentApprovedToPatient,
	NotifyWireTransferPaymentApprovedToClient,
	NotifyWireTransferPaymentApprovedToIRT,
	NotifyPaymentGatewayApprovedToPatient,
	NotifyPaymentGatewayApprovedToClient,
	NotifyPaymentGatewayApprovedToIRT,
	NotifyPatientGovtIDRejectedToPMC,
	NotifyPatientGovtIDRejectedToPatient,
	NotifyInquiryRejectedByMOToPatient,
	NotifyInquiryRejectedByMOToClient,
	NotifyProBonoPaymentRejectedToPatient,
	NotifyProBonoPaymentRejectedToClient,
	NotifyWireTransferPaymentRejectedToPatient,
	NotifyWireTransferPaymentRejectedToClient,
	NotifyPaymentGatewayRejectedToPatient,
	NotifyPaymentGatewayRejectedToClient,
}

const firstRejectionNotification = 23

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool { return slices.Contains(NotificationTypes, t) }

// RequiresComment reports whether notifications of this type carry a
// rejection comment.
func (t NotificationType) RequiresComment() bool {
	i := slices.Index(NotificationTypes, t)
	return i >= firstRejectionNotification
}

// CallerRole is the IAM role of the caller issuing a command.
type CallerRole string

const (
	CallerCMO    CallerRole = "app_cmo"
	CallerHMT    CallerRole = "app_hmt"
	CallerMO     CallerRole = "app_mo"
	CallerPMC    CallerRole = "app_pmc"
	CallerClient CallerRole = "app_client"
)

func (r CallerRole) String() string { return string(r) }

// IsAdmin reports whether the role is one of the two administrative roles.
func (r CallerRole) IsAdmin() bool { return r == CallerCMO || r == CallerHMT }

// CallerSource distinguishes interactive users from the workflow engine.
type CallerSource string

const (
	SourceUser     CallerSource = "USER"
	SourceWorkflow CallerSource = "WORKFLOW"
)

func (s CallerSource) String() string { return string(s) }

// CaseStatus is the status of the external case (inquiry).
type CaseStatus string

const (
	CaseActive CaseStatus = "ACTIVE"
)

// CreatorType records who opened the external case.
type CreatorType string

const (
	CreatorPatient   CreatorType = "PATIENT"
	CreatorCareGiver CreatorType = "CARE_GIVER"
)
