package domain

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Service is a closed union of the services a patient can select. Each
// variant carries only the fields legal for its tag.
type Service interface {
	Name() ServiceName
	isService()
}

// ConsultationDetails are the options shared by video and written consultations.
type ConsultationDetails struct {
	PreferredPhysicianName string
	SupplementaryServices  []SupplementaryService
	IsMultiMdConsult       bool
}

type VideoConsultation struct {
	ConsultationDetails
}

type WrittenConsultation struct {
	ConsultationDetails
}

type RadiologyReview struct{}

// TravelToRemoteSite is travel to the partner hospital. It cannot be
// combined with any other service.
type TravelToRemoteSite struct{}

type PathologyReview struct {
	SlideType SlideType
}

func (VideoConsultation) Name() ServiceName   { return ServiceVideoConsultation }
func (WrittenConsultation) Name() ServiceName { return ServiceWrittenConsultation }
func (RadiologyReview) Name() ServiceName     { return ServiceRadiologyReview }
func (TravelToRemoteSite) Name() ServiceName  { return ServiceTravelToRemoteSite }
func (PathologyReview) Name() ServiceName     { return ServicePathologyReview }

func (VideoConsultation) isService()   {}
func (WrittenConsultation) isService() {}
func (RadiologyReview) isService()     {}
func (TravelToRemoteSite) isService()  {}
func (PathologyReview) isService()     {}

// ---------------------------------------------------------------------------
// Slide types
// ---------------------------------------------------------------------------

// SlideType is the slide material sent for a pathology review. Pathology
// returns nil for NoSlides.
type SlideType interface {
	Kind() SlideTypeKind
	Pathology() PathologyType
	isSlideType()
}

type StainedSlides struct {
	PathologyType StandardPathology
}

type UnstainedSlides struct {
	PathologyType ExtensivePathology
}

type PathologyBlock struct {
	PathologyType ExtensivePathology
}

type UnstainedSlidesAndBlock struct {
	PathologyType ExtensivePathology
}

// StainedSlidesAndBlock accepts either pathology type.
type StainedSlidesAndBlock struct {
	PathologyType PathologyType
}

type NoSlides struct{}

func (StainedSlides) Kind() SlideTypeKind           { return SlideStained }
func (UnstainedSlides) Kind() SlideTypeKind         { return SlideUnstained }
func (PathologyBlock) Kind() SlideTypeKind          { return SlidePathologyBlock }
func (UnstainedSlidesAndBlock) Kind() SlideTypeKind { return SlideUnstainedAndBlock }
func (StainedSlidesAndBlock) Kind() SlideTypeKind   { return SlideStainedAndBlock }
func (NoSlides) Kind() SlideTypeKind                { return SlideNone }

func (s StainedSlides) Pathology() PathologyType           { return s.PathologyType }
func (s UnstainedSlides) Pathology() PathologyType         { return s.PathologyType }
func (s PathologyBlock) Pathology() PathologyType          { return s.PathologyType }
func (s UnstainedSlidesAndBlock) Pathology() PathologyType { return s.PathologyType }
func (s StainedSlidesAndBlock) Pathology() PathologyType   { return s.PathologyType }
func (NoSlides) Pathology() PathologyType                  { return nil }

func (StainedSlides) isSlideType()           {}
func (UnstainedSlides) isSlideType()         {}
func (PathologyBlock) isSlideType()          {}
func (UnstainedSlidesAndBlock) isSlideType() {}
func (StainedSlidesAndBlock) isSlideType()   {}
func (NoSlides) isSlideType()                {}

// ---------------------------------------------------------------------------
// Pathology types and courier details
// ---------------------------------------------------------------------------

// PathologyType selects the pathology depth and how the specimen travels.
type PathologyType interface {
	Kind() PathologyKind
	Courier() CourierDetails
	isPathologyType()
}

// StandardPathology only supports self courier.
type StandardPathology struct {
	CourierDetails SelfCourier
}

type ExtensivePathology struct {
	CourierDetails CourierDetails
}

func (StandardPathology) Kind() PathologyKind  { return PathologyStandard }
func (ExtensivePathology) Kind() PathologyKind { return PathologyExtensive }

func (p StandardPathology) Courier() CourierDetails  { return p.CourierDetails }
func (p ExtensivePathology) Courier() CourierDetails { return p.CourierDetails }

func (StandardPathology) isPathologyType()  {}
func (ExtensivePathology) isPathologyType() {}

// CourierDetails is either a self courier with tracking and contact fields
// or a pick-up assistance with a collection point. Never both.
type CourierDetails interface {
	Type() CourierType
	isCourierDetails()
}

type SelfCourier struct {
	TrackingID         string
	ContactPersonName  string
	ContactPersonPhone string
}

type PickUpAssistance struct {
	CollectSpecimenFrom SpecimenLocation
}

func (SelfCourier) Type() CourierType      { return CourierSelf }
func (PickUpAssistance) Type() CourierType { return CourierPickUpAssistance }

func (SelfCourier) isCourierDetails()      {}
func (PickUpAssistance) isCourierDetails() {}

// ---------------------------------------------------------------------------
// Rules
// ---------------------------------------------------------------------------

// ValidateServiceCombination enforces the service combination rules: travel
// stands alone, and video and written consultations exclude each other.
func ValidateServiceCombination(services []Service) error {
	names := ServiceNames(services)

	travelCombined := slices.Contains(names, ServiceTravelToRemoteSite) && len(names) > 1
	bothConsults := slices.Contains(names, ServiceVideoConsultation) && slices.Contains(names, ServiceWrittenConsultation)

	if travelCombined || bothConsults {
		return NewInvariantError(CodeServiceCombination,
			"The selected services are not allowed together. Please check the service combinations.")
	}
	return nil
}

// ServiceNames returns the discriminants of services in order.
func ServiceNames(services []Service) []ServiceName {
	names := make([]ServiceName, len(services))
	for i, s := range services {
		names[i] = s.Name()
	}
	return names
}

// ConsultationOf returns the consultation options of the first video or
// written consultation in services.
func ConsultationOf(services []Service) (ConsultationDetails, bool) {
	for _, s := range services {
		switch v := s.(type) {
		case VideoConsultation:
			return v.ConsultationDetails, true
		case WrittenConsultation:
			return v.ConsultationDetails, true
		}
	}
	return ConsultationDetails{}, false
}

// PathologyReviewOf returns the pathology review in services, if any.
func PathologyReviewOf(services []Service) (PathologyReview, bool) {
	for _, s := range services {
		if v, ok := s.(PathologyReview); ok {
			return v, true
		}
	}
	return PathologyReview{}, false
}

var (
	htmlTagRe = regexp.MustCompile(`<[^>]*>`)
	phoneRe   = regexp.MustCompile(`^\+?[1-9][0-9]{6,14}$`)
)

// HasHTMLTags reports whether s contains markup.
func HasHTMLTags(s string) bool { return htmlTagRe.MatchString(s) }

// ValidPhone reports whether s looks like an international phone number.
// Spaces and dashes are ignored.
func ValidPhone(s string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(s)
	return phoneRe.MatchString(cleaned)
}

// ServiceFieldErrors checks the structural rules of a single service and
// returns one FieldError per problem, prefixed with field.
func ServiceFieldErrors(field string, s Service) []FieldError {
	var errs []FieldError

	switch v := s.(type) {
	case VideoConsultation:
		errs = append(errs, consultationErrors(field, v.ConsultationDetails)...)
	case WrittenConsultation:
		errs = append(errs, consultationErrors(field, v.ConsultationDetails)...)
	case RadiologyReview, TravelToRemoteSite:
	case PathologyReview:
		errs = append(errs, slideTypeErrors(field+".slideType", v.SlideType)...)
	case nil:
		errs = append(errs, FieldError{Field: field, Message: "required"})
	default:
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("unsupported service %T", s)})
	}

	return errs
}

func consultationErrors(field string, c ConsultationDetails) []FieldError {
	var errs []FieldError
	if HasHTMLTags(c.PreferredPhysicianName) {
		errs = append(errs, FieldError{Field: field + ".preferredPhysicianName", Message: "must not contain HTML"})
	}
	for i, s := range c.SupplementaryServices {
		if !s.IsValid() {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("%s.supplementaryServices[%d]", field, i),
				Message: fmt.Sprintf("unknown supplementary service %q", s),
			})
		}
	}
	return errs
}

func slideTypeErrors(field string, st SlideType) []FieldError {
	if st == nil {
		return []FieldError{{Field: field, Message: "required"}}
	}
	if st.Kind() == SlideNone {
		return nil
	}

	p := st.Pathology()
	if p == nil {
		return []FieldError{{Field: field + ".pathologyType", Message: "required"}}
	}

	courier := p.Courier()
	field += ".pathologyType.courierDetails"

	switch c := courier.(type) {
	case SelfCourier:
		var errs []FieldError
		if strings.TrimSpace(c.TrackingID) == "" || HasHTMLTags(c.TrackingID) {
			errs = append(errs, FieldError{Field: field + ".trackingId", Message: "required, no HTML"})
		}
		if strings.TrimSpace(c.ContactPersonName) == "" || HasHTMLTags(c.ContactPersonName) {
			errs = append(errs, FieldError{Field: field + ".contactPersonName", Message: "required, no HTML"})
		}
		if !ValidPhone(c.ContactPersonPhone) {
			errs = append(errs, FieldError{Field: field + ".contactPersonPhone", Message: "invalid phone number"})
		}
		return errs
	case PickUpAssistance:
		if !c.CollectSpecimenFrom.IsValid() {
			return []FieldError{{Field: field + ".collectSpecimenFrom", Message: "must be LOCATION or HOSPITAL"}}
		}
		return nil
	case nil:
		return []FieldError{{Field: field, Message: "required"}}
	}

	return []FieldError{{Field: field, Message: fmt.Sprintf("unsupported courier %T", courier)}}
}
