package rest

import (
	"fmt"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

// serviceJSON is the wire form of one selected service. The name selects
// which of the other fields apply.
type serviceJSON struct {
	Name                   string              `json:"name"`
	PreferredPhysicianName string              `json:"preferredPhysicianName,omitempty"`
	SupplementaryServices  []supplementaryJSON `json:"supplementaryServices,omitempty"`
	IsMultiMdConsult       bool                `json:"isMultiMdConsult,omitempty"`
	SlideType              *slideTypeJSON      `json:"slideType,omitempty"`
}

type supplementaryJSON struct {
	Name string `json:"name"`
}

type slideTypeJSON struct {
	Type          string         `json:"type"`
	PathologyType *pathologyJSON `json:"pathologyType,omitempty"`
}

type pathologyJSON struct {
	Type           string       `json:"type"`
	CourierDetails *courierJSON `json:"courierDetails,omitempty"`
}

type courierJSON struct {
	CourierType         string `json:"courierType"`
	TrackingID          string `json:"trackingId,omitempty"`
	ContactPersonName   string `json:"contactPersonName,omitempty"`
	ContactPersonPhone  string `json:"contactPersonPhone,omitempty"`
	CollectSpecimenFrom string `json:"collectSpecimenFrom,omitempty"`
}

// ---------------------------------------------------------------------------
// Wire to domain
// ---------------------------------------------------------------------------

// toServices decodes the tagged wire services. Unknown tags and variants
// that do not fit their parent are reported per field.
func toServices(in []serviceJSON) ([]domain.Service, []domain.FieldError) {
	var errs []domain.FieldError
	out := make([]domain.Service, 0, len(in))
	for i, s := range in {
		svc, ferrs := s.toDomain(fmt.Sprintf("services[%d]", i))
		errs = append(errs, ferrs...)
		out = append(out, svc)
	}
	return out, errs
}

func (s serviceJSON) toDomain(field string) (domain.Service, []domain.FieldError) {
	switch domain.ServiceName(s.Name) {
	case domain.ServiceVideoConsultation:
		return domain.VideoConsultation{ConsultationDetails: s.consultation()}, nil
	case domain.ServiceWrittenConsultation:
		return domain.WrittenConsultation{ConsultationDetails: s.consultation()}, nil
	case domain.ServiceRadiologyReview:
		return domain.RadiologyReview{}, nil
	case domain.ServiceTravelToRemoteSite:
		return domain.TravelToRemoteSite{}, nil
	case domain.ServicePathologyReview:
		slide, errs := s.SlideType.toDomain(field + ".slideType")
		return domain.PathologyReview{SlideType: slide}, errs
	}
	return nil, []domain.FieldError{{Field: field + ".name", Message: fmt.Sprintf("unknown service %q", s.Name)}}
}

func (s serviceJSON) consultation() domain.ConsultationDetails {
	c := domain.ConsultationDetails{
		PreferredPhysicianName: s.PreferredPhysicianName,
		IsMultiMdConsult:       s.IsMultiMdConsult,
	}
	for _, sup := range s.SupplementaryServices {
		c.SupplementaryServices = append(c.SupplementaryServices, domain.SupplementaryService(sup.Name))
	}
	return c
}

func (s *slideTypeJSON) toDomain(field string) (domain.SlideType, []domain.FieldError) {
	if s == nil {
		return nil, []domain.FieldError{{Field: field, Message: "required"}}
	}

	field += ".pathologyType"
	switch domain.SlideTypeKind(s.Type) {
	case domain.SlideNone:
		return domain.NoSlides{}, nil
	case domain.SlideStained:
		p, errs := s.PathologyType.standard(field)
		return domain.StainedSlides{PathologyType: p}, errs
	case domain.SlideUnstained:
		p, errs := s.PathologyType.extensive(field)
		return domain.UnstainedSlides{PathologyType: p}, errs
	case domain.SlidePathologyBlock:
		p, errs := s.PathologyType.extensive(field)
		return domain.PathologyBlock{PathologyType: p}, errs
	case domain.SlideUnstainedAndBlock:
		p, errs := s.PathologyType.extensive(field)
		return domain.UnstainedSlidesAndBlock{PathologyType: p}, errs
	case domain.SlideStainedAndBlock:
		p, errs := s.PathologyType.either(field)
		return domain.StainedSlidesAndBlock{PathologyType: p}, errs
	}
	return nil, []domain.FieldError{{Field: field, Message: fmt.Sprintf("unknown slide type %q", s.Type)}}
}

func (p *pathologyJSON) standard(field string) (domain.StandardPathology, []domain.FieldError) {
	if p == nil {
		return domain.StandardPathology{}, []domain.FieldError{{Field: field, Message: "required"}}
	}
	if domain.PathologyKind(p.Type) != domain.PathologyStandard {
		return domain.StandardPathology{}, []domain.FieldError{{Field: field + ".type", Message: "must be " + domain.PathologyStandard.String()}}
	}
	courier, errs := p.CourierDetails.toDomain(field + ".courierDetails")
	if len(errs) > 0 {
		return domain.StandardPathology{}, errs
	}
	self, ok := courier.(domain.SelfCourier)
	if !ok {
		return domain.StandardPathology{}, []domain.FieldError{{
			Field:   field + ".courierDetails.courierType",
			Message: "standard pathology only supports " + domain.CourierSelf.String(),
		}}
	}
	return domain.StandardPathology{CourierDetails: self}, nil
}

func (p *pathologyJSON) extensive(field string) (domain.ExtensivePathology, []domain.FieldError) {
	if p == nil {
		return domain.ExtensivePathology{}, []domain.FieldError{{Field: field, Message: "required"}}
	}
	if domain.PathologyKind(p.Type) != domain.PathologyExtensive {
		return domain.ExtensivePathology{}, []domain.FieldError{{Field: field + ".type", Message: "must be " + domain.PathologyExtensive.String()}}
	}
	courier, errs := p.CourierDetails.toDomain(field + ".courierDetails")
	return domain.ExtensivePathology{CourierDetails: courier}, errs
}

func (p *pathologyJSON) either(field string) (domain.PathologyType, []domain.FieldError) {
	if p == nil {
		return nil, []domain.FieldError{{Field: field, Message: "required"}}
	}
	switch domain.PathologyKind(p.Type) {
	case domain.PathologyStandard:
		std, errs := p.standard(field)
		return std, errs
	case domain.PathologyExtensive:
		ext, errs := p.extensive(field)
		return ext, errs
	}
	return nil, []domain.FieldError{{Field: field + ".type", Message: fmt.Sprintf("unknown pathology type %q", p.Type)}}
}

func (c *courierJSON) toDomain(field string) (domain.CourierDetails, []domain.FieldError) {
	if c == nil {
		return nil, []domain.FieldError{{Field: field, Message: "required"}}
	}
	switch domain.CourierType(c.CourierType) {
	case domain.CourierSelf:
		if c.CollectSpecimenFrom != "" {
			return nil, []domain.FieldError{{Field: field + ".collectSpecimenFrom", Message: "not allowed with " + c.CourierType}}
		}
		return domain.SelfCourier{
			TrackingID:         c.TrackingID,
			ContactPersonName:  c.ContactPersonName,
			ContactPersonPhone: c.ContactPersonPhone,
		}, nil
	case domain.CourierPickUpAssistance:
		var errs []domain.FieldError
		for _, f := range [...]struct{ name, value string }{
			{"trackingId", c.TrackingID},
			{"contactPersonName", c.ContactPersonName},
			{"contactPersonPhone", c.ContactPersonPhone},
		} {
			if f.value != "" {
				errs = append(errs, domain.FieldError{Field: field + "." + f.name, Message: "not allowed with " + c.CourierType})
			}
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return domain.PickUpAssistance{CollectSpecimenFrom: domain.SpecimenLocation(c.CollectSpecimenFrom)}, nil
	}
	return nil, []domain.FieldError{{Field: field + ".courierType", Message: fmt.Sprintf("unknown courier type %q", c.CourierType)}}
}

// ---------------------------------------------------------------------------
// Domain to wire
// ---------------------------------------------------------------------------

func fromServices(services []domain.Service) []serviceJSON {
	out := make([]serviceJSON, 0, len(services))
	for _, s := range services {
		out = append(out, fromService(s))
	}
	return out
}

func fromService(s domain.Service) serviceJSON {
	out := serviceJSON{Name: s.Name().String()}
	switch v := s.(type) {
	case domain.VideoConsultation:
		out.withConsultation(v.ConsultationDetails)
	case domain.WrittenConsultation:
		out.withConsultation(v.ConsultationDetails)
	case domain.PathologyReview:
		out.SlideType = fromSlideType(v.SlideType)
	}
	return out
}

func (s *serviceJSON) withConsultation(c domain.ConsultationDetails) {
	s.PreferredPhysicianName = c.PreferredPhysicianName
	s.IsMultiMdConsult = c.IsMultiMdConsult
	for _, sup := range c.SupplementaryServices {
		s.SupplementaryServices = append(s.SupplementaryServices, supplementaryJSON{Name: sup.String()})
	}
}

func fromSlideType(st domain.SlideType) *slideTypeJSON {
	if st == nil {
		return nil
	}
	out := &slideTypeJSON{Type: st.Kind().String()}
	if p := st.Pathology(); p != nil {
		out.PathologyType = &pathologyJSON{Type: p.Kind().String()}
		switch c := p.Courier().(type) {
		case domain.SelfCourier:
			out.PathologyType.CourierDetails = &courierJSON{
				CourierType:        c.Type().String(),
				TrackingID:         c.TrackingID,
				ContactPersonName:  c.ContactPersonName,
				ContactPersonPhone: c.ContactPersonPhone,
			}
		case domain.PickUpAssistance:
			out.PathologyType.CourierDetails = &courierJSON{
				CourierType:         c.Type().String(),
				CollectSpecimenFrom: c.CollectSpecimenFrom.String(),
			}
		}
	}
	return out
}
