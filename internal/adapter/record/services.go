package record

import (
	"fmt"

	"github.com/heartmarshall/preconsultation-backend/internal/domain"
)

const (
	unionService   = "service"
	unionSlideType = "slide type"
	unionPathology = "pathology type"
	unionCourier   = "courier type"
	unionSupport   = "supplementary service"
	unionSpecimen  = "specimen location"
)

// writeServices flattens services into root. Consultation and pathology
// columns can hold one variant each because the combination rules forbid a
// second one.
func writeServices(root *Root, services []domain.Service) error {
	root.ServiceNames = make([]string, 0, len(services))

	for _, s := range services {
		switch v := s.(type) {
		case domain.VideoConsultation:
			if err := writeConsultation(root, v.ConsultationDetails); err != nil {
				return err
			}
		case domain.WrittenConsultation:
			if err := writeConsultation(root, v.ConsultationDetails); err != nil {
				return err
			}
		case domain.RadiologyReview, domain.TravelToRemoteSite:
		case domain.PathologyReview:
			if err := writeSlideType(root, v.SlideType); err != nil {
				return err
			}
		default:
			return &domain.UnmappedVariantError{Union: unionService, Tag: fmt.Sprintf("%T", s)}
		}
		root.ServiceNames = append(root.ServiceNames, s.Name().String())
	}

	return nil
}

func writeConsultation(root *Root, c domain.ConsultationDetails) error {
	root.PreferredPhysicianName = nonEmpty(c.PreferredPhysicianName)
	root.IsMultiMdConsult = ptr(c.IsMultiMdConsult)
	root.SupplementaryServices = nil
	for _, s := range c.SupplementaryServices {
		if !s.IsValid() {
			return &domain.UnmappedVariantError{Union: unionSupport, Tag: s.String()}
		}
		root.SupplementaryServices = append(root.SupplementaryServices, s.String())
	}
	return nil
}

func writeSlideType(root *Root, st domain.SlideType) error {
	if st == nil {
		return &domain.UnmappedVariantError{Union: unionSlideType, Tag: "<nil>"}
	}

	var pathology domain.PathologyType
	switch v := st.(type) {
	case domain.StainedSlides:
		pathology = v.PathologyType
	case domain.UnstainedSlides:
		pathology = v.PathologyType
	case domain.PathologyBlock:
		pathology = v.PathologyType
	case domain.UnstainedSlidesAndBlock:
		pathology = v.PathologyType
	case domain.StainedSlidesAndBlock:
		pathology = v.PathologyType
	case domain.NoSlides:
	default:
		return &domain.UnmappedVariantError{Union: unionSlideType, Tag: fmt.Sprintf("%T", st)}
	}
	root.SlideType = ptr(st.Kind().String())

	if pathology == nil {
		return nil
	}
	root.PathologyType = ptr(pathology.Kind().String())

	courier := pathology.Courier()
	if courier == nil {
		return nil
	}
	root.CourierType = ptr(courier.Type().String())

	switch c := courier.(type) {
	case domain.SelfCourier:
		root.TrackingID = ptr(c.TrackingID)
		root.ContactPersonName = ptr(c.ContactPersonName)
		root.ContactPersonPhone = ptr(c.ContactPersonPhone)
	case domain.PickUpAssistance:
		if !c.CollectSpecimenFrom.IsValid() {
			return &domain.UnmappedVariantError{Union: unionSpecimen, Tag: c.CollectSpecimenFrom.String()}
		}
		root.CollectSpecimenFrom = ptr(c.CollectSpecimenFrom.String())
	default:
		return &domain.UnmappedVariantError{Union: unionCourier, Tag: fmt.Sprintf("%T", courier)}
	}

	return nil
}

// readServices rebuilds the service list in stored order.
func readServices(root Root) ([]domain.Service, error) {
	services := make([]domain.Service, 0, len(root.ServiceNames))

	for _, name := range root.ServiceNames {
		switch domain.ServiceName(name) {
		case domain.ServiceVideoConsultation:
			c, err := readConsultation(root)
			if err != nil {
				return nil, err
			}
			services = append(services, domain.VideoConsultation{ConsultationDetails: c})
		case domain.ServiceWrittenConsultation:
			c, err := readConsultation(root)
			if err != nil {
				return nil, err
			}
			services = append(services, domain.WrittenConsultation{ConsultationDetails: c})
		case domain.ServiceRadiologyReview:
			services = append(services, domain.RadiologyReview{})
		case domain.ServiceTravelToRemoteSite:
			services = append(services, domain.TravelToRemoteSite{})
		case domain.ServicePathologyReview:
			st, err := readSlideType(root)
			if err != nil {
				return nil, err
			}
			services = append(services, domain.PathologyReview{SlideType: st})
		default:
			return nil, &domain.UnmappedVariantError{Union: unionService, Tag: name}
		}
	}

	return services, nil
}

func readConsultation(root Root) (domain.ConsultationDetails, error) {
	c := domain.ConsultationDetails{
		PreferredPhysicianName: deref(root.PreferredPhysicianName),
		IsMultiMdConsult:       deref(root.IsMultiMdConsult),
	}
	for _, tag := range root.SupplementaryServices {
		s := domain.SupplementaryService(tag)
		if !s.IsValid() {
			return domain.ConsultationDetails{}, &domain.UnmappedVariantError{Union: unionSupport, Tag: tag}
		}
		c.SupplementaryServices = append(c.SupplementaryServices, s)
	}
	return c, nil
}

func readSlideType(root Root) (domain.SlideType, error) {
	kind := domain.SlideTypeKind(deref(root.SlideType))

	switch kind {
	case domain.SlideNone:
		return domain.NoSlides{}, nil
	case domain.SlideStained:
		p, err := readStandard(root, kind)
		if err != nil {
			return nil, err
		}
		return domain.StainedSlides{PathologyType: p}, nil
	case domain.SlideUnstained, domain.SlidePathologyBlock, domain.SlideUnstainedAndBlock:
		p, err := readExtensive(root, kind)
		if err != nil {
			return nil, err
		}
		switch kind {
		case domain.SlideUnstained:
			return domain.UnstainedSlides{PathologyType: p}, nil
		case domain.SlidePathologyBlock:
			return domain.PathologyBlock{PathologyType: p}, nil
		default:
			return domain.UnstainedSlidesAndBlock{PathologyType: p}, nil
		}
	case domain.SlideStainedAndBlock:
		p, err := readAnyPathology(root)
		if err != nil {
			return nil, err
		}
		return domain.StainedSlidesAndBlock{PathologyType: p}, nil
	}

	return nil, &domain.UnmappedVariantError{Union: unionSlideType, Tag: string(kind)}
}

func readStandard(root Root, slide domain.SlideTypeKind) (domain.StandardPathology, error) {
	if tag := deref(root.PathologyType); tag != domain.PathologyStandard.String() {
		return domain.StandardPathology{}, &domain.UnmappedVariantError{
			Union: unionPathology + " of " + slide.String(),
			Tag:   tag,
		}
	}
	if tag := deref(root.CourierType); tag != domain.CourierSelf.String() {
		return domain.StandardPathology{}, &domain.UnmappedVariantError{
			Union: unionCourier + " of " + domain.PathologyStandard.String(),
			Tag:   tag,
		}
	}
	return domain.StandardPathology{CourierDetails: readSelfCourier(root)}, nil
}

func readExtensive(root Root, slide domain.SlideTypeKind) (domain.ExtensivePathology, error) {
	if tag := deref(root.PathologyType); tag != domain.PathologyExtensive.String() {
		return domain.ExtensivePathology{}, &domain.UnmappedVariantError{
			Union: unionPathology + " of " + slide.String(),
			Tag:   tag,
		}
	}
	courier, err := readCourier(root)
	if err != nil {
		return domain.ExtensivePathology{}, err
	}
	return domain.ExtensivePathology{CourierDetails: courier}, nil
}

func readAnyPathology(root Root) (domain.PathologyType, error) {
	if root.PathologyType == nil {
		return nil, nil
	}
	switch domain.PathologyKind(*root.PathologyType) {
	case domain.PathologyStandard:
		return readStandard(root, domain.SlideStainedAndBlock)
	case domain.PathologyExtensive:
		return readExtensive(root, domain.SlideStainedAndBlock)
	}
	return nil, &domain.UnmappedVariantError{Union: unionPathology, Tag: *root.PathologyType}
}

func readCourier(root Root) (domain.CourierDetails, error) {
	if root.CourierType == nil {
		return nil, nil
	}
	switch domain.CourierType(*root.CourierType) {
	case domain.CourierSelf:
		return readSelfCourier(root), nil
	case domain.CourierPickUpAssistance:
		from := domain.SpecimenLocation(deref(root.CollectSpecimenFrom))
		if !from.IsValid() {
			return nil, &domain.UnmappedVariantError{Union: unionSpecimen, Tag: from.String()}
		}
		return domain.PickUpAssistance{CollectSpecimenFrom: from}, nil
	}
	return nil, &domain.UnmappedVariantError{Union: unionCourier, Tag: *root.CourierType}
}

func readSelfCourier(root Root) domain.SelfCourier {
	return domain.SelfCourier{
		TrackingID:         deref(root.TrackingID),
		ContactPersonName:  deref(root.ContactPersonName),
		ContactPersonPhone: deref(root.ContactPersonPhone),
	}
}
