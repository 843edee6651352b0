package contact

import (
	"regexp"
	"strings"
	"time"

	"estateoffice/internal/domain"
	"estateoffice/internal/pkg/countries"
	"estateoffice/internal/pkg/phone"
)

// User-facing messages, keyed by field. The front end renders these inline.
const (
	msgNameRequired     = "Le nom est requis"
	msgEmailInvalid     = "Email invalide"
	msgPhoneRequired    = "Le téléphone est requis"
	msgPhoneInvalid     = "Numéro de téléphone invalide"
	msgMessageRequired  = "Le message est requis"
	msgConsentRequired  = "Vous devez accepter les conditions"
	msgServiceInvalid   = "Type de service invalide"
	msgCategoryRequired = "Veuillez choisir une catégorie"
	msgDateRequired     = "La date de rendez-vous est requise"
	msgDateInvalid      = "Date invalide"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate is a pure function from the form state (and the selected
// country) to a field -> message map. An empty map means the form is valid.
func Validate(req SubmitRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = msgNameRequired
	}

	if !emailRe.MatchString(strings.TrimSpace(req.Email)) {
		errs["email"] = msgEmailInvalid
	}

	iso2 := req.CountryISO2
	if _, ok := countries.ByISO2(iso2); !ok {
		iso2 = countries.DefaultISO2
	}
	if strings.TrimSpace(req.Phone) == "" {
		errs["phone"] = msgPhoneRequired
	} else if !phone.IsValid(req.Phone, iso2) {
		errs["phone"] = msgPhoneInvalid
	}

	if strings.TrimSpace(req.Message) == "" {
		errs["message"] = msgMessageRequired
	}

	if !req.ConsentGiven {
		errs["consent_given"] = msgConsentRequired
	}

	if strings.TrimSpace(req.ExpertCategory) == "" {
		errs["expert_category"] = msgCategoryRequired
	}

	svc := domain.ServiceType(req.ServiceType)
	switch svc {
	case domain.ServiceGeneral, domain.ServiceVisit, domain.ServiceEstimation, domain.ServiceLegalAdvice:
	default:
		errs["service_type"] = msgServiceInvalid
	}

	// the appointment date is required only for service types that schedule
	if svc.RequiresAppointment() {
		if strings.TrimSpace(req.PreferredDate) == "" {
			errs["preferred_date"] = msgDateRequired
		} else if _, err := time.Parse("2006-01-02", req.PreferredDate); err != nil {
			errs["preferred_date"] = msgDateInvalid
		}
	}

	return errs
}
