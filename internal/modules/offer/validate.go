package offer

import (
	"regexp"
	"strings"

	"estateoffice/internal/domain"
	"estateoffice/internal/pkg/countries"
	"estateoffice/internal/pkg/phone"
)

const (
	msgAmountRequired      = "Le montant est requis"
	msgParticipationChoice = "Veuillez choisir un type de participation"
	msgFirstNameRequired   = "Le prénom est requis"
	msgLastNameRequired    = "Le nom est requis"
	msgEmailInvalid        = "Email invalide"
	msgPhoneInvalid        = "Numéro de téléphone invalide"
	msgNationalityRequired = "La nationalité est requise"
	msgAddressRequired     = "L'adresse est requise"
	msgPaymentChoice       = "Veuillez choisir un mode de paiement"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateFunding(f Form) map[string]string {
	errs := make(map[string]string)
	if f.AmountRequested <= 0 {
		errs["amount_requested"] = msgAmountRequired
	}
	if !domain.ValidParticipation(domain.ParticipationType(f.Participation)) {
		errs["participation_type"] = msgParticipationChoice
	}
	return errs
}

func validateIdentity(f Form) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.FirstName) == "" {
		errs["first_name"] = msgFirstNameRequired
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["last_name"] = msgLastNameRequired
	}
	if !emailRe.MatchString(strings.TrimSpace(f.Email)) {
		errs["email"] = msgEmailInvalid
	}
	if strings.TrimSpace(f.Nationality) == "" {
		errs["nationality"] = msgNationalityRequired
	}

	iso2 := f.CountryISO2
	if _, ok := countries.ByISO2(iso2); !ok {
		iso2 = countries.DefaultISO2
	}
	if strings.TrimSpace(f.Phone) != "" && !phone.IsValid(f.Phone, iso2) {
		errs["phone"] = msgPhoneInvalid
	}
	return errs
}

func validateSettlement(f Form) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = msgAddressRequired
	}
	if !domain.ValidPaymentMethod(domain.PaymentMethod(f.PaymentMethod)) {
		errs["payment_method"] = msgPaymentChoice
	}
	return errs
}
