package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmit() SubmitRequest {
	return SubmitRequest{
		Name:           "Yassine El Amrani",
		Email:          "yassine@example.com",
		Phone:          "0612345678",
		CountryISO2:    "MA",
		Message:        "Je souhaite une estimation.",
		ServiceType:    "general",
		ExpertCategory: "immobilier",
		ConsentGiven:   true,
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	assert.Empty(t, Validate(validSubmit()))
}

func TestValidateRequiredFields(t *testing.T) {
	errs := Validate(SubmitRequest{ServiceType: "general"})

	assert.Equal(t, "Le nom est requis", errs["name"])
	assert.Equal(t, "Email invalide", errs["email"])
	assert.Equal(t, "Le téléphone est requis", errs["phone"])
	assert.Equal(t, "Le message est requis", errs["message"])
	assert.Equal(t, "Vous devez accepter les conditions", errs["consent_given"])
	assert.Equal(t, "Veuillez choisir une catégorie", errs["expert_category"])
}

func TestValidateEmailFormat(t *testing.T) {
	req := validSubmit()
	req.Email = "pas-un-email"
	assert.Equal(t, "Email invalide", Validate(req)["email"])

	req.Email = "a@b"
	assert.Equal(t, "Email invalide", Validate(req)["email"])
}

func TestValidatePhoneAgainstSelectedCountry(t *testing.T) {
	req := validSubmit()
	req.Phone = "12"
	assert.Equal(t, "Numéro de téléphone invalide", Validate(req)["phone"])

	// a French number is valid under the FR selector
	req.Phone = "0612345678"
	req.CountryISO2 = "FR"
	assert.Empty(t, Validate(req))
}

func TestValidateUnknownCountryFallsBack(t *testing.T) {
	req := validSubmit()
	req.CountryISO2 = "ZZ"
	// phone still validates, under the default country context
	assert.Empty(t, Validate(req))
}

func TestValidateServiceType(t *testing.T) {
	req := validSubmit()
	req.ServiceType = "autre"
	assert.Equal(t, "Type de service invalide", Validate(req)["service_type"])
}

func TestValidateAppointmentDateOnlyForSchedulingServices(t *testing.T) {
	req := validSubmit()
	req.ServiceType = "visit"
	errs := Validate(req)
	assert.Equal(t, "La date de rendez-vous est requise", errs["preferred_date"])

	req.PreferredDate = "pas-une-date"
	assert.Equal(t, "Date invalide", Validate(req)["preferred_date"])

	req.PreferredDate = "2026-09-15"
	assert.Empty(t, Validate(req))

	// general requests never require a date
	req.ServiceType = "general"
	req.PreferredDate = ""
	assert.Empty(t, Validate(req))
}
