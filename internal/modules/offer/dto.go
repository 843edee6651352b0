package offer

import "estateoffice/internal/pkg/wizard"

// Form is the wizard's accumulated state. Fields are grouped by data-entry
// step: funding, identity, then settlement details.
type Form struct {
	// step 1
	AmountRequested float64 `json:"amount_requested"`
	Participation   string  `json:"participation_type"`

	// step 2
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryISO2 string `json:"country_iso2"`
	Nationality string `json:"nationality"`

	// step 3
	Address       string `json:"address"`
	Comments      string `json:"comments"`
	PaymentMethod string `json:"payment_method"`
}

type OpenResponse struct {
	SessionID    string       `json:"session_id"`
	State        wizard.State `json:"state"`
	TotalSteps   int          `json:"total_steps"`
	CountryISO2  string       `json:"country_iso2"`
	PhonePrefill string       `json:"phone_prefill,omitempty"`
}

// UpdateRequest merges edited fields into the session before a transition.
type UpdateRequest struct {
	Form Form `json:"form"`
}

type SwitchCountryRequest struct {
	CountryISO2 string `json:"country_iso2" binding:"required"`
}

type SessionView struct {
	SessionID  string       `json:"session_id"`
	State      wizard.State `json:"state"`
	TotalSteps int          `json:"total_steps"`
	Form       Form         `json:"form"`
	Submitted  bool         `json:"submitted"`
	OfferID    int64        `json:"offer_id,omitempty"`
}
