package contact

import "time"

// SubmitRequest is the expert-contact form payload. CountryISO2 is the
// selector value the geo detector (or the user) resolved; the phone is
// validated against it.
type SubmitRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CountryISO2    string `json:"country_iso2"`
	Message        string `json:"message"`
	ServiceType    string `json:"service_type"`
	ExpertCategory string `json:"expert_category"`
	PreferredDate  string `json:"preferred_date,omitempty"` // "2006-01-02"
	ConsentGiven   bool   `json:"consent_given"`
	PropertyID     *int64 `json:"property_id,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LeadSummary struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	ServiceType    string     `json:"service_type"`
	ExpertCategory string     `json:"expert_category"`
	Status         string     `json:"status"`
	PreferredDate  *time.Time `json:"preferred_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
