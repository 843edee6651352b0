package domain

import "time"

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

// leadTransitions is the allowed status graph. Converted and lost are
// terminal.
var leadTransitions = map[LeadStatus]map[LeadStatus]bool{
	LeadNew:       {LeadContacted: true, LeadLost: true},
	LeadContacted: {LeadQualified: true, LeadLost: true},
	LeadQualified: {LeadConverted: true, LeadLost: true},
	LeadConverted: {},
	LeadLost:      {},
}

func CanTransitionLead(current, to LeadStatus) bool {
	nexts, ok := leadTransitions[current]
	if !ok {
		return false
	}
	return nexts[to]
}

type ServiceType string

const (
	ServiceGeneral     ServiceType = "general"
	ServiceVisit       ServiceType = "visit"
	ServiceEstimation  ServiceType = "estimation"
	ServiceLegalAdvice ServiceType = "legal_advice"
)

// RequiresAppointment reports whether the service type demands a scheduled
// date on the contact form.
func (s ServiceType) RequiresAppointment() bool {
	return s == ServiceVisit || s == ServiceEstimation
}

// ContactLead is one expert-contact submission.
type ContactLead struct {
	ID             int64       `json:"id" gorm:"primaryKey"`
	Name           string      `json:"name"`
	Email          string      `json:"email" gorm:"index"`
	Phone          string      `json:"phone"`
	CountryISO2    string      `json:"country_iso2"`
	Message        string      `json:"message" gorm:"type:text"`
	ServiceType    ServiceType `json:"service_type"`
	ExpertCategory string      `json:"expert_category"`
	PreferredDate  *time.Time  `json:"preferred_date,omitempty"`
	ConsentGiven   bool        `json:"consent_given"`
	Status         LeadStatus  `json:"status" gorm:"index;default:'new'"`
	PropertyID     *int64      `json:"property_id,omitempty" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContactLead) TableName() string { return "contact_leads" }
