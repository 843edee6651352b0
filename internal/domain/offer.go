package domain

import "time"

type ParticipationType string

const (
	ParticipationPassive       ParticipationType = "passive"
	ParticipationPartner       ParticipationType = "partner"
	ParticipationCoDevelopment ParticipationType = "co_development"
)

func ValidParticipation(p ParticipationType) bool {
	switch p {
	case ParticipationPassive, ParticipationPartner, ParticipationCoDevelopment:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheque       PaymentMethod = "cheque"
	PaymentCrypto       PaymentMethod = "crypto"
)

func ValidPaymentMethod(p PaymentMethod) bool {
	switch p {
	case PaymentBankTransfer, PaymentCheque, PaymentCrypto:
		return true
	}
	return false
}

// InvestmentOffer is the record a completed wizard session produces. The
// idempotency key comes from the session so a repeated final submit never
// creates a second row.
type InvestmentOffer struct {
	ID              int64             `json:"id" gorm:"primaryKey"`
	IdempotencyKey  string            `json:"-" gorm:"uniqueIndex"`
	AmountRequested float64           `json:"amount_requested"`
	Participation   ParticipationType `json:"participation_type"`

	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" gorm:"index"`
	Phone       string `json:"phone"`
	CountryISO2 string `json:"country_iso2"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`

	Comments      string        `json:"comments" gorm:"type:text"`
	PaymentMethod PaymentMethod `json:"payment_method"`

	Status    LeadStatus `json:"status" gorm:"index;default:'new'"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (InvestmentOffer) TableName() string { return "investment_offers" }
