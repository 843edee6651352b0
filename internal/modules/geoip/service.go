package geoip

import (
	"context"

	"estateoffice/internal/pkg/countries"
	"estateoffice/internal/pkg/phone"

	"go.uber.org/zap"
)

type Service struct {
	lookup CountryLookup
	log    *zap.Logger
}

func NewService(lookup CountryLookup, log *zap.Logger) *Service {
	return &Service{lookup: lookup, log: log}
}

// Detection is the terminal state of one detection attempt. Fallback is
// true when the registry default was selected instead of a detected code.
type Detection struct {
	Country  countries.Country
	Fallback bool
	// PhonePrefill is the value to plant into the form's phone field, empty
	// when the current value must be left alone.
	PhonePrefill string
}

// Detect performs one lookup and always resolves to a selected country:
// network errors, unrecognized codes and malformed responses all fall back
// to the registry default. currentPhone is the form's phone field at the
// time of the call; the prefill is only offered when it is empty and never
// when it already looks international.
func (s *Service) Detect(ctx context.Context, ip, currentPhone string) Detection {
	d := Detection{Country: countries.Default(), Fallback: true}

	code, err := s.lookup.CountryCode(ctx, ip)
	if err != nil {
		s.log.Debug("geoip lookup failed, using fallback",
			zap.String("ip", ip), zap.Error(err))
	} else if c, ok := countries.ByISO2(code); ok {
		d.Country = c
		d.Fallback = false
	} else {
		s.log.Debug("geoip returned unrecognized country code",
			zap.String("ip", ip), zap.String("code", code))
	}

	if currentPhone == "" {
		d.PhonePrefill = phone.Prefill(d.Country)
	} else if !phone.LooksInternational(currentPhone) {
		// keep a partially typed national number untouched
		d.PhonePrefill = ""
	}

	return d
}

// DetectCountry is the narrow form consumed by wizard session creation,
// where the phone field is always empty.
func (s *Service) DetectCountry(ctx context.Context, ip string) (iso2, phonePrefill string) {
	d := s.Detect(ctx, ip, "")
	return d.Country.ISO2, d.PhonePrefill
}
