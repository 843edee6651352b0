package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"estateoffice/internal/pkg/countries"
)

// IsValid reports whether raw parses to a complete, valid number under the
// given ISO2 country context.
func IsValid(raw, iso2 string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	num, err := phonenumbers.Parse(raw, strings.ToUpper(iso2))
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// ToE164 canonicalizes raw to E.164 under the country context. When the
// value does not parse it is returned unchanged so a submission is never
// blocked by the normalizer itself.
func ToE164(raw, iso2 string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	num, err := phonenumbers.Parse(trimmed, strings.ToUpper(iso2))
	if err != nil {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// FormatAsYouType renders the progressive display form of a partial input.
// The value is re-parsed on every call; once enough digits accumulate to
// parse, the international grouping is shown, otherwise the input comes back
// as typed.
func FormatAsYouType(raw, iso2 string) string {
	digits := keepDialable(raw)
	if digits == "" || digits == "+" {
		return raw
	}
	num, err := phonenumbers.Parse(digits, strings.ToUpper(iso2))
	if err != nil {
		return raw
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

func keepDialable(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' || r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SwitchCountry re-derives a stored phone value after the user changes the
// selected country: the new dial code is applied and the previously entered
// national digits are preserved where the old value parses.
func SwitchCountry(raw, fromISO2, toISO2 string) string {
	to, ok := countries.ByISO2(toISO2)
	if !ok {
		return raw
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return to.DialCode + " "
	}

	if num, err := phonenumbers.Parse(trimmed, strings.ToUpper(fromISO2)); err == nil {
		national := phonenumbers.GetNationalSignificantNumber(num)
		if national != "" {
			return to.DialCode + " " + national
		}
	}

	// Unparseable: drop a recognizable old prefix and re-prefix the rest.
	if from, ok := countries.ByISO2(fromISO2); ok {
		if rest, found := strings.CutPrefix(trimmed, from.DialCode); found {
			return to.DialCode + " " + strings.TrimSpace(rest)
		}
	}
	return to.DialCode + " " + strings.TrimPrefix(trimmed, "+")
}

// LooksInternational reports whether the value already carries a dial code.
func LooksInternational(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "+")
}

// Prefill is the value planted into an empty phone field once a country is
// selected.
func Prefill(c countries.Country) string {
	return c.DialCode + " "
}
