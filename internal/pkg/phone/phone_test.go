package phone

import (
	"strings"
	"testing"

	"estateoffice/internal/pkg/countries"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("0612345678", "MA"))
	assert.True(t, IsValid("+212612345678", "MA"))
	assert.True(t, IsValid("+33612345678", "FR"))

	assert.False(t, IsValid("", "MA"))
	assert.False(t, IsValid("12", "MA"))
	assert.False(t, IsValid("bonjour", "MA"))
}

func TestToE164Canonicalizes(t *testing.T) {
	assert.Equal(t, "+212612345678", ToE164("0612345678", "MA"))
	assert.Equal(t, "+212612345678", ToE164("  +212 612 345 678 ", "MA"))
	assert.Equal(t, "+33612345678", ToE164("06 12 34 56 78", "FR"))
}

func TestToE164PassesThroughUnparseable(t *testing.T) {
	// the normalizer must never block a value validation let through
	assert.Equal(t, "bonjour", ToE164("bonjour", "MA"))
	assert.Equal(t, "", ToE164("", "MA"))
}

func TestSwitchCountryKeepsNationalDigits(t *testing.T) {
	assert.Equal(t, "+33 612345678", SwitchCountry("+212612345678", "MA", "FR"))
	assert.Equal(t, "+212 612345678", SwitchCountry("0612345678", "MA", "MA"))
}

func TestSwitchCountryEmptyInput(t *testing.T) {
	assert.Equal(t, "+33 ", SwitchCountry("", "MA", "FR"))
}

func TestSwitchCountryUnknownTarget(t *testing.T) {
	assert.Equal(t, "0612345678", SwitchCountry("0612345678", "MA", "ZZ"))
}

func TestLooksInternational(t *testing.T) {
	assert.True(t, LooksInternational("+212612345678"))
	assert.True(t, LooksInternational("  +33 6"))
	assert.False(t, LooksInternational("0612345678"))
	assert.False(t, LooksInternational(""))
}

func TestPrefill(t *testing.T) {
	ma, ok := countries.ByISO2("MA")
	assert.True(t, ok)
	assert.Equal(t, "+212 ", Prefill(ma))
}

func TestFormatAsYouTypeCompleteNumber(t *testing.T) {
	out := FormatAsYouType("0612345678", "MA")
	assert.True(t, strings.HasPrefix(out, "+212"), "got %q", out)
}

func TestFormatAsYouTypeReturnsPartialAsTyped(t *testing.T) {
	// not enough digits to be a possible number yet
	assert.Equal(t, "06 12", FormatAsYouType("06 12", "MA"))
	assert.Equal(t, "+", FormatAsYouType("+", "MA"))
	assert.Equal(t, "", FormatAsYouType("", "MA"))
}

func TestFormatAsYouTypeUnparseableInput(t *testing.T) {
	assert.Equal(t, "bonjour", FormatAsYouType("bonjour", "MA"))
}
