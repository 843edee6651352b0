package geoip

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubLookup struct {
	code string
	err  error
}

func (s stubLookup) CountryCode(ctx context.Context, ip string) (string, error) {
	return s.code, s.err
}

func TestDetectUsesLookupResult(t *testing.T) {
	svc := NewService(stubLookup{code: "FR"}, zap.NewNop())

	d := svc.Detect(context.Background(), "81.2.69.1", "")
	assert.Equal(t, "FR", d.Country.ISO2)
	assert.False(t, d.Fallback)
	assert.Equal(t, "+33 ", d.PhonePrefill)
}

func TestDetectFallsBackOnLookupError(t *testing.T) {
	svc := NewService(stubLookup{err: errors.New("timeout")}, zap.NewNop())

	d := svc.Detect(context.Background(), "10.0.0.1", "")
	assert.Equal(t, "MA", d.Country.ISO2)
	assert.True(t, d.Fallback)
	assert.Equal(t, "+212 ", d.PhonePrefill)
}

func TestDetectFallsBackOnUnrecognizedCode(t *testing.T) {
	svc := NewService(stubLookup{code: "XK"}, zap.NewNop())

	d := svc.Detect(context.Background(), "1.2.3.4", "")
	assert.Equal(t, "MA", d.Country.ISO2)
	assert.True(t, d.Fallback)
}

func TestDetectNeverPrefillsNonEmptyPhone(t *testing.T) {
	svc := NewService(stubLookup{code: "FR"}, zap.NewNop())

	d := svc.Detect(context.Background(), "81.2.69.1", "0612")
	assert.Empty(t, d.PhonePrefill)

	d = svc.Detect(context.Background(), "81.2.69.1", "+212612345678")
	assert.Empty(t, d.PhonePrefill)
}

func TestDetectCountry(t *testing.T) {
	svc := NewService(stubLookup{code: "ES"}, zap.NewNop())

	iso2, prefill := svc.DetectCountry(context.Background(), "2.136.0.1")
	assert.Equal(t, "ES", iso2)
	assert.Equal(t, "+34 ", prefill)
}
